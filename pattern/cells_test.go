package pattern

import "testing"

func coordinateSet(cells []Coordinate) map[Coordinate]bool {
	set := make(map[Coordinate]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}

// equalUpToTranslation reports whether b is a with every cell shifted by the
// same vector.
func equalUpToTranslation(a, b []Coordinate) bool {
	as, bs := coordinateSet(a), coordinateSet(b)
	if len(as) != len(bs) {
		return false
	}
	if len(as) == 0 {
		return true
	}

	first := func(set map[Coordinate]bool) Coordinate {
		var best Coordinate
		found := false
		for c := range set {
			if !found || c.Y < best.Y || (c.Y == best.Y && c.X < best.X) {
				best, found = c, true
			}
		}
		return best
	}
	fa, fb := first(as), first(bs)
	dx, dy := fb.X-fa.X, fb.Y-fa.Y

	for c := range as {
		if !bs[Coordinate{X: c.X + dx, Y: c.Y + dy}] {
			return false
		}
	}
	return true
}

func TestListToTable(t *testing.T) {
	list := CellList{Cells: []Coordinate{{0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}}
	table := list.ToTable()

	if table.Width != 3 || table.Height != 3 {
		t.Fatalf("table is %dx%d, expected 3x3", table.Width, table.Height)
	}
	if len(table.Cells) != table.Height {
		t.Fatalf("table has %d rows, expected %d", len(table.Cells), table.Height)
	}

	expects := map[[2]int]bool{
		{1, 0}: true,
		{2, 1}: true,
		{0, 2}: true,
		{1, 2}: true,
		{2, 2}: true,
	}
	for y, row := range table.Cells {
		if len(row) != table.Width {
			t.Fatalf("row %d has %d cells, expected %d", y, len(row), table.Width)
		}
		for x, cell := range row {
			if cell.IsAlive() != expects[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, cell.IsAlive(), expects[[2]int{x, y}])
			}
		}
	}
}

func TestTableToListCentersOrigin(t *testing.T) {
	table := NewCellTable(5, 4)
	table.Cells[0][0] = Alive
	table.Cells[3][4] = Alive

	list := table.ToList()
	if list.Origin != (Coordinate{X: 2, Y: 2}) {
		t.Fatalf("origin = %v, expected (2,2)", list.Origin)
	}
	want := coordinateSet([]Coordinate{{-2, -2}, {2, 1}})
	got := coordinateSet(list.Cells)
	if len(got) != len(want) {
		t.Fatalf("got %v, expected %v", list.Cells, want)
	}
	for c := range want {
		if !got[c] {
			t.Fatalf("missing offset %v in %v", c, list.Cells)
		}
	}
}

func TestListTableRoundTripUpToTranslation(t *testing.T) {
	cases := map[string][]Coordinate{
		"glider":     {{0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}},
		"single":     {{7, -3}},
		"wide":       {{-10, 0}, {10, 0}},
		"tall":       {{0, -10}, {0, 10}, {1, 3}},
		"offset":     {{100, 200}, {101, 200}, {100, 201}},
		"duplicates": {{1, 1}, {1, 1}, {2, 1}},
	}
	for name, cells := range cases {
		list := CellList{Cells: cells}
		back := list.ToTable().ToList().ToTable().ToList()
		if !equalUpToTranslation(cells, back.Cells) {
			t.Errorf("%s: round trip gave %v, expected a translation of %v", name, back.Cells, cells)
		}
	}
}

func TestEmptyListGivesZeroTable(t *testing.T) {
	table := CellList{}.ToTable()
	if table.Width != 0 || table.Height != 0 || len(table.Cells) != 0 {
		t.Fatalf("expected a zero-area table, got %dx%d", table.Width, table.Height)
	}
	if list := table.ToList(); len(list.Cells) != 0 {
		t.Fatalf("expected no cells, got %v", list.Cells)
	}
}

func TestCellsNormalization(t *testing.T) {
	table := NewCellTable(2, 2)
	table.Cells[1][1] = Alive

	cells := TableCells(table)
	if got := cells.IntoCellTable(); got.Population() != 1 {
		t.Fatalf("table population = %d, expected 1", got.Population())
	}
	if got := cells.IntoCellList(); len(got.Cells) != 1 || got.Cells[0] != (Coordinate{X: 0, Y: 0}) {
		t.Fatalf("list = %v, expected [(0,0)]", got.Cells)
	}

	var zero Cells
	if len(zero.IntoCellList().Cells) != 0 || zero.IntoCellTable().Width != 0 {
		t.Fatal("zero Cells should normalize to empty forms")
	}
}

func TestCellStateNot(t *testing.T) {
	if Alive.Not() != Dead || Dead.Not() != Alive {
		t.Fatal("Not should flip the state")
	}
	if FromBool(true) != Alive || FromBool(false) != Dead {
		t.Fatal("FromBool mismatch")
	}
	var zero CellState
	if zero != Dead {
		t.Fatal("zero CellState should be Dead")
	}
}
