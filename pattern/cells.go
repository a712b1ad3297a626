package pattern

import "math"

// Coordinate is a cell position. Depending on context it is absolute or an
// offset from an origin.
type Coordinate struct {
	X, Y int
}

// CellList is a sparse set of living cells stored as offsets from Origin.
type CellList struct {
	Cells  []Coordinate
	Origin Coordinate
}

// Push appends a living cell offset.
func (l *CellList) Push(x, y int) {
	l.Cells = append(l.Cells, Coordinate{X: x, Y: y})
}

// CellTable is a dense grid of cells indexed Cells[y][x].
type CellTable struct {
	Cells  [][]CellState
	Width  int
	Height int
}

// NewCellTable returns a width x height table of dead cells.
func NewCellTable(width, height int) CellTable {
	cells := make([][]CellState, height)
	for y := range cells {
		cells[y] = make([]CellState, width)
	}
	return CellTable{Cells: cells, Width: width, Height: height}
}

// ToTable converts the list to the smallest table that holds every cell.
// The origin is lost. An empty list gives a zero-area table.
func (l CellList) ToTable() CellTable {
	if len(l.Cells) == 0 {
		return NewCellTable(0, 0)
	}

	minX, maxX := math.MaxInt, math.MinInt
	minY, maxY := math.MaxInt, math.MinInt
	for _, c := range l.Cells {
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}

	table := NewCellTable(maxX-minX+1, maxY-minY+1)
	for _, c := range l.Cells {
		table.Cells[c.Y-minY][c.X-minX] = Alive
	}
	return table
}

// ToList converts the table to offsets around its center, (Width/2, Height/2).
func (t CellTable) ToList() CellList {
	list := CellList{Origin: Coordinate{X: t.Width / 2, Y: t.Height / 2}}
	for y, row := range t.Cells {
		for x, cell := range row {
			if cell == Alive {
				list.Push(x-list.Origin.X, y-list.Origin.Y)
			}
		}
	}
	return list
}

// Population returns the number of living cells in the table.
func (t CellTable) Population() (count int) {
	for _, row := range t.Cells {
		for _, cell := range row {
			if cell == Alive {
				count++
			}
		}
	}
	return
}

// Cells holds a pattern's cells in whichever form the producer had at hand.
// Consumers normalize with IntoCellList or IntoCellTable.
type Cells struct {
	list  *CellList
	table *CellTable
}

// ListCells wraps a sparse cell list.
func ListCells(list CellList) Cells {
	return Cells{list: &list}
}

// TableCells wraps a dense cell table.
func TableCells(table CellTable) Cells {
	return Cells{table: &table}
}

// IntoCellList returns the cells as a list, converting if needed.
func (c Cells) IntoCellList() CellList {
	switch {
	case c.list != nil:
		return *c.list
	case c.table != nil:
		return c.table.ToList()
	default:
		return CellList{}
	}
}

// IntoCellTable returns the cells as a table, converting if needed.
func (c Cells) IntoCellTable() CellTable {
	switch {
	case c.table != nil:
		return *c.table
	case c.list != nil:
		return c.list.ToTable()
	default:
		return NewCellTable(0, 0)
	}
}
