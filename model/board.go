package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/pattern"
	"github.com/sheikhrachel/go-life/rules"
)

// Board is the live Game of Life grid. Its dimensions are fixed at creation.
// The outermost ring of cells is kept dead and is never updated.
type Board struct {
	width  int
	height int
	cells  [][]pattern.CellState
	name   string

	rule       rules.Rule
	generation uint64
	workers    int
	rng        *rand.Rand
	counts     *countPool
}

// NewBoard creates an empty board with the specified dimensions.
func NewBoard(width, height int) *Board {
	width, height = max(width, 0), max(height, 0)
	cells := make([][]pattern.CellState, height)
	for i := range cells {
		cells[i] = make([]pattern.CellState, width)
	}
	return &Board{
		width:   width,
		height:  height,
		cells:   cells,
		rule:    rules.Normal(),
		workers: runtime.NumCPU(),
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		counts:  newCountPool(),
	}
}

// GetWidth returns the width of the board
func (b *Board) GetWidth() int {
	return b.width
}

// GetHeight returns the height of the board
func (b *Board) GetHeight() int {
	return b.height
}

// GetName returns the name of the last loaded pattern, if it had one
func (b *Board) GetName() string {
	return b.name
}

// Generation returns the number of updates since the board was initialised.
func (b *Board) Generation() uint64 {
	return b.generation
}

// Rule returns the rule applied by Update.
func (b *Board) Rule() rules.Rule {
	return b.rule
}

// SetRule changes the rule applied by Update.
func (b *Board) SetRule(rule rules.Rule) {
	b.rule = rule
}

// SetWorkers sets how many goroutines share an update. Values below 1 use one.
func (b *Board) SetWorkers(n int) {
	b.workers = max(n, 1)
}

// SetSeed makes InitRandomly reproducible.
func (b *Board) SetSeed(seed uint64) {
	b.rng = rand.New(rand.NewPCG(seed, 0))
}

// Get returns the state of a cell; cells off the board are dead.
func (b *Board) Get(x, y int) pattern.CellState {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return pattern.Dead
	}
	return b.cells[y][x]
}

// Set sets an interior cell. Border and off-board coordinates are ignored.
func (b *Board) Set(x, y int, state pattern.CellState) {
	if b.isInterior(x, y) {
		b.cells[y][x] = state
	}
}

// Cells exposes the grid, indexed [y][x], for read access. Callers must not
// modify it.
func (b *Board) Cells() [][]pattern.CellState {
	return b.cells
}

func (b *Board) isInterior(x, y int) bool {
	return x > 0 && x < b.width-1 && y > 0 && y < b.height-1
}

// InitEmpty kills every cell.
func (b *Board) InitEmpty() *Board {
	for y := range b.height {
		clear(b.cells[y])
	}
	b.generation = 0
	return b
}

// InitRandomly clears the board and then brings each interior cell to life
// when a uniform random byte is below chance, so higher chances give denser
// boards. The border stays dead.
func (b *Board) InitRandomly(chance uint8) *Board {
	b.InitEmpty()
	for y := 1; y < b.height-1; y++ {
		for x := 1; x < b.width-1; x++ {
			if uint8(b.rng.UintN(256)) < chance {
				b.cells[y][x] = pattern.Alive
			}
		}
	}
	return b
}

// InitWithFile parses the pattern file at path and loads it. The board is
// left untouched if the file cannot be read or parsed.
func (b *Board) InitWithFile(path string) error {
	p, err := pattern.ParseFile(path)
	if err != nil {
		return errors.Wrapf(err, "[InitWithFile] failed to load pattern: %+v", path)
	}
	b.InitWithPattern(p)
	return nil
}

// InitWithPattern clears the board and places the pattern's cells around the
// board center, dropping any that land on or beyond the border. The board
// adopts the pattern's rule, and its name when the pattern has one.
func (b *Board) InitWithPattern(p *pattern.Pattern) *Board {
	b.InitEmpty()
	if p.Metadata.Name != "" {
		b.name = p.Metadata.Name
	}
	b.rule = p.Metadata.Rule
	if p.Metadata.Generation != nil {
		b.generation = *p.Metadata.Generation
	}

	originX, originY := b.width/2, b.height/2
	for _, c := range p.Cells.IntoCellList().Cells {
		b.Set(c.X+originX, c.Y+originY, pattern.Alive)
	}
	return b
}

// Pattern exports the living cells as offsets from the board center, so
// InitWithPattern puts them back where they were.
func (b *Board) Pattern() *pattern.Pattern {
	list := pattern.CellList{Origin: pattern.Coordinate{X: b.width / 2, Y: b.height / 2}}
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x] == pattern.Alive {
				list.Push(x-list.Origin.X, y-list.Origin.Y)
			}
		}
	}

	generation := b.generation
	p := pattern.New()
	p.Cells = pattern.ListCells(list)
	p.Metadata.Name = b.name
	p.Metadata.Rule = b.rule
	p.Metadata.Generation = &generation
	return p
}

// Update advances the board by one generation. Neighbor counts for every
// interior cell are taken from the current state before any cell is
// written, so all cells change simultaneously.
func (b *Board) Update() {
	defer func() { b.generation++ }()
	if b.width < 3 || b.height < 3 {
		return
	}

	counts := b.counts.Get(b.width * b.height)
	defer b.counts.Put(counts)

	// Count phase: reads cells, writes only counts.
	b.forEachInteriorRow(func(y int) {
		above, row, below := b.cells[y-1], b.cells[y], b.cells[y+1]
		offset := y * b.width
		for x := 1; x < b.width-1; x++ {
			// Alive is 1 and Dead is 0, so the sum is the neighbor count.
			n := above[x-1] + above[x] + above[x+1] +
				row[x-1] + row[x+1] +
				below[x-1] + below[x] + below[x+1]
			counts[offset+x] = uint8(n)
		}
	})

	// Write phase: each row is owned by a single goroutine.
	rule := b.rule
	b.forEachInteriorRow(func(y int) {
		row := b.cells[y]
		offset := y * b.width
		for x := 1; x < b.width-1; x++ {
			row[x] = pattern.FromBool(rule.Next(row[x] == pattern.Alive, int(counts[offset+x])))
		}
	})
}

// forEachInteriorRow splits the interior rows into contiguous bands, one per
// worker, and returns once every band is done.
func (b *Board) forEachInteriorRow(fn func(y int)) {
	var (
		eg            errgroup.Group
		firstRow      = 1
		lastRow       = b.height - 1 // exclusive
		numWorkers    = max(b.workers, 1)
		rowsPerWorker = (lastRow - firstRow + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = firstRow + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, lastRow)
		)
		if startRow >= lastRow {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				fn(y)
			}
			return nil
		})
	}

	// The row functions cannot fail; Wait is the barrier between phases.
	_ = eg.Wait()
}

// Population returns the number of living cells.
func (b *Board) Population() (count int) {
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x] == pattern.Alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the cell states.
func (b *Board) Hash() string {
	h := md5.New()
	for y := range b.height {
		row := make([]byte, b.width)
		for x, cell := range b.cells[y] {
			row[x] = byte(cell)
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
