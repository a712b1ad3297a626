package pattern

// CellState is the state of a single cell. The zero value is Dead.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// FromBool returns Alive for true and Dead for false.
func FromBool(alive bool) CellState {
	if alive {
		return Alive
	}
	return Dead
}

// IsAlive reports whether the cell is alive.
func (c CellState) IsAlive() bool {
	return c == Alive
}

// Not returns the opposite state.
func (c CellState) Not() CellState {
	if c == Alive {
		return Dead
	}
	return Alive
}

func (c CellState) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}
