package core

// World geometry. The grid size is fixed at compile time.
const (
	WorldWidth  = 1600 // pixels
	WorldHeight = 1000 // pixels
	CellSize    = 6    // pixels per cell side

	Width  = WorldWidth / CellSize
	Height = WorldHeight / CellSize

	// DefaultSpeed is the startup rate in generations per second.
	DefaultSpeed = 10
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

func (c Cell) normalize() Cell {
	if c != Dead {
		return Alive
	}
	return Dead
}

// String returns "alive" or "dead".
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}
