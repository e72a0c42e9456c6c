package gridenv

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8). Diagonal moves cost the same as
// orthogonal ones here (unit-cost grid); see Grid.SetCost for
// non-uniform terrain.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, adding the diagonals.
	Conn8
)

// Options configures Grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity. Default Conn4.
	Conn Connectivity
}

// DefaultOptions returns 4-connected grid construction options.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// Grid is a rectangular grid of cells, some blocked, implementing
// planner.Graph over cell ids (row-major index) and an admissible
// distance heuristic to a configurable goal cell.
type Grid struct {
	width, height int
	blocked       []bool // row-major, true = impassable
	cost          []int64 // row-major, unit cost (1) unless overridden
	conn          Connectivity
	offsets       [][2]int

	goalX, goalY int
	hasGoal      bool
}
