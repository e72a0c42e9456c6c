package gridenv

import (
	"fmt"
	"io"

	"github.com/dyouakim/traplanner/planner"
)

// conn4Offsets and conn8Offsets mirror gridgraph.NewGridGraph's precomputed
// neighbor table, in the same N,E,S,W[,diagonals] order.
var conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
var conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of
// blocked flags. It deep-copies the input, exactly as
// gridgraph.NewGridGraph does for cell values.
func NewGrid(blocked [][]bool, opts Options) (*Grid, error) {
	if len(blocked) == 0 || len(blocked[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(blocked), len(blocked[0])
	for _, row := range blocked {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	flat := make([]bool, w*h)
	cost := make([]int64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			flat[y*w+x] = blocked[y][x]
			cost[y*w+x] = 1
		}
	}

	offsets := conn4Offsets
	if opts.Conn == Conn8 {
		offsets = conn8Offsets
	}

	return &Grid{
		width:   w,
		height:  h,
		blocked: flat,
		cost:    cost,
		conn:    opts.Conn,
		offsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps (x,y) to a row-major planner.StateID: y*width + x.
func (g *Grid) index(x, y int) planner.StateID {
	return planner.StateID(y*g.width + x)
}

// Coordinate converts a row-major StateID back to (x,y). Panics with
// ErrOutOfBounds if id is out of range, mirroring gridgraph.Coordinate.
func (g *Grid) Coordinate(id planner.StateID) (x, y int) {
	i := int(id)
	if i < 0 || i >= g.width*g.height {
		panic(ErrOutOfBounds)
	}
	return i % g.width, i / g.width
}

// Block marks (x,y) impassable. Returns ErrOutOfBounds if the coordinate
// lies outside the grid.
func (g *Grid) Block(x, y int) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	g.blocked[g.index(x, y)] = true
	return nil
}

// Unblock marks (x,y) passable again.
func (g *Grid) Unblock(x, y int) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	g.blocked[g.index(x, y)] = false
	return nil
}

// IsBlocked reports whether (x,y) is impassable. Out-of-bounds coordinates
// are reported blocked.
func (g *Grid) IsBlocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.blocked[g.index(x, y)]
}

// SetCost overrides the unit traversal cost of entering (x,y). Only the
// coordinate is range-checked; cost itself is trusted as given (the
// caller is responsible for passing a sane positive value).
func (g *Grid) SetCost(x, y int, cost int64) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	g.cost[g.index(x, y)] = cost
	return nil
}

// SetGoal records the goal cell used by the heuristic methods. It does not
// itself touch the planner; callers must still call Planner.SetGoal with
// the matching StateID.
func (g *Grid) SetGoal(x, y int) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	g.goalX, g.goalY = x, y
	g.hasGoal = true
	return nil
}

// StateID returns the planner.StateID for (x,y), for callers wiring up
// Planner.SetStart/SetGoal.
func (g *Grid) StateID(x, y int) (planner.StateID, error) {
	if !g.InBounds(x, y) {
		return 0, ErrOutOfBounds
	}
	return g.index(x, y), nil
}

// GetSuccs implements planner.Graph: it emits the unblocked neighbors of
// id under the grid's connectivity, each at the entered cell's cost.
func (g *Grid) GetSuccs(id planner.StateID) ([]planner.StateID, []int64) {
	x, y := g.Coordinate(id)

	succs := make([]planner.StateID, 0, len(g.offsets))
	costs := make([]int64, 0, len(g.offsets))
	for _, d := range g.offsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) || g.IsBlocked(nx, ny) {
			continue
		}
		succs = append(succs, g.index(nx, ny))
		costs = append(costs, g.cost[g.index(nx, ny)])
	}

	return succs, costs
}

// PrintState implements planner.Graph, writing the cell's coordinates and
// blocked state.
func (g *Grid) PrintState(id planner.StateID, verbose bool, w io.Writer) {
	x, y := g.Coordinate(id)
	if !verbose {
		fmt.Fprintf(w, "(%d,%d)", x, y)
		return
	}
	fmt.Fprintf(w, "(%d,%d) blocked=%v cost=%d", x, y, g.IsBlocked(x, y), g.cost[g.index(x, y)])
}

// ManhattanHeuristic adapts a Grid into a planner.Heuristic using L1
// distance to the configured goal; admissible and consistent under Conn4.
type ManhattanHeuristic struct {
	grid *Grid
}

// NewManhattanHeuristic wraps grid for L1-distance heuristics.
func NewManhattanHeuristic(grid *Grid) *ManhattanHeuristic {
	return &ManhattanHeuristic{grid: grid}
}

// GetGoalHeuristic implements planner.Heuristic.
func (h *ManhattanHeuristic) GetGoalHeuristic(id planner.StateID) int64 {
	if !h.grid.hasGoal {
		return 0
	}
	x, y := h.grid.Coordinate(id)
	return int64(abs(x-h.grid.goalX) + abs(y-h.grid.goalY))
}

// ChebyshevHeuristic adapts a Grid into a planner.Heuristic using L∞
// distance to the configured goal; admissible and consistent under Conn8,
// where diagonal steps cost the same as orthogonal ones.
type ChebyshevHeuristic struct {
	grid *Grid
}

// NewChebyshevHeuristic wraps grid for L∞-distance heuristics.
func NewChebyshevHeuristic(grid *Grid) *ChebyshevHeuristic {
	return &ChebyshevHeuristic{grid: grid}
}

// GetGoalHeuristic implements planner.Heuristic.
func (h *ChebyshevHeuristic) GetGoalHeuristic(id planner.StateID) int64 {
	if !h.grid.hasGoal {
		return 0
	}
	x, y := h.grid.Coordinate(id)
	dx, dy := abs(x-h.grid.goalX), abs(y-h.grid.goalY)
	if dx > dy {
		return int64(dx)
	}
	return int64(dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
