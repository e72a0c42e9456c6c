package gridenv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyouakim/traplanner/gridenv"
)

func blank(w, h int) [][]bool {
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = make([]bool, w)
	}
	return rows
}

func TestNewGrid_RejectsEmpty(t *testing.T) {
	_, err := gridenv.NewGrid(nil, gridenv.DefaultOptions())
	assert.ErrorIs(t, err, gridenv.ErrEmptyGrid)

	_, err = gridenv.NewGrid([][]bool{{}}, gridenv.DefaultOptions())
	assert.ErrorIs(t, err, gridenv.ErrEmptyGrid)
}

func TestNewGrid_RejectsNonRectangular(t *testing.T) {
	_, err := gridenv.NewGrid([][]bool{{false, false}, {false}}, gridenv.DefaultOptions())
	assert.ErrorIs(t, err, gridenv.ErrNonRectangular)
}

func TestNewGrid_DeepCopiesInput(t *testing.T) {
	rows := blank(3, 3)
	g, err := gridenv.NewGrid(rows, gridenv.DefaultOptions())
	require.NoError(t, err)

	rows[1][1] = true // mutate caller's slice after construction
	assert.False(t, g.IsBlocked(1, 1))
}

func TestGrid_BlockAndUnblock(t *testing.T) {
	g, err := gridenv.NewGrid(blank(3, 3), gridenv.DefaultOptions())
	require.NoError(t, err)

	require.NoError(t, g.Block(1, 1))
	assert.True(t, g.IsBlocked(1, 1))

	require.NoError(t, g.Unblock(1, 1))
	assert.False(t, g.IsBlocked(1, 1))

	assert.ErrorIs(t, g.Block(-1, 0), gridenv.ErrOutOfBounds)
}

func TestGrid_OutOfBoundsIsBlocked(t *testing.T) {
	g, err := gridenv.NewGrid(blank(2, 2), gridenv.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, g.IsBlocked(-1, 0))
	assert.True(t, g.IsBlocked(5, 5))
}

func TestGrid_GetSuccsConn4(t *testing.T) {
	g, err := gridenv.NewGrid(blank(3, 3), gridenv.DefaultOptions())
	require.NoError(t, err)

	id, err := g.StateID(1, 1)
	require.NoError(t, err)

	succs, costs := g.GetSuccs(id)
	assert.Len(t, succs, 4)
	for _, c := range costs {
		assert.Equal(t, int64(1), c)
	}
}

func TestGrid_GetSuccsConn4_CornerHasTwoNeighbors(t *testing.T) {
	g, err := gridenv.NewGrid(blank(3, 3), gridenv.DefaultOptions())
	require.NoError(t, err)

	id, err := g.StateID(0, 0)
	require.NoError(t, err)

	succs, _ := g.GetSuccs(id)
	assert.Len(t, succs, 2)
}

func TestGrid_GetSuccsExcludesBlocked(t *testing.T) {
	g, err := gridenv.NewGrid(blank(3, 3), gridenv.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, g.Block(1, 0))

	id, err := g.StateID(0, 0)
	require.NoError(t, err)

	succs, _ := g.GetSuccs(id)
	assert.Len(t, succs, 1) // only (0,1) remains reachable from (0,0)
}

func TestGrid_Conn8HasDiagonals(t *testing.T) {
	g, err := gridenv.NewGrid(blank(3, 3), gridenv.Options{Conn: gridenv.Conn8})
	require.NoError(t, err)

	id, err := g.StateID(1, 1)
	require.NoError(t, err)

	succs, _ := g.GetSuccs(id)
	assert.Len(t, succs, 8)
}

func TestGrid_CoordinateRoundTrip(t *testing.T) {
	g, err := gridenv.NewGrid(blank(4, 3), gridenv.DefaultOptions())
	require.NoError(t, err)

	id, err := g.StateID(2, 1)
	require.NoError(t, err)

	x, y := g.Coordinate(id)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}

func TestManhattanHeuristic_ZeroAtGoal(t *testing.T) {
	g, err := gridenv.NewGrid(blank(3, 3), gridenv.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, g.SetGoal(2, 2))

	h := gridenv.NewManhattanHeuristic(g)
	goalID, _ := g.StateID(2, 2)
	assert.Equal(t, int64(0), h.GetGoalHeuristic(goalID))

	startID, _ := g.StateID(0, 0)
	assert.Equal(t, int64(4), h.GetGoalHeuristic(startID))
}

func TestChebyshevHeuristic_UsesMaxAxis(t *testing.T) {
	g, err := gridenv.NewGrid(blank(5, 5), gridenv.Options{Conn: gridenv.Conn8})
	require.NoError(t, err)
	require.NoError(t, g.SetGoal(4, 4))

	h := gridenv.NewChebyshevHeuristic(g)
	startID, _ := g.StateID(0, 0)
	assert.Equal(t, int64(4), h.GetGoalHeuristic(startID))
}

func TestHeuristic_ZeroBeforeGoalSet(t *testing.T) {
	g, err := gridenv.NewGrid(blank(3, 3), gridenv.DefaultOptions())
	require.NoError(t, err)

	h := gridenv.NewManhattanHeuristic(g)
	id, _ := g.StateID(2, 2)
	assert.Equal(t, int64(0), h.GetGoalHeuristic(id))
}
