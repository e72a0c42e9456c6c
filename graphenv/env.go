package graphenv

import (
	"errors"
	"fmt"
	"io"

	"github.com/dyouakim/traplanner/planner"
)

// ErrUnknownVertex indicates a StateID with no corresponding Graph
// vertex, typically from a stale Env built before the graph changed.
var ErrUnknownVertex = errors.New("graphenv: state id has no corresponding vertex")

// Env adapts a *Graph into a planner.Graph. It snapshots the vertex
// catalog at construction time, per Graph.Vertices' deterministic
// lex-sorted order, so planner.StateID assignment is stable across repeated
// construction from the same graph contents.
type Env struct {
	g     *Graph
	idToV []string
	vToID map[string]planner.StateID
}

// NewEnv builds an Env over g. Returns an error if g has no vertices.
func NewEnv(g *Graph) (*Env, error) {
	ids := g.Vertices()
	if len(ids) == 0 {
		return nil, errors.New("graphenv: graph has no vertices")
	}

	vToID := make(map[string]planner.StateID, len(ids))
	for i, vid := range ids {
		vToID[vid] = planner.StateID(i)
	}

	return &Env{g: g, idToV: ids, vToID: vToID}, nil
}

// StateID returns the planner.StateID assigned to the Graph vertex
// vertexID. Returns ErrUnknownVertex if vertexID is not in the graph.
func (e *Env) StateID(vertexID string) (planner.StateID, error) {
	id, ok := e.vToID[vertexID]
	if !ok {
		return 0, ErrUnknownVertex
	}
	return id, nil
}

// VertexID returns the Graph vertex ID backing a planner.StateID.
func (e *Env) VertexID(id planner.StateID) (string, error) {
	i := int(id)
	if i < 0 || i >= len(e.idToV) {
		return "", ErrUnknownVertex
	}
	return e.idToV[i], nil
}

// GetSuccs implements planner.Graph using Graph.Successors: each
// outgoing edge becomes a (StateID, Weight) pair.
func (e *Env) GetSuccs(id planner.StateID) ([]planner.StateID, []int64) {
	vid, err := e.VertexID(id)
	if err != nil {
		return nil, nil
	}

	others, weights, err := e.g.Successors(vid)
	if err != nil {
		return nil, nil
	}

	succs := make([]planner.StateID, 0, len(others))
	costs := make([]int64, 0, len(others))
	for i, other := range others {
		sid, err := e.StateID(other)
		if err != nil {
			continue
		}
		succs = append(succs, sid)
		costs = append(costs, weights[i])
	}

	return succs, costs
}

// PrintState implements planner.Graph.
func (e *Env) PrintState(id planner.StateID, verbose bool, w io.Writer) {
	vid, err := e.VertexID(id)
	if err != nil {
		fmt.Fprintf(w, "<unknown state %d>", id)
		return
	}
	if !verbose {
		fmt.Fprint(w, vid)
		return
	}
	degree, _ := e.g.Degree(vid)
	fmt.Fprintf(w, "%s degree=%d", vid, degree)
}

// DistanceFunc computes a heuristic distance estimate between two Graph
// vertex IDs, e.g. Euclidean distance over coordinates kept alongside the
// graph by the caller.
// Implementations must be admissible (never overestimate the true shortest
// path cost) for the weighted-A* suboptimality bound to hold.
type DistanceFunc func(from, to string) int64

// Heuristic adapts a DistanceFunc and a fixed goal vertex into a
// planner.Heuristic.
type Heuristic struct {
	env    *Env
	goalID string
	dist   DistanceFunc
}

// NewHeuristic builds a Heuristic over env, estimating distance to
// goalVertexID via dist.
func NewHeuristic(env *Env, goalVertexID string, dist DistanceFunc) *Heuristic {
	return &Heuristic{env: env, goalID: goalVertexID, dist: dist}
}

// GetGoalHeuristic implements planner.Heuristic.
func (h *Heuristic) GetGoalHeuristic(id planner.StateID) int64 {
	vid, err := h.env.VertexID(id)
	if err != nil {
		return 0
	}
	return h.dist(vid, h.goalID)
}

// ZeroHeuristic is a planner.Heuristic that always returns 0, reducing the
// planner to plain Dijkstra. Useful when no admissible distance estimate is
// available for the vertex IDs in play.
type ZeroHeuristic struct{}

// GetGoalHeuristic implements planner.Heuristic.
func (ZeroHeuristic) GetGoalHeuristic(planner.StateID) int64 { return 0 }
