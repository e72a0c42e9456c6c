package planner

import "io"

// Graph supplies successor states and edge costs for forward search.
// Costs must be non-negative; use InfiniteCost for an impassable edge.
// GetPreds is intentionally absent: the core only implements forward
// search (see spec.md §1, "Backward-search variants ... unimplemented").
type Graph interface {
	// GetSuccs returns the states reachable from id in one step and the
	// cost of each corresponding edge. The two slices are parallel and
	// must have equal length.
	GetSuccs(id StateID) (succs []StateID, costs []int64)

	// PrintState writes a human-readable description of id to w. verbose
	// requests additional detail. Implementations that don't support
	// printing may no-op.
	PrintState(id StateID, verbose bool, w io.Writer)
}

// Heuristic supplies an estimate of the cost from a state to the current
// goal. For the weighted-A* suboptimality bound to hold, it must be
// admissible (never overestimate) and consistent.
type Heuristic interface {
	GetGoalHeuristic(id StateID) int64
}

// EdgeCostObserver is the interface a caller uses to tell the planner that
// edge costs changed. Per spec.md's Non-goals ("changing edge costs ...
// treated as a full restart") and the original source's unimplemented
// update_succs_of_changededges/update_preds_of_changededges, this is not a
// reconciliation path — it forces a full replan from scratch.
type EdgeCostObserver interface {
	NotifyEdgeCostsChanged(succIDs, predIDs []StateID)
}

var _ EdgeCostObserver = (*Planner)(nil)

// NotifyEdgeCostsChanged implements EdgeCostObserver. The current revision
// does not reconcile individual edge changes (see spec.md §1 Non-goals and
// SPEC_FULL.md §4.2); it simply invalidates the cached search tree so the
// next Replan starts over.
func (p *Planner) NotifyEdgeCostsChanged(succIDs, predIDs []StateID) {
	p.logger().Debug("edge costs changed; forcing full replan",
		"succs", len(succIDs), "preds", len(predIDs))
	p.ForcePlanningFromScratch()
}
