package planner

// statePool owns every searchState ever touched by the planner. It
// maintains a dense, direct-index mapping from StateID to a slot in
// states, growing the slot array to max(id)+1 on first sight of an id
// (spec.md §4.1). All other components hold non-owning references
// (StateID or *searchState) into the pool; the pool is the only owner.
type statePool struct {
	// index[id] is the slot in states for StateID id, or -1 if id has
	// never been seen. Grown lazily as larger ids are requested.
	index []int
	states []*searchState
}

func newStatePool() *statePool {
	return &statePool{}
}

// getOrCreate returns the searchState for id, creating and registering a
// fresh zero-value state (call_number == 0, so the next reinit() always
// fires) if this is the first time id has been referenced.
func (p *statePool) getOrCreate(id StateID) *searchState {
	p.growIndexTo(id)
	if p.index[id] != -1 {
		return p.states[p.index[id]]
	}

	s := &searchState{
		id:        id,
		bestPred:  noParent,
		c:         noStep,
		e:         noStep,
		heapIndex: -1,
	}
	p.index[id] = len(p.states)
	p.states = append(p.states, s)

	return s
}

// lookup returns the searchState for id without creating it, and whether
// it has ever been seen.
func (p *statePool) lookup(id StateID) (*searchState, bool) {
	if int(id) >= len(p.index) || id < 0 {
		return nil, false
	}
	idx := p.index[id]
	if idx == -1 {
		return nil, false
	}
	return p.states[idx], true
}

func (p *statePool) growIndexTo(id StateID) {
	if int(id) < len(p.index) {
		return
	}
	grown := make([]int, int(id)+1)
	copy(grown, p.index)
	for i := len(p.index); i < len(grown); i++ {
		grown[i] = -1
	}
	p.index = grown
}

// all returns every state currently tracked by the pool, in no particular
// order. Used by the Heuristic Reconciler (C8), which must scan every
// state the pool has ever created.
func (p *statePool) all() []*searchState {
	return p.states
}

// resetAll releases every state and clears the id mapping. Used by
// ForcePlanningFromScratchAndFreeMemory.
func (p *statePool) resetAll() {
	p.index = nil
	p.states = nil
}

// reinit lazily (re)initialises state if it was last touched in a
// different planning call: g, f and v become InfiniteCost, h is refreshed
// from the heuristic oracle, and the closed iteration, parent and incons
// flag are cleared. The improvement history and the c/e expansion steps
// are left as they are (spec.md §4.1: "History vectors are NOT cleared by
// reinit").
func (p *Planner) reinit(s *searchState) {
	if s.callNumber == p.callNumber {
		return
	}

	s.g = InfiniteCost
	s.f = InfiniteCost
	s.v = InfiniteCost
	s.h = p.heuristic.GetGoalHeuristic(s.id)
	s.iterationClosed = 0
	s.bestPred = noParent
	s.hasPred = false
	s.incons = false
	s.callNumber = p.callNumber
}
