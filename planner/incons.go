package planner

// inconsSet is an append-only sequence acting as a set via the incons flag
// on each searchState (spec.md §3, Incons). States land here when they are
// re-improved after already being closed in the current iteration; they
// are deferred to the next iteration's OPEN.
type inconsSet struct {
	items []*searchState
}

func newInconsSet() *inconsSet {
	return &inconsSet{}
}

// add appends s to the set and marks it, unless already present.
func (in *inconsSet) add(s *searchState) {
	if s.incons {
		return
	}
	s.incons = true
	in.items = append(in.items, s)
}

// drainInto clears the set, pushing every member into open and clearing
// each member's incons flag, per the iteration-boundary rule in spec.md
// §4.5 ("migrating INCONS into OPEN between iterations").
func (in *inconsSet) drainInto(open *openHeap) {
	for _, s := range in.items {
		s.incons = false
		open.push(s)
	}
	in.items = in.items[:0]
}

// clear empties the set without touching OPEN; used when the search tree
// is reinitialised (the current iteration's INCONS semantics no longer
// apply to whatever iteration resumes after a restore).
func (in *inconsSet) clear() {
	for _, s := range in.items {
		s.incons = false
	}
	in.items = in.items[:0]
}
