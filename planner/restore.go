package planner

// restore implements the Tree Restorer (C7): rewind every seen state's g,
// parent, and closed/open membership to its value as of immediately after
// expansion step k (spec.md §4.7).
func (p *Planner) restore(k uint64) {
	if k == 0 {
		p.reinitializeSearch()
		return
	}

	p.open.clear()
	p.incons.clear()

	kept := p.seenStates[:0:0]
	for _, t := range p.seenStates {
		switch {
		case t.id == p.startID && p.hasStart:
			p.restoreStart(t, k)
			kept = append(kept, t)

		case t.e <= k:
			// Created and expanded at or before k: consider it closed.
			rec, ok := latestValidParent(t, k)
			if !ok {
				p.resetNotYetCreated(t)
				continue
			}
			t.g = rec.g
			t.bestPred = rec.parent
			t.hasPred = true
			t.incons = false
			kept = append(kept, t)

		case t.c <= k:
			// Created but not yet expanded at step k: keep in OPEN.
			rec, ok := latestValidParent(t, k)
			if !ok {
				p.resetNotYetCreated(t)
				continue
			}
			t.g = rec.g
			t.bestPred = rec.parent
			t.hasPred = true
			t.v = InfiniteCost
			t.f = computeKey(t.g, p.currEps, t.h)
			t.e = noStep
			t.incons = false
			p.open.push(t)
			kept = append(kept, t)

		default:
			// Not yet created at step k.
			p.resetNotYetCreated(t)
		}
	}

	p.seenStates = kept
	p.expansionStep = k + 1
}

// restoreStart special-cases the start state: it has no parentHist entry
// (its g=0 is assigned directly, never via storeParentRecord), so the
// general "latest valid parent" rule of spec.md §4.7.1 ("if none exists,
// the state should fall into the not created case") would otherwise wipe
// it out the moment k > 0. The start state was created at step 0, so it
// is always at least "created" for any k ≥ 0; see DESIGN.md for this
// resolved open question.
func (p *Planner) restoreStart(t *searchState, k uint64) {
	t.g = 0
	t.bestPred = noParent
	t.hasPred = false
	t.incons = false

	if t.e <= k {
		return // expanded at or before k: stays closed.
	}

	t.v = InfiniteCost
	t.f = computeKey(t.g, p.currEps, t.h)
	t.e = noStep
	p.open.push(t)
}

// resetNotYetCreated wipes a state back to "never seen": used both for
// the t.C > k case and for the "no valid parent found" fallback spec.md
// §4.7.1 specifies.
func (p *Planner) resetNotYetCreated(t *searchState) {
	t.v = InfiniteCost
	t.g = InfiniteCost
	t.c = noStep
	t.e = noStep
	t.bestPred = noParent
	t.hasPred = false
	t.incons = false
	t.parentHist = nil
}

// reinitializeSearch implements restore(0): a full reset to the search
// tree's initial shape, re-pushing only the start state (spec.md §4.7,
// "For k = 0").
func (p *Planner) reinitializeSearch() {
	p.open.clear()
	p.incons.clear()

	start := p.pool.getOrCreate(p.startID)
	p.reinit(start)
	start.g = 0
	start.c = 0
	start.e = noStep
	start.f = computeKey(start.g, p.currEps, start.h)

	p.expansionStep = 1
	p.open.push(start)
	p.seenStates = []*searchState{start}
}
