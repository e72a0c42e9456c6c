package planner

// expand implements the Expansion Engine (C5): freeze s's expansion cost,
// generate successors via the Graph collaborator, relax each edge, and
// record history so the Tree Restorer can later rewind past this step
// (spec.md §4.4).
func (p *Planner) expand(s *searchState) {
	s.v = s.g

	succs, costs := p.graph.GetSuccs(s.id)
	p.logger().Debug("expanding state", "state", s.id, "successors", len(succs), "step", p.expansionStep)

	for i, succID := range succs {
		cost := costs[i]
		if cost < 0 {
			panic(ErrNegativeCost)
		}

		t := p.pool.getOrCreate(succID)
		p.reinit(t)

		newG := addCost(s.v, cost)
		if newG >= t.g {
			continue
		}

		t.g = newG
		t.bestPred = s.id
		t.hasPred = true
		storeParentRecord(t, s, newG, p.expansionStep)

		if t.iterationClosed != p.iteration {
			t.f = computeKey(newG, p.currEps, t.h)
			if p.open.contains(t) {
				p.open.decreaseKey(t)
			} else {
				t.c = p.expansionStep
				p.seenStates = append(p.seenStates, t)
				p.open.push(t)
			}
		} else if !t.incons {
			p.incons.add(t)
		}
	}

	s.e = p.expansionStep
	p.expansionStep++

	if p.metrics != nil {
		p.metrics.ObserveExpansion()
	}
}

// addCost sums a and b while saturating at InfiniteCost instead of
// overflowing, so a chain of InfiniteCost edges stays InfiniteCost.
func addCost(a, b int64) int64 {
	sum := a + b
	if sum < 0 || sum > InfiniteCost {
		return InfiniteCost
	}
	return sum
}

// computeKey truncates eps*h to an integer and adds it to g, matching the
// source's `g + (unsigned int)(eps * h)` (spec.md §4.4, "Numeric
// semantics").
func computeKey(g int64, eps float64, h int64) int64 {
	inflated := int64(eps * float64(h))
	return addCost(g, inflated)
}
