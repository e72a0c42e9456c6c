package planner

// heuristicChanged implements the Heuristic Reconciler (C8): after the
// goal (and hence h) changes, repeatedly find the earliest closed state
// whose new f-value (computed from its frozen v plus the refreshed h)
// violates the current OPEN front, and restore the tree to just before
// that state's expansion (spec.md §4.8).
func (p *Planner) heuristicChanged() {
	for {
		if p.open.Len() == 0 {
			return
		}
		m := p.open.peekMin()

		var earliest uint64
		found := false
		for _, s := range p.pool.all() {
			if s.e == noStep {
				continue // never expanded: not a candidate.
			}
			cost := computeKey(s.v, p.currEps, s.h)
			if cost > m.f && m.c < s.e {
				if !found || s.e < earliest {
					earliest = s.e
					found = true
				}
			}
		}

		if !found {
			return
		}

		p.logger().Debug("heuristic reconciliation: restoring", "target_step", earliest-1)
		p.restore(earliest - 1)
		if p.metrics != nil {
			p.metrics.ObserveRestore()
		}
	}
}
