package planner

// history.go implements the Expansion History (C4): an append-only log of
// (parent, g) improvements per state, and the parent-selection rule the
// Tree Restorer (C7) uses to rewind a state to its value as of an earlier
// expansion step (spec.md §4.6, §4.7.1).
//
// Two bugs spec.md §9 calls out in the original source are fixed here,
// not reproduced:
//
//   - storeParent in the source appends the *successor* being improved
//     into the *parent's* history. This records history on the improved
//     state instead, appending the parent that produced the improvement
//     (storeParentRecord below).
//   - updateParents in the source erases from parentHist while iterating
//     it by forward index, which skips the entry following any erasure.
//     latestValidParent below does a single reverse pass that copies the
//     surviving entries into a new slice, so no index is skewed.

// storeParentRecord appends an improvement record to s (the state whose
// g just improved), naming parent as the state that produced it. step is
// the expansion step during which the relaxation happened — the value
// parent.e will hold once its expand() call finishes (expand sets e only
// after all successors are relaxed, so reading parent.e here would still
// show its *previous* expansion, or "never" on a parent's first ever
// expansion). Snapshotting step directly keeps "valid at step k" a local
// comparison that survives the parent being restored later (spec.md §9,
// "recording parent_E at record time").
func storeParentRecord(s *searchState, parent *searchState, g int64, step uint64) {
	s.parentHist = append(s.parentHist, parentRecord{
		parent:  parent.id,
		g:       g,
		parentE: step,
	})
}

// latestValidParent scans s.parentHist for the entry whose recorded
// parentE is ≤ k (the parent had been expanded by step k) with the
// greatest such parentE — the most recent parent-expansion at or before
// k — purging any entry whose parent was not yet expanded at k.
//
// Entries are walked in reverse and the valid ones are copied into a new
// slice rather than erased in place, so no index of an entry still to be
// visited is perturbed, avoiding the source's forward-iteration erase bug.
//
// Returns ok=false if no entry is valid at k, meaning the caller should
// treat the state as not yet created at step k.
func latestValidParent(s *searchState, k uint64) (rec parentRecord, ok bool) {
	kept := make([]parentRecord, 0, len(s.parentHist))
	best := parentRecord{}
	found := false

	for i := len(s.parentHist) - 1; i >= 0; i-- {
		r := s.parentHist[i]
		if r.parentE > k {
			continue // invalid at this checkpoint: purged, not kept.
		}
		kept = append(kept, r)
		if !found || r.parentE > best.parentE {
			best = r
			found = true
		}
	}

	// kept was appended newest-first by the reverse scan; restore
	// chronological order so future scans still see improvements
	// oldest-first, matching how storeParentRecord appends them.
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	s.parentHist = kept

	return best, found
}
