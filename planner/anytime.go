package planner

import (
	"errors"
	"time"
)

// Solution is the outcome of a successful or partial Replan.
type Solution struct {
	Path []StateID
	Cost int64
}

// Replan runs the anytime loop to convergence or to params' budget,
// returning the best path found (spec.md §4.5, §6).
func (p *Planner) Replan(params ReplanParams) (Code, Solution, error) {
	p.SetEpsilonSchedule(params.InitialEps, params.FinalEps, params.DecEps)
	return p.ReplanWithTimeParameters(params.toTimeParameters())
}

// ReplanWithTimeParameters is the primitive entry point accepting a
// TimeParameters budget directly (spec.md §6).
func (p *Planner) ReplanWithTimeParameters(tp TimeParameters) (Code, Solution, error) {
	callID := newCallID()
	log := p.logger().With("call_id", callID)
	log.Debug("find path to goal")

	if !p.hasStart {
		log.Error("start state not set")
		return StartNotSet, Solution{}, ErrStartNotSet
	}
	if !p.hasGoal {
		log.Error("goal state not set")
		return GoalNotSet, Solution{}, ErrGoalNotSet
	}

	p.bounded = tp.Bounded
	p.improve = tp.Improve

	startChanged := !p.haveLastStart || p.lastStartID != p.startID
	goalChanged := !startChanged && (!p.haveLastGoal || p.lastGoalID != p.goalID)

	if startChanged {
		log.Debug("reinitialize search")
		p.callNumber++
		p.reinitializeForNewStart()
		p.lastStartID = p.startID
		p.haveLastStart = true
		p.lastGoalID = p.goalID
		p.haveLastGoal = true
	} else if goalChanged {
		log.Debug("refresh heuristics, keys, and reorder open list")
		p.refreshHeuristics()
		p.reorderOpen()
		p.heuristicChanged()
		p.satisfiedEps = posInf
		p.lastGoalID = p.goalID
		p.haveLastGoal = true
	}

	goal := p.pool.getOrCreate(p.goalID)
	p.reinit(goal)

	startTime := timeNow()
	var expansions int
	var elapsed time.Duration

	code := ExhaustedOpenList
	for p.satisfiedEps > p.finalEps {
		if p.currEps == p.satisfiedEps {
			if !p.improve {
				break
			}
			p.iteration++
			p.currEps -= p.deltaEps
			if p.currEps < p.finalEps {
				p.currEps = p.finalEps
			}
			p.incons.drainInto(p.open)
			p.reorderOpen()
		}

		code = p.improvePath(tp, goal, startTime, &expansions, &elapsed)
		if code != Success {
			break
		}
		p.satisfiedEps = p.currEps
		if p.metrics != nil {
			p.metrics.ObserveIteration(p.satisfiedEps)
		}
	}

	result := code
	if p.satisfiedEps != posInf {
		result = Success
	} else if p.allowPartialSolutions && p.open.Len() > 0 {
		result = PartialSuccess
	}
	if p.metrics != nil {
		p.metrics.ObserveReplan(result)
	}

	if p.satisfiedEps == posInf {
		if p.allowPartialSolutions && p.open.Len() > 0 {
			sol := p.extractPath(p.open.peekMin())
			log.Debug("returning partial solution", "cost", sol.Cost)
			return PartialSuccess, sol, nil
		}
		return code, Solution{}, codeToError(code)
	}

	sol := p.extractPath(goal)
	log.Debug("replan succeeded", "cost", sol.Cost, "satisfied_eps", p.satisfiedEps)
	return Success, sol, nil
}

// timeNow is a seam so tests can't be flaky on wall-clock noise; kept as
// a plain function (not a field) since the planner is not meant to be
// mocked mid-call, only the budget comparison needs a clock.
var timeNow = time.Now

func codeToError(c Code) error {
	switch c {
	case TimedOut:
		return errors.New("planner: timed out")
	case ExhaustedOpenList:
		return errors.New("planner: exhausted open list")
	default:
		return errors.New("planner: " + c.String())
	}
}

// improvePath implements C6's improve_path: pop and expand states from
// OPEN until the goal is provably reached, the budget is exhausted, or
// OPEN empties (spec.md §4.5).
func (p *Planner) improvePath(tp TimeParameters, goal *searchState, startTime time.Time, expansions *int, elapsed *time.Duration) Code {
	for p.open.Len() > 0 {
		m := p.open.peekMin()
		*elapsed = timeNow().Sub(startTime)

		if m.f >= goal.f || m == goal {
			return Success
		}

		if p.timedOut(tp, *expansions, *elapsed) {
			return TimedOut
		}

		p.open.popMin()

		if m.iterationClosed == p.iteration {
			panic("planner: state already closed this iteration")
		}
		if m.g >= InfiniteCost {
			panic("planner: popped state with infinite g")
		}

		m.iterationClosed = p.iteration
		m.v = m.g
		p.expand(m)
		*expansions++
	}

	return ExhaustedOpenList
}

// timedOut implements spec.md §4.5's budget check: unbounded mode never
// times out; otherwise the _init limit applies until the first solution
// is found (satisfiedEps == +inf), and the normal limit applies after.
func (p *Planner) timedOut(tp TimeParameters, expansions int, elapsed time.Duration) bool {
	if !p.bounded {
		return false
	}

	firstSolutionPending := p.satisfiedEps == posInf

	switch tp.Type {
	case BudgetExpansions:
		limit := tp.MaxExpansions
		if firstSolutionPending {
			limit = tp.MaxExpansionsInit
		}
		return expansions >= limit
	case BudgetTime:
		limit := tp.MaxAllowedTime
		if firstSolutionPending {
			limit = tp.MaxAllowedTimeInit
		}
		return elapsed >= limit
	default:
		return false
	}
}

// extractPath walks bestPred from to back to the start, reversing the
// result (spec.md §4.5, extract_path).
func (p *Planner) extractPath(to *searchState) Solution {
	var rev []StateID
	for s := to; ; {
		rev = append(rev, s.id)
		if !s.hasPred {
			break
		}
		parent, ok := p.pool.lookup(s.bestPred)
		if !ok {
			break
		}
		s = parent
	}

	path := make([]StateID, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return Solution{Path: path, Cost: to.g}
}

// reinitializeForNewStart resets the whole search tree for a changed
// start state (spec.md §4.5 step 2).
func (p *Planner) reinitializeForNewStart() {
	p.open.clear()
	p.incons.clear()

	start := p.pool.getOrCreate(p.startID)
	p.reinit(start)
	goal := p.pool.getOrCreate(p.goalID)
	p.reinit(goal)

	start.g = 0
	p.expansionStep = 1
	start.c = 0
	start.e = noStep
	p.iteration = 1
	p.currEps = p.initialEps
	p.satisfiedEps = posInf
	start.f = computeKey(start.g, p.currEps, start.h)

	p.open.push(start)
	p.seenStates = []*searchState{start}
}

// refreshHeuristics recomputes h for every pool state, used when only the
// goal changed (spec.md §4.5 step 3, recomputeHeuristics).
func (p *Planner) refreshHeuristics() {
	for _, s := range p.pool.all() {
		s.h = p.heuristic.GetGoalHeuristic(s.id)
	}
}

// reorderOpen recomputes f for every state in OPEN and re-heapifies
// (spec.md §4.5 step 3 / C6, reorderOpen).
func (p *Planner) reorderOpen() {
	p.open.iterate(func(s *searchState) {
		s.f = computeKey(s.g, p.currEps, s.h)
	})
	p.open.reheapifyAll()
}
