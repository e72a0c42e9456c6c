package planner

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Planner is a single TRA* planning instance over one Graph/Heuristic
// pair. Create with New; it is not safe for concurrent use (spec.md §5).
type Planner struct {
	graph     Graph
	heuristic Heuristic

	pool   *statePool
	open   *openHeap
	incons *inconsSet

	// seenStates holds every state created in the current planning call,
	// in creation order (spec.md §3, Seen-States). The Tree Restorer
	// rebuilds this list to only the states kept after a restore.
	seenStates []*searchState

	startID, goalID         StateID
	hasStart, hasGoal       bool
	lastStartID, lastGoalID StateID
	haveLastStart           bool
	haveLastGoal            bool

	callNumber    uint64
	iteration     uint64
	expansionStep uint64

	initialEps, finalEps, deltaEps, currEps float64
	satisfiedEps                            float64

	bounded bool // enforce the time/expansion budget (see timedOut)
	improve bool // run further iterations shrinking eps

	allowPartialSolutions bool

	log     *log.Logger
	metrics Recorder
}

// Option configures a Planner at construction time, following the
// functional-options idiom the teacher uses throughout (e.g.
// dijkstra.Option).
type Option func(*Planner)

// WithLogger attaches a structured logger. A nil logger (the default)
// means the planner logs nothing.
func WithLogger(l *log.Logger) Option {
	return func(p *Planner) { p.log = l }
}

// WithMetrics attaches a metrics Recorder (see package metrics). A nil
// Recorder (the default) means no metrics are recorded.
func WithMetrics(r Recorder) Option {
	return func(p *Planner) { p.metrics = r }
}

// New constructs a Planner bound to graph and heuristic. Epsilon defaults
// to 1 (plain weighted-A*/Dijkstra-equivalent, per spec.md §8's
// monotonicity law) until SetEpsilonSchedule changes it.
func New(graph Graph, heuristic Heuristic, opts ...Option) *Planner {
	p := &Planner{
		graph:         graph,
		heuristic:     heuristic,
		pool:          newStatePool(),
		open:          newOpenHeap(),
		incons:        newInconsSet(),
		startID:       -1,
		goalID:        -1,
		lastStartID:   -1,
		lastGoalID:    -1,
		callNumber:    1,
		iteration:     1,
		initialEps:    1,
		finalEps:      1,
		deltaEps:      1,
		currEps:       1,
		satisfiedEps:  posInf,
		bounded:       true,
		improve:       false,
		expansionStep: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

const posInf = 1e18

func (p *Planner) logger() *log.Logger {
	if p.log == nil {
		return log.New(noopWriter{})
	}
	return p.log
}

type noopWriter struct{}

func (noopWriter) Write(b []byte) (int, error) { return len(b), nil }

// SetStart records the start state id. Validity is deferred to Replan,
// matching the source's set_start/set_goal (spec.md §6).
func (p *Planner) SetStart(id StateID) {
	p.startID = id
	p.hasStart = true
}

// SetGoal records the goal state id.
func (p *Planner) SetGoal(id StateID) {
	p.goalID = id
	p.hasGoal = true
}

// SetEpsilonSchedule configures the anytime epsilon schedule: curr starts
// at initial, shrinks by delta each iteration, floors at final.
func (p *Planner) SetEpsilonSchedule(initial, final, delta float64) {
	p.initialEps = initial
	p.finalEps = final
	p.deltaEps = delta
}

// SetSearchMode toggles bounded/improve: firstSolutionOnly clears both
// (no time/expansion budget, no further epsilon iterations); otherwise both
// are set (spec.md §6, set_search_mode, mirroring the source's
// t.bounded = t.improve = !return_first_solution). Replan and
// ReplanWithTimeParameters overwrite both flags from their own parameters,
// so the setting made here does not carry into those calls.
func (p *Planner) SetSearchMode(firstSolutionOnly bool) {
	p.bounded = !firstSolutionOnly
	p.improve = !firstSolutionOnly
}

// SetAllowPartialSolutions controls whether a budget-exhausted Replan with
// no solution yet extracts a path to the current OPEN front instead of
// returning an error (spec.md §7, "Partial solution").
func (p *Planner) SetAllowPartialSolutions(allow bool) {
	p.allowPartialSolutions = allow
}

// ForcePlanningFromScratch invalidates cached start/goal tracking so the
// next Replan fully reinitialises the search tree.
func (p *Planner) ForcePlanningFromScratch() {
	p.haveLastStart = false
	p.haveLastGoal = false
}

// ForcePlanningFromScratchAndFreeMemory does the above and additionally
// releases the State Pool, dropping every cached state.
func (p *Planner) ForcePlanningFromScratchAndFreeMemory() {
	p.ForcePlanningFromScratch()
	p.pool.resetAll()
	p.open.clear()
	p.incons.clear()
	p.seenStates = nil
}

// newCallID returns a short correlation id for this Replan call's log
// lines, grounded in the pack's request-correlation use of google/uuid
// (see SPEC_FULL.md §3).
func newCallID() string {
	return uuid.NewString()[:8]
}
