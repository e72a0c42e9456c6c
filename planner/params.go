package planner

import "time"

// BudgetType selects how improvePath's per-call budget is measured
// (spec.md §6, TimeParameters.type).
type BudgetType int

const (
	// BudgetTime bounds a call by wall-clock duration.
	BudgetTime BudgetType = iota
	// BudgetExpansions bounds a call by expansion count.
	BudgetExpansions
)

// TimeParameters is the primitive budget form Replan accepts (spec.md §6).
// Bounded enables the time/expansion budget check; Improve selects further
// anytime iterations after a solution instead of stopping at the first one.
// The Init fields apply only until the first solution is found.
type TimeParameters struct {
	Type    BudgetType
	Bounded bool
	Improve bool

	MaxExpansionsInit int
	MaxExpansions     int

	MaxAllowedTimeInit time.Duration
	MaxAllowedTime     time.Duration
}

// ReplanParams is the convenience form carrying an epsilon schedule
// alongside the budget (spec.md §6).
type ReplanParams struct {
	MaxTime            time.Duration
	RepairTime         time.Duration
	InitialEps         float64
	FinalEps           float64
	DecEps             float64
	ReturnFirstSolution bool
}

// DefaultReplanParams mirrors the source's ARAPlanner-style defaults: a
// single first-solution pass at epsilon 1 (Dijkstra-equivalent), run to
// completion rather than against a time budget (spec.md §6's mapping
// sets bounded = improve = !return_first_solution, so requesting only
// the first solution also disables the budget check).
func DefaultReplanParams() ReplanParams {
	return ReplanParams{
		MaxTime:             time.Second,
		InitialEps:          1,
		FinalEps:            1,
		DecEps:              0.2,
		ReturnFirstSolution: true,
	}
}

// toTimeParameters converts a ReplanParams into the primitive
// TimeParameters form, per spec.md §6's mapping table.
func (r ReplanParams) toTimeParameters() TimeParameters {
	bounded := !r.ReturnFirstSolution
	improve := !r.ReturnFirstSolution

	repair := r.RepairTime
	if repair <= 0 {
		repair = r.MaxTime
	}

	return TimeParameters{
		Type:               BudgetTime,
		Bounded:            bounded,
		Improve:            improve,
		MaxAllowedTimeInit: r.MaxTime,
		MaxAllowedTime:     repair,
	}
}

// toReplanParams recovers an approximate ReplanParams from a
// TimeParameters and the planner's current epsilon schedule. This is the
// reverse of toTimeParameters, kept per SPEC_FULL.md §4 so a caller that
// only deals in the primitive form can still report back an effective
// ReplanParams (e.g. for a CLI summary).
func (t TimeParameters) toReplanParams(initialEps, finalEps, deltaEps float64) ReplanParams {
	return ReplanParams{
		MaxTime:             t.MaxAllowedTimeInit,
		RepairTime:          t.MaxAllowedTime,
		InitialEps:          initialEps,
		FinalEps:            finalEps,
		DecEps:              deltaEps,
		ReturnFirstSolution: !t.Improve,
	}
}
