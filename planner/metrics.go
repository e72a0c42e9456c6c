package planner

// Recorder receives planner lifecycle events for external instrumentation.
// Planner never imports a concrete metrics backend; see package metrics
// for a Prometheus-backed implementation (SPEC_FULL.md §3).
type Recorder interface {
	ObserveExpansion()
	ObserveIteration(satisfiedEps float64)
	ObserveRestore()
	ObserveReplan(code Code)
}
