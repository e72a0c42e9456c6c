// Package metrics provides a Prometheus-backed implementation of
// planner.Recorder, grounded in the pack's MetricManager/GaugeVec/CounterVec
// pattern (upside-down-research-agentic/internal/o11y). Unlike that
// pattern's package-level pusher singleton, Recorder is a plain value
// registered against a caller-supplied prometheus.Registerer, so a process
// hosting multiple planners (or tests) doesn't collide on global state.
package metrics
