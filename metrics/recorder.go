package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dyouakim/traplanner/planner"
)

// Recorder implements planner.Recorder with Prometheus collectors: an
// expansion counter, a satisfied-epsilon gauge (the ARA*-style anytime
// convergence signal), a restore counter (Tree Restorer/Heuristic
// Reconciler activity), and a replan-result counter partitioned by
// planner.Code.
type Recorder struct {
	expansions prometheus.Counter
	restores   prometheus.Counter
	satisfied  prometheus.Gauge
	replans    *prometheus.CounterVec
}

// NewRecorder constructs a Recorder and registers its collectors against
// reg. namespace/subsystem follow prometheus.Opts conventions (e.g.
// namespace="traplanner", subsystem="planner").
func NewRecorder(reg prometheus.Registerer, namespace, subsystem string) (*Recorder, error) {
	r := &Recorder{
		expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "expansions_total",
			Help:      "Total number of states expanded by the planner.",
		}),
		restores: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "restores_total",
			Help:      "Total number of search-tree restores (reconciliation + explicit rewind).",
		}),
		satisfied: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "satisfied_epsilon",
			Help:      "Suboptimality bound satisfied by the most recently completed anytime iteration.",
		}),
		replans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "replans_total",
			Help:      "Total Replan calls, partitioned by result code.",
		}, []string{"code"}),
	}

	for _, c := range []prometheus.Collector{r.expansions, r.restores, r.satisfied, r.replans} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ObserveExpansion implements planner.Recorder.
func (r *Recorder) ObserveExpansion() {
	r.expansions.Inc()
}

// ObserveIteration implements planner.Recorder.
func (r *Recorder) ObserveIteration(satisfiedEps float64) {
	r.satisfied.Set(satisfiedEps)
}

// ObserveRestore implements planner.Recorder.
func (r *Recorder) ObserveRestore() {
	r.restores.Inc()
}

// ObserveReplan implements planner.Recorder.
func (r *Recorder) ObserveReplan(code planner.Code) {
	r.replans.WithLabelValues(codeLabel(code)).Inc()
}

func codeLabel(c planner.Code) string {
	if s := c.String(); s != "" {
		return s
	}
	return strconv.Itoa(int(c))
}

var _ planner.Recorder = (*Recorder)(nil)
