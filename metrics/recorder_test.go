package metrics_test

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyouakim/traplanner/metrics"
	"github.com/dyouakim/traplanner/planner"
)

func TestRecorder_ObserveExpansionIncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := metrics.NewRecorder(reg, "test", "planner")
	require.NoError(t, err)

	r.ObserveExpansion()
	r.ObserveExpansion()

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Equal(t, float64(2), counterValue(t, mfs, "test_planner_expansions_total"))
}

func TestRecorder_ObserveIterationSetsGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := metrics.NewRecorder(reg, "test", "planner")
	require.NoError(t, err)

	r.ObserveIteration(2)
	r.ObserveIteration(1)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Equal(t, float64(1), gaugeValue(t, mfs, "test_planner_satisfied_epsilon"))
}

func TestRecorder_ObserveReplanLabelsByCode(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := metrics.NewRecorder(reg, "test", "planner")
	require.NoError(t, err)

	r.ObserveReplan(planner.Success)
	r.ObserveReplan(planner.TimedOut)
	r.ObserveReplan(planner.Success)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != "test_planner_replans_total" {
			continue
		}
		for _, m := range mf.Metric {
			for _, l := range m.Label {
				if l.GetValue() == "SUCCESS" {
					assert.Equal(t, float64(2), m.Counter.GetValue())
				}
			}
		}
	}
}

func counterValue(t *testing.T, mfs []*dto.MetricFamily, name string) float64 {
	t.Helper()
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf.Metric[0].Counter.GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func gaugeValue(t *testing.T, mfs []*dto.MetricFamily, name string) float64 {
	t.Helper()
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf.Metric[0].Gauge.GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}
