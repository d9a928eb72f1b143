package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorder_SafeToCall(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveStageDuration("parse", time.Second)
	r.ObserveBuildDuration(time.Second)
	r.AddPagesWritten(3)
	r.IncBuildOutcome("success")
}

func TestPrometheusRecorder_RegistersAndCounts(t *testing.T) {
	reg := prom.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.ObserveStageDuration("parse", 120*time.Millisecond)
	r.ObserveBuildDuration(time.Second)
	r.AddPagesWritten(5)
	r.IncBuildOutcome("success")
	r.IncBuildOutcome("success")

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]bool{}
	for _, mf := range families {
		byName[mf.GetName()] = true
		if mf.GetName() == "bloggen_build_outcomes_total" {
			require.Len(t, mf.GetMetric(), 1)
			assert.Equal(t, float64(2), mf.GetMetric()[0].GetCounter().GetValue())
		}
		if mf.GetName() == "bloggen_pages_written_total" {
			assert.Equal(t, float64(5), mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
	assert.True(t, byName["bloggen_stage_duration_seconds"])
	assert.True(t, byName["bloggen_build_duration_seconds"])
}

func TestPrometheusRecorder_NilReceiverSafe(t *testing.T) {
	var r *PrometheusRecorder
	r.ObserveStageDuration("parse", time.Second)
	r.ObserveBuildDuration(time.Second)
	r.AddPagesWritten(1)
	r.IncBuildOutcome("failed")
}
