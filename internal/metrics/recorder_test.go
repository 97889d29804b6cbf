package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorderIsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveBuildDuration(time.Second)
	r.IncBuildOutcome(OutcomeSuccess)
	r.SetPages(4)
	r.SetExcluded(1)
	r.SetTreeDepth(2)
	r.IncRebuild("watch")
}

func TestPrometheusRecorderRegisters(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveBuildDuration(125 * time.Millisecond)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.SetPages(10)
	pr.SetExcluded(3)
	pr.SetTreeDepth(4)
	pr.IncRebuild("schedule")

	mfs, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	assert.True(t, names["navbuilder_build_duration_seconds"])
	assert.True(t, names["navbuilder_build_outcomes_total"])
	assert.True(t, names["navbuilder_pages_total"])
	assert.True(t, names["navbuilder_tree_depth"])
	assert.True(t, names["navbuilder_rebuilds_total"])
}
