package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration prom.Histogram
	buildOutcome  *prom.CounterVec
	pages         prom.Gauge
	excluded      prom.Gauge
	treeDepth     prom.Gauge
	rebuilds      *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "navbuilder",
			Name:      "build_duration_seconds",
			Help:      "Total navigation build duration",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "navbuilder",
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
		pages: prom.NewGauge(prom.GaugeOpts{
			Namespace: "navbuilder",
			Name:      "pages_total",
			Help:      "Pages considered during the last build",
		}),
		excluded: prom.NewGauge(prom.GaugeOpts{
			Namespace: "navbuilder",
			Name:      "pages_excluded",
			Help:      "Pages excluded from navigation during the last build",
		}),
		treeDepth: prom.NewGauge(prom.GaugeOpts{
			Namespace: "navbuilder",
			Name:      "tree_depth",
			Help:      "Maximum nesting depth of the last navigation tree",
		}),
		rebuilds: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "navbuilder",
			Name:      "rebuilds_total",
			Help:      "Rebuild count by trigger",
		}, []string{"trigger"}),
	}
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.pages, pr.excluded, pr.treeDepth, pr.rebuilds)
	return pr
}

func (pr *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	pr.buildDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncBuildOutcome(outcome string) {
	pr.buildOutcome.WithLabelValues(outcome).Inc()
}

func (pr *PrometheusRecorder) SetPages(n int)     { pr.pages.Set(float64(n)) }
func (pr *PrometheusRecorder) SetExcluded(n int)  { pr.excluded.Set(float64(n)) }
func (pr *PrometheusRecorder) SetTreeDepth(n int) { pr.treeDepth.Set(float64(n)) }

func (pr *PrometheusRecorder) IncRebuild(trigger string) {
	pr.rebuilds.WithLabelValues(trigger).Inc()
}
