package metrics

import "time"

// Recorder defines observability hooks for navigation build metrics.
// Implementations may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome string) // outcome: success|failed
	SetPages(n int)
	SetExcluded(n int)
	SetTreeDepth(n int)
	IncRebuild(trigger string) // trigger: watch|schedule|manual
}

// Outcome label values for IncBuildOutcome.
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
)

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
func (NoopRecorder) IncBuildOutcome(string)             {}
func (NoopRecorder) SetPages(int)                       {}
func (NoopRecorder) SetExcluded(int)                    {}
func (NoopRecorder) SetTreeDepth(int)                   {}
func (NoopRecorder) IncRebuild(string)                  {}
