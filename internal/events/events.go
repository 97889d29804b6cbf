// Package events carries the build lifecycle events published around each
// navigation build, a synchronous in-process bus, and an optional NATS
// forwarder for interested external services.
package events

import "time"

// Event is a domain event published by the build pipeline.
type Event interface{ Name() string }

// Event names used in the build lifecycle.
const (
	EventBuildStarted   = "BuildStarted"
	EventBuildCompleted = "BuildCompleted"
	EventBuildFailed    = "BuildFailed"
)

// BuildStarted is published once per build, before discovery.
type BuildStarted struct {
	BuildID     string    `json:"build_id"`
	Trigger     string    `json:"trigger"` // manual|watch|schedule
	StartedAt   time.Time `json:"started_at"`
	ContentRoot string    `json:"content_root"`
}

func (BuildStarted) Name() string { return EventBuildStarted }

// BuildCompleted is published after the tree has been stored.
type BuildCompleted struct {
	BuildID  string        `json:"build_id"`
	Pages    int           `json:"pages"`
	Excluded int           `json:"excluded"`
	Depth    int           `json:"depth"`
	Duration time.Duration `json:"duration"`
	StoreKey string        `json:"store_key"`
}

func (BuildCompleted) Name() string { return EventBuildCompleted }

// BuildFailed is published when a build surfaces an error.
type BuildFailed struct {
	BuildID string `json:"build_id"`
	Error   string `json:"error"`
}

func (BuildFailed) Name() string { return EventBuildFailed }
