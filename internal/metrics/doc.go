// Package metrics defines the observability hooks for navigation builds and
// their Prometheus implementation. The Recorder interface keeps the build
// path decoupled from any specific metrics backend; the no-op recorder is
// the default when metrics are not configured.
package metrics
