// Package daemon runs navbuilder in watch mode: a filesystem watcher over
// the content root feeds a debouncer that coalesces change bursts into
// single rebuilds, optionally alongside a periodic rebuild schedule.
package daemon

import (
	"context"
	"time"

	"git.home.luguber.info/inful/navbuilder/internal/errors"
)

// DebouncerConfig controls how change bursts collapse into rebuilds.
type DebouncerConfig struct {
	// QuietWindow is how long to wait after the last change before
	// triggering.
	QuietWindow time.Duration

	// MaxDelay caps how long a steady stream of changes can postpone the
	// trigger.
	MaxDelay time.Duration
}

// Trigger describes one coalesced rebuild request.
type Trigger struct {
	Requests     int
	FirstRequest time.Time
	LastRequest  time.Time
	LastReason   string

	// Cause is "quiet" or "max_delay".
	Cause string
}

// Debouncer coalesces bursts of change notifications into single triggers.
//
//   - quiet window debounce
//   - max delay (a burst cannot postpone rebuilds indefinitely)
//
// Request is safe from any goroutine; Run is a single goroutine.
type Debouncer struct {
	cfg DebouncerConfig
	in  chan string
	out chan Trigger
}

// NewDebouncer validates the config and creates a stopped debouncer.
func NewDebouncer(cfg DebouncerConfig) (*Debouncer, error) {
	if cfg.QuietWindow <= 0 {
		return nil, errors.ValidationFailed("daemon", "quiet window must be > 0")
	}
	if cfg.MaxDelay <= 0 {
		return nil, errors.ValidationFailed("daemon", "max delay must be > 0")
	}
	return &Debouncer{
		cfg: cfg,
		in:  make(chan string, 64),
		out: make(chan Trigger, 1),
	}, nil
}

// Request records one change notification. It never blocks; when the input
// buffer is full the notification is dropped, which is fine because a
// trigger is already inevitable.
func (d *Debouncer) Request(reason string) {
	select {
	case d.in <- reason:
	default:
	}
}

// Triggers is the channel Run emits coalesced triggers on.
func (d *Debouncer) Triggers() <-chan Trigger { return d.out }

// Run processes notifications until ctx is done.
func (d *Debouncer) Run(ctx context.Context) {
	quietTimer := newStoppedTimer()
	maxTimer := newStoppedTimer()

	var (
		quietC <-chan time.Time
		maxC   <-chan time.Time

		pending      bool
		requests     int
		firstRequest time.Time
		lastRequest  time.Time
		lastReason   string
	)

	emit := func(cause string) {
		t := Trigger{
			Requests:     requests,
			FirstRequest: firstRequest,
			LastRequest:  lastRequest,
			LastReason:   lastReason,
			Cause:        cause,
		}
		select {
		case d.out <- t:
		case <-ctx.Done():
			return
		}
		pending = false
		requests = 0
		quietC = nil
		maxC = nil
	}

	for {
		select {
		case <-ctx.Done():
			return

		case reason := <-d.in:
			now := time.Now()
			if !pending {
				pending = true
				firstRequest = now
				resetTimer(maxTimer, d.cfg.MaxDelay)
				maxC = maxTimer.C
			}
			requests++
			lastRequest = now
			lastReason = reason
			resetTimer(quietTimer, d.cfg.QuietWindow)
			quietC = quietTimer.C

		case <-quietC:
			emit("quiet")

		case <-maxC:
			emit("max_delay")
		}
	}
}

func newStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	stopTimer(t)
	return t
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

func resetTimer(t *time.Timer, after time.Duration) {
	stopTimer(t)
	t.Reset(after)
}
