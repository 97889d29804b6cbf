package daemon

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startDebouncer(t *testing.T, cfg DebouncerConfig) *Debouncer {
	t.Helper()
	d, err := NewDebouncer(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go d.Run(ctx)
	return d
}

func waitTrigger(t *testing.T, d *Debouncer, timeout time.Duration) Trigger {
	t.Helper()
	select {
	case trig := <-d.Triggers():
		return trig
	case <-time.After(timeout):
		t.Fatal("timed out waiting for trigger")
		return Trigger{}
	}
}

func TestNewDebouncer_RejectsZeroDurations(t *testing.T) {
	_, err := NewDebouncer(DebouncerConfig{QuietWindow: 0, MaxDelay: time.Second})
	assert.Error(t, err)

	_, err = NewDebouncer(DebouncerConfig{QuietWindow: time.Second, MaxDelay: 0})
	assert.Error(t, err)
}

func TestDebouncer_EmitsAfterQuietWindow(t *testing.T) {
	d := startDebouncer(t, DebouncerConfig{
		QuietWindow: 20 * time.Millisecond,
		MaxDelay:    time.Second,
	})

	d.Request("write a.html")

	trig := waitTrigger(t, d, time.Second)
	assert.Equal(t, "quiet", trig.Cause)
	assert.Equal(t, 1, trig.Requests)
	assert.Equal(t, "write a.html", trig.LastReason)
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	d := startDebouncer(t, DebouncerConfig{
		QuietWindow: 50 * time.Millisecond,
		MaxDelay:    5 * time.Second,
	})

	for i := 0; i < 10; i++ {
		d.Request("write")
		time.Sleep(2 * time.Millisecond)
	}

	trig := waitTrigger(t, d, time.Second)
	assert.Equal(t, 10, trig.Requests)

	// No second trigger follows for the same burst.
	select {
	case extra := <-d.Triggers():
		t.Fatalf("unexpected extra trigger: %+v", extra)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDebouncer_MaxDelayCapsPostponement(t *testing.T) {
	d := startDebouncer(t, DebouncerConfig{
		QuietWindow: 40 * time.Millisecond,
		MaxDelay:    120 * time.Millisecond,
	})

	// A steady stream that always resets the quiet window.
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				d.Request("write")
			}
		}
	}()
	defer close(stop)

	trig := waitTrigger(t, d, time.Second)
	assert.Equal(t, "max_delay", trig.Cause)
	assert.Greater(t, trig.Requests, 1)
}

func TestDebouncer_SeparateBurstsTriggerSeparately(t *testing.T) {
	d := startDebouncer(t, DebouncerConfig{
		QuietWindow: 20 * time.Millisecond,
		MaxDelay:    time.Second,
	})

	d.Request("first")
	first := waitTrigger(t, d, time.Second)
	assert.Equal(t, "first", first.LastReason)

	d.Request("second")
	second := waitTrigger(t, d, time.Second)
	assert.Equal(t, "second", second.LastReason)
	assert.Equal(t, 1, second.Requests)
}
