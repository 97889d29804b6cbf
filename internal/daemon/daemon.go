package daemon

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/navbuilder/internal/config"
	"git.home.luguber.info/inful/navbuilder/internal/events"
	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/metrics"
	"git.home.luguber.info/inful/navbuilder/internal/navigation"
)

// PageSource produces the page mapping for one rebuild pass.
// internal/pages.Discovery satisfies it.
type PageSource interface {
	DiscoverPages() (map[string]*navigation.Page, error)
}

// Options wires a Daemon's collaborators.
type Options struct {
	ContentRoot string
	Daemon      config.DaemonConfig
	Source      PageSource
	Builder     *navigation.Builder

	// Bus receives build lifecycle events. Required.
	Bus *events.Bus

	// Recorder counts rebuilds by trigger. Nil means no metrics.
	Recorder metrics.Recorder

	// MetricsListen serves MetricsHandler on /metrics when both are set.
	MetricsListen  string
	MetricsHandler http.Handler
}

// Daemon keeps the stored navigation tree in sync with the content root.
type Daemon struct {
	opts Options
	rec  metrics.Recorder

	// schedTick carries periodic-rebuild requests onto the run loop.
	schedTick chan struct{}
}

// New creates a daemon from pre-wired collaborators.
func New(opts Options) *Daemon {
	rec := opts.Recorder
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Daemon{opts: opts, rec: rec, schedTick: make(chan struct{}, 1)}
}

// Run performs an initial build, then rebuilds on debounced content changes
// and on the periodic schedule until ctx is done. The first build's error is
// fatal; later rebuild failures are published and logged, keeping the last
// good tree in the store.
func (d *Daemon) Run(ctx context.Context) error {
	if err := d.rebuild(ctx, "manual"); err != nil {
		return err
	}

	debouncer, err := NewDebouncer(DebouncerConfig{
		QuietWindow: d.opts.Daemon.QuietWindow,
		MaxDelay:    d.opts.Daemon.MaxDelay,
	})
	if err != nil {
		return err
	}

	watcher, err := NewWatcher(d.opts.ContentRoot, debouncer)
	if err != nil {
		return err
	}

	go debouncer.Run(ctx)
	go watcher.Run(ctx)

	if d.opts.Daemon.RebuildInterval > 0 {
		scheduler, err := NewScheduler()
		if err != nil {
			return err
		}
		if err := scheduler.SchedulePeriodicRebuild(d.opts.Daemon.RebuildInterval, d.requestScheduledRebuild); err != nil {
			return err
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Stop(); err != nil {
				slog.Warn("Scheduler shutdown failed", logfields.Error(err))
			}
		}()
	}

	if d.opts.MetricsListen != "" && d.opts.MetricsHandler != nil {
		d.serveMetrics(ctx)
	}

	slog.Info("Daemon running",
		logfields.Path(d.opts.ContentRoot),
		slog.Duration("quiet_window", d.opts.Daemon.QuietWindow),
		slog.Duration("max_delay", d.opts.Daemon.MaxDelay))

	for {
		select {
		case <-ctx.Done():
			slog.Info("Daemon stopping")
			return nil

		case trigger := <-debouncer.Triggers():
			slog.Info("Rebuilding after content changes",
				slog.Int("changes", trigger.Requests),
				slog.String("cause", trigger.Cause),
				slog.String("last_change", trigger.LastReason))
			if err := d.rebuild(ctx, "watch"); err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
			}

		case <-d.schedTick:
			slog.Info("Rebuilding on schedule")
			if err := d.rebuild(ctx, "schedule"); err != nil {
				slog.Error("Scheduled rebuild failed", logfields.Error(err))
			}
		}
	}
}

// requestScheduledRebuild runs on the gocron goroutine; the non-blocking
// send collapses ticks that arrive while a rebuild is still queued.
func (d *Daemon) requestScheduledRebuild() {
	select {
	case d.schedTick <- struct{}{}:
	default:
	}
}

func (d *Daemon) rebuild(ctx context.Context, trigger string) error {
	buildID := uuid.NewString()
	d.publish(events.BuildStarted{
		BuildID:     buildID,
		Trigger:     trigger,
		StartedAt:   time.Now(),
		ContentRoot: d.opts.ContentRoot,
	})

	pages, err := d.opts.Source.DiscoverPages()
	if err != nil {
		d.publish(events.BuildFailed{BuildID: buildID, Error: err.Error()})
		return err
	}

	res, err := d.opts.Builder.Run(ctx, pages)
	if err != nil {
		d.publish(events.BuildFailed{BuildID: buildID, Error: err.Error()})
		return err
	}

	d.rec.IncRebuild(trigger)
	d.publish(events.BuildCompleted{
		BuildID:  buildID,
		Pages:    res.Pages,
		Excluded: res.Excluded,
		Depth:    res.Depth,
		Duration: res.Duration,
	})

	slog.Info("Build complete",
		logfields.BuildID(buildID),
		logfields.Pages(res.Pages),
		logfields.Excluded(res.Excluded),
		logfields.Depth(res.Depth),
		logfields.DurationMS(float64(res.Duration.Milliseconds())))
	return nil
}

func (d *Daemon) publish(e events.Event) {
	if d.opts.Bus == nil {
		return
	}
	if err := d.opts.Bus.Publish(e); err != nil {
		slog.Warn("Event handler failed",
			slog.String("event", e.Name()), logfields.Error(err))
	}
}

func (d *Daemon) serveMetrics(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", d.opts.MetricsHandler)
	server := &http.Server{
		Addr:              d.opts.MetricsListen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Serving metrics", slog.String("listen", d.opts.MetricsListen))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", logfields.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
}
