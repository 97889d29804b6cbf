package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/navbuilder/internal/config"
	"git.home.luguber.info/inful/navbuilder/internal/daemon"
	"git.home.luguber.info/inful/navbuilder/internal/events"
	"git.home.luguber.info/inful/navbuilder/internal/metrics"
	"git.home.luguber.info/inful/navbuilder/internal/navigation"
	"git.home.luguber.info/inful/navbuilder/internal/pages"
	"git.home.luguber.info/inful/navbuilder/internal/source"
	"git.home.luguber.info/inful/navbuilder/internal/store"
	"git.home.luguber.info/inful/navbuilder/internal/version"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output string `short:"o" help:"Also write the navigation tree JSON to this file"`
	} `cmd:"" help:"Build the navigation tree once and store it"`

	Watch struct {
	} `cmd:"" help:"Watch the content root and rebuild on changes"`

	Version struct {
	} `cmd:"" help:"Print version information"`
}

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI)

	if ctx.Command() == "version" {
		fmt.Printf("navbuilder %s (commit %s, built %s)\n",
			version.Version, version.GitCommit, version.BuildTime)
		return
	}

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	cfg.SetupLogger(CLI.Verbose)

	switch ctx.Command() {
	case "build":
		if err := runBuild(cfg, CLI.Build.Output); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "watch":
		if err := runWatch(cfg); err != nil {
			slog.Error("Watch failed", "error", err)
			os.Exit(1)
		}
	}
}

func runBuild(cfg *config.Config, outputPath string) error {
	root, err := resolveContentRoot(cfg)
	if err != nil {
		return err
	}

	opts, err := cfg.BuildOptions()
	if err != nil {
		return err
	}

	sink, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			slog.Warn("Failed to close store", "error", err)
		}
	}()

	pageSet, err := pages.NewDiscovery(root).DiscoverPages()
	if err != nil {
		return err
	}

	builder := navigation.NewBuilder(opts, sink, nil)
	res, err := builder.Run(context.Background(), pageSet)
	if err != nil {
		return err
	}

	slog.Info("Navigation build complete",
		"pages", res.Pages,
		"excluded", res.Excluded,
		"depth", res.Depth,
		"duration", res.Duration)

	if outputPath != "" {
		data, err := sink.Get(context.Background(), cfg.Navigation.MetadataKey)
		if err != nil {
			return fmt.Errorf("read stored tree: %w", err)
		}
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("write tree to %s: %w", outputPath, err)
		}
		slog.Info("Wrote navigation tree", "path", outputPath)
	}
	return nil
}

func runWatch(cfg *config.Config) error {
	root, err := resolveContentRoot(cfg)
	if err != nil {
		return err
	}

	opts, err := cfg.BuildOptions()
	if err != nil {
		return err
	}

	sink, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			slog.Warn("Failed to close store", "error", err)
		}
	}()

	var (
		rec            metrics.Recorder = metrics.NoopRecorder{}
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		registry := prom.NewRegistry()
		rec = metrics.NewPrometheusRecorder(registry)
		metricsHandler = metrics.HTTPHandler(registry)
	}

	bus := events.NewBus()
	if cfg.Events.NATSURL != "" {
		publisher, err := events.NewNATSPublisher(cfg.Events.NATSURL, cfg.Events.Subject)
		if err != nil {
			return err
		}
		defer publisher.Close()
		publisher.Attach(bus)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	d := daemon.New(daemon.Options{
		ContentRoot:    root,
		Daemon:         cfg.Daemon,
		Source:         pages.NewDiscovery(root),
		Builder:        navigation.NewBuilder(opts, sink, rec),
		Bus:            bus,
		Recorder:       rec,
		MetricsListen:  cfg.Metrics.Listen,
		MetricsHandler: metricsHandler,
	})
	return d.Run(ctx)
}

// resolveContentRoot materializes the configured content source and returns
// the directory to scan.
func resolveContentRoot(cfg *config.Config) (string, error) {
	if cfg.Source.Type != config.SourceGit {
		return cfg.ContentRoot, nil
	}
	src := source.NewGitSource(cfg.Source.URL, cfg.Source.Branch, cfg.Source.Path, ".navbuilder")
	return src.ContentRoot()
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreSQLite:
		return store.NewSQLiteStore(cfg.Store.Path)
	case config.StoreNATS:
		return store.NewNATSStore(cfg.Store.URL, cfg.Store.Bucket)
	default:
		return store.NewMemoryStore(), nil
	}
}
