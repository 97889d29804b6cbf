package config

import "time"

// Store backend names.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreNATS   = "nats"
)

// Source types.
const (
	SourceDir = "dir"
	SourceGit = "git"
)

// Default returns a configuration populated with documented defaults.
func Default() *Config {
	return &Config{
		ContentRoot: "./site",
		Navigation: NavigationConfig{
			MetadataKey:   "navigation",
			UsePermalinks: false,
			RootPath:      "/",
		},
		Source: SourceConfig{Type: SourceDir},
		Store:  StoreConfig{Backend: StoreMemory},
		Daemon: DaemonConfig{
			QuietWindow: 500 * time.Millisecond,
			MaxDelay:    5 * time.Second,
		},
		Metrics: MetricsConfig{Listen: ":9090"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// applyDefaults fills zero values that yaml decoding may have cleared.
func (c *Config) applyDefaults() {
	if c.Navigation.MetadataKey == "" {
		c.Navigation.MetadataKey = "navigation"
	}
	if c.Navigation.RootPath == "" {
		c.Navigation.RootPath = "/"
	}
	if c.Source.Type == "" {
		c.Source.Type = SourceDir
	}
	if c.Store.Backend == "" {
		c.Store.Backend = StoreMemory
	}
	if c.Daemon.QuietWindow <= 0 {
		c.Daemon.QuietWindow = 500 * time.Millisecond
	}
	if c.Daemon.MaxDelay <= 0 {
		c.Daemon.MaxDelay = 5 * time.Second
	}
	if c.Metrics.Listen == "" {
		c.Metrics.Listen = ":9090"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}
