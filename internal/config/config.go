// Package config loads and validates the navbuilder YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// ContentRoot is the directory of generated site pages to scan.
	ContentRoot string `yaml:"content_root"`

	Navigation NavigationConfig `yaml:"navigation"`
	Source     SourceConfig     `yaml:"source,omitempty"`
	Store      StoreConfig      `yaml:"store"`
	Daemon     DaemonConfig     `yaml:"daemon"`
	Events     EventsConfig     `yaml:"events,omitempty"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// NavigationConfig mirrors the build options of the navigation core.
type NavigationConfig struct {
	// MetadataKey is the store key for the resulting tree.
	MetadataKey string `yaml:"metadataKey"`

	// UsePermalinks selects clean (extensionless) URLs over literal paths.
	UsePermalinks bool `yaml:"usePermalinks"`

	// NavIndex maps canonical paths to explicit sort indices.
	NavIndex map[string]int `yaml:"navIndex,omitempty"`

	// NavExcludePatterns remove matching pages from navigation. Entries
	// prefixed "re:" compile as regular expressions; everything else
	// matches by exact path.
	NavExcludePatterns []string `yaml:"navExcludePatterns,omitempty"`

	// RootPath scopes the stored tree to one section's children.
	RootPath string `yaml:"rootPath"`
}

// SourceConfig optionally reads the content from a git repository instead
// of a plain directory.
type SourceConfig struct {
	// Type is "dir" (default) or "git".
	Type string `yaml:"type,omitempty"`

	// URL is the repository to clone when Type is "git". A local path to an
	// existing clone is opened in place.
	URL string `yaml:"url,omitempty"`

	// Branch overrides the remote default branch.
	Branch string `yaml:"branch,omitempty"`

	// Path is the content subdirectory inside the repository.
	Path string `yaml:"path,omitempty"`
}

// StoreConfig selects the metadata store backend.
type StoreConfig struct {
	// Backend is "memory", "sqlite", or "nats".
	Backend string `yaml:"backend"`

	// Path is the sqlite database file (sqlite backend).
	Path string `yaml:"path,omitempty"`

	// URL is the NATS server URL (nats backend).
	URL string `yaml:"url,omitempty"`

	// Bucket is the JetStream KV bucket (nats backend).
	Bucket string `yaml:"bucket,omitempty"`
}

// DaemonConfig controls watch mode.
type DaemonConfig struct {
	// QuietWindow is how long the watcher waits after the last change
	// before rebuilding.
	QuietWindow time.Duration `yaml:"quiet_window"`

	// MaxDelay caps how long rebuilds can be postponed by a steady stream
	// of changes.
	MaxDelay time.Duration `yaml:"max_delay"`

	// RebuildInterval, when positive, schedules periodic rebuilds
	// independent of file changes.
	RebuildInterval time.Duration `yaml:"rebuild_interval,omitempty"`
}

// EventsConfig optionally forwards build lifecycle events to NATS.
type EventsConfig struct {
	NATSURL string `yaml:"nats_url,omitempty"`
	Subject string `yaml:"subject,omitempty"`
}

// MetricsConfig controls the Prometheus endpoint in watch mode.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen,omitempty"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Load loads configuration from the specified file, applies defaults, and
// validates. Environment variables in the YAML content are expanded.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
