package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Validate checks cross-field consistency. Pattern syntax errors surface
// here rather than at build time.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreMemory:
	case StoreSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store: sqlite backend requires a path")
		}
	case StoreNATS:
		if c.Store.URL == "" {
			return fmt.Errorf("store: nats backend requires a url")
		}
		if c.Store.Bucket == "" {
			return fmt.Errorf("store: nats backend requires a bucket")
		}
	default:
		return fmt.Errorf("store: unknown backend %q", c.Store.Backend)
	}

	switch c.Source.Type {
	case SourceDir:
	case SourceGit:
		if c.Source.URL == "" {
			return fmt.Errorf("source: git source requires a url")
		}
	default:
		return fmt.Errorf("source: unknown type %q", c.Source.Type)
	}

	if !strings.HasPrefix(c.Navigation.RootPath, "/") {
		return fmt.Errorf("navigation: rootPath must start with \"/\", got %q", c.Navigation.RootPath)
	}

	for _, p := range c.Navigation.NavExcludePatterns {
		if expr, ok := strings.CutPrefix(p, "re:"); ok {
			if _, err := regexp.Compile(expr); err != nil {
				return fmt.Errorf("navigation: invalid exclude pattern %q: %w", p, err)
			}
		}
	}

	if c.Events.NATSURL != "" && c.Events.Subject == "" {
		return fmt.Errorf("events: nats_url requires a subject")
	}
	return nil
}
