package config

import (
	"fmt"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/navbuilder/internal/navigation"
)

// BuildOptions converts the navigation section into core build options,
// compiling exclude patterns. Predicate patterns and tiebreak comparators
// are code-level options; library callers add them on the returned value.
func (c *Config) BuildOptions() (navigation.Options, error) {
	patterns := make([]navigation.Pattern, 0, len(c.Navigation.NavExcludePatterns))
	for _, p := range c.Navigation.NavExcludePatterns {
		if expr, ok := strings.CutPrefix(p, "re:"); ok {
			re, err := regexp.Compile(expr)
			if err != nil {
				return navigation.Options{}, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
			}
			patterns = append(patterns, navigation.Regexp(re))
			continue
		}
		patterns = append(patterns, navigation.Literal(p))
	}

	return navigation.Options{
		MetadataKey:     c.Navigation.MetadataKey,
		UsePermalinks:   c.Navigation.UsePermalinks,
		NavIndex:        c.Navigation.NavIndex,
		ExcludePatterns: patterns,
		RootPath:        c.Navigation.RootPath,
	}, nil
}
