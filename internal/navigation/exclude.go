package navigation

import "regexp"

// Pattern decides whether a page is excluded from navigation. The set of
// kinds is closed: literal path, compiled regexp, or caller predicate.
type Pattern interface {
	matches(path string, page *Page) bool
}

type literalPattern string

func (p literalPattern) matches(path string, _ *Page) bool { return string(p) == path }

type regexpPattern struct{ re *regexp.Regexp }

func (p regexpPattern) matches(path string, _ *Page) bool { return p.re.MatchString(path) }

type predicatePattern func(path string, page *Page) bool

func (p predicatePattern) matches(path string, page *Page) bool { return p(path, page) }

// Literal matches a path by exact string equality.
func Literal(path string) Pattern { return literalPattern(path) }

// Regexp matches paths against a compiled regular expression.
func Regexp(re *regexp.Regexp) Pattern { return regexpPattern{re: re} }

// Predicate matches via a caller-supplied function. A panic inside the
// predicate propagates to the caller of the build; it is not recovered.
func Predicate(fn func(path string, page *Page) bool) Pattern { return predicatePattern(fn) }

// IsExcluded reports whether a page participates in navigation at all.
// The page's own NavExclude override wins; otherwise patterns are evaluated
// in the supplied order and the first match short-circuits.
func IsExcluded(path string, page *Page, patterns []Pattern) bool {
	if page != nil && page.NavExclude {
		return true
	}
	for _, p := range patterns {
		if p.matches(path, page) {
			return true
		}
	}
	return false
}
