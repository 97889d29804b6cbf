package navigation

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExcluded_PageOverrideWins(t *testing.T) {
	page := &Page{NavExclude: true}
	assert.True(t, IsExcluded("visible.html", page, nil))
}

func TestIsExcluded_LiteralPattern(t *testing.T) {
	patterns := []Pattern{Literal("drafts/secret.html")}
	assert.True(t, IsExcluded("drafts/secret.html", &Page{}, patterns))
	assert.False(t, IsExcluded("drafts/secret2.html", &Page{}, patterns))
}

func TestIsExcluded_RegexpPattern(t *testing.T) {
	patterns := []Pattern{Regexp(regexp.MustCompile(`^drafts/`))}
	assert.True(t, IsExcluded("drafts/wip.html", &Page{}, patterns))
	assert.False(t, IsExcluded("published/wip.html", &Page{}, patterns))
}

func TestIsExcluded_PredicatePattern(t *testing.T) {
	patterns := []Pattern{Predicate(func(path string, page *Page) bool {
		return strings.HasSuffix(path, ".tmp.html") || (page != nil && page.Title == "WIP")
	})}
	assert.True(t, IsExcluded("x.tmp.html", &Page{}, patterns))
	assert.True(t, IsExcluded("y.html", &Page{Title: "WIP"}, patterns))
	assert.False(t, IsExcluded("y.html", &Page{Title: "Done"}, patterns))
}

func TestIsExcluded_FirstMatchShortCircuits(t *testing.T) {
	called := false
	patterns := []Pattern{
		Literal("a.html"),
		Predicate(func(string, *Page) bool { called = true; return false }),
	}
	assert.True(t, IsExcluded("a.html", &Page{}, patterns))
	assert.False(t, called)
}

func TestIsExcluded_NoPatterns(t *testing.T) {
	assert.False(t, IsExcluded("a.html", &Page{}, nil))
	assert.False(t, IsExcluded("a.html", nil, nil))
}
