package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crumbPaths(cs []Crumb) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Path
	}
	return out
}

func TestResolveBreadcrumbs_NestedPage(t *testing.T) {
	pages := scenarioPages()
	tree := BuildTree(sortedPaths(pages), pages, ModeClean)

	crumbs := ResolveBreadcrumbs("/services/service1/", tree)
	assert.Equal(t, []string{"/", "/services/", "/services/service1/"}, crumbPaths(crumbs))
	assert.Equal(t, "Home Page", crumbs[0].Title)
	assert.Equal(t, "Our Services", crumbs[1].Title)
	assert.Equal(t, "Service One", crumbs[2].Title)
}

func TestResolveBreadcrumbs_HomeAlone(t *testing.T) {
	pages := scenarioPages()
	tree := BuildTree(sortedPaths(pages), pages, ModeClean)

	crumbs := ResolveBreadcrumbs("/", tree)
	require.Len(t, crumbs, 1)
	assert.Equal(t, "/", crumbs[0].Path)
	assert.Equal(t, "Home Page", crumbs[0].Title)
}

func TestResolveBreadcrumbs_TopLevelPage(t *testing.T) {
	pages := scenarioPages()
	tree := BuildTree(sortedPaths(pages), pages, ModeClean)

	crumbs := ResolveBreadcrumbs("/about/", tree)
	assert.Equal(t, []string{"/", "/about/"}, crumbPaths(crumbs))
}

func TestResolveBreadcrumbs_UnmatchedTargetPartial(t *testing.T) {
	pages := scenarioPages()
	tree := BuildTree(sortedPaths(pages), pages, ModeClean)

	// Unknown target: partial trail (home seed), never an error.
	crumbs := ResolveBreadcrumbs("/nope/", tree)
	assert.Equal(t, []string{"/"}, crumbPaths(crumbs))
}

func TestResolveBreadcrumbs_NoHomeNode(t *testing.T) {
	pages := map[string]*Page{
		"services/service1.html": {Title: "Service One"},
	}
	tree := BuildTree([]string{"services/service1.html"}, pages, ModeClean)

	crumbs := ResolveBreadcrumbs("/services/service1/", tree)
	assert.Equal(t, []string{"/services/", "/services/service1/"}, crumbPaths(crumbs))

	assert.Empty(t, ResolveBreadcrumbs("/missing/", tree))
}

func TestResolveBreadcrumbs_FullTreeAfterExtraction(t *testing.T) {
	// Round-trip property: extracting a section elsewhere must not truncate
	// breadcrumbs resolved against the full tree.
	pages := map[string]*Page{
		"index.html":       {Title: "Home"},
		"blog/index.html":  {Title: "Blog"},
		"blog/x.html":      {Title: "X"},
	}
	tree := BuildTree([]string{"blog/index.html", "blog/x.html", "index.html"}, pages, ModeClean)

	_ = ExtractSection("/blog/", tree)

	crumbs := ResolveBreadcrumbs("/blog/x/", tree)
	assert.Equal(t, []string{"/", "/blog/", "/blog/x/"}, crumbPaths(crumbs))
}

func TestResolveBreadcrumbs_DeepNesting(t *testing.T) {
	pages := map[string]*Page{
		"index.html":           {Title: "Home"},
		"a/index.html":         {Title: "A"},
		"a/b/index.html":       {Title: "B"},
		"a/b/c.html":           {Title: "C"},
	}
	tree := BuildTree([]string{"a/b/c.html", "a/b/index.html", "a/index.html", "index.html"}, pages, ModeClean)

	crumbs := ResolveBreadcrumbs("/a/b/c/", tree)
	assert.Equal(t, []string{"/", "/a/", "/a/b/", "/a/b/c/"}, crumbPaths(crumbs))
}

func TestResolveBreadcrumbs_TrailingSlashInsensitive(t *testing.T) {
	pages := scenarioPages()
	tree := BuildTree(sortedPaths(pages), pages, ModeClean)

	a := ResolveBreadcrumbs("/services/service1/", tree)
	b := ResolveBreadcrumbs("/services/service1", tree)
	assert.Equal(t, a, b)
}
