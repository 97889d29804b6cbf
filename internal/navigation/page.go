package navigation

// Page is one entry in the path→metadata mapping supplied by the host
// pipeline. Paths are slash-separated and relative to the content root
// (e.g. "services/service1.html").
//
// The builder only reads the title and nav override fields and writes back
// the URL and Breadcrumbs annotations; it never removes or relocates pages.
type Page struct {
	// Title is the page's display title (typically from frontmatter or the
	// document itself). May be empty; the node title then falls back to a
	// name derived from the filename.
	Title string

	// NavLabel overrides Title for navigation display.
	NavLabel string

	// NavIndex is the page's explicit sort index override. Nil means no
	// override; ordering then falls back to the global index map or the
	// unindexed sentinel.
	NavIndex *int

	// NavExclude removes the page from navigation entirely.
	NavExclude bool

	// Metadata carries any additional page fields the host supplies. The
	// builder does not interpret them.
	Metadata map[string]string

	// URL is written by the builder: the page's canonical URL resolved for
	// the active permalink mode.
	URL string

	// Breadcrumbs is written by the builder: the page's ancestor chain from
	// home to the page itself, resolved against the full (unextracted) tree.
	Breadcrumbs []Crumb
}

// Node is one entry in the navigation tree: a page, or a directory merged
// with its index page. A directory and its index page always collapse into
// a single node.
type Node struct {
	Title string `json:"title"`

	// Path is the node's canonical URL.
	Path string `json:"path"`

	// NavIndex is the resolved explicit index (page override or global map
	// hit), or nil when the node is unindexed and sorts by the sentinel.
	NavIndex *int `json:"navIndex"`

	Children []*Node `json:"children"`
}

// Crumb is a read-only projection of a Node used in breadcrumb trails,
// ordered root-to-leaf.
type Crumb struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

func crumbOf(n *Node) Crumb { return Crumb{Title: n.Title, Path: n.Path} }
