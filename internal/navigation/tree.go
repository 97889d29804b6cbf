package navigation

import (
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/navbuilder/internal/logfields"
)

// dirNode is the intermediate directory shape grouped from path segments
// before conversion into navigation nodes. The structure is explicit (files
// plus named child directories) rather than relying on reserved map keys.
type dirNode struct {
	files []string            // page filenames directly in this directory, input order
	dirs  map[string]*dirNode // child directories by segment name
	order []string            // child directory names, first-seen order
}

func newDirNode() *dirNode { return &dirNode{dirs: map[string]*dirNode{}} }

func (d *dirNode) child(name string) *dirNode {
	c, ok := d.dirs[name]
	if !ok {
		c = newDirNode()
		d.dirs[name] = c
		d.order = append(d.order, name)
	}
	return c
}

// BuildTree groups the included page paths into a directory-shaped tree and
// converts it into navigation nodes. A directory and its index page merge
// into a single node, as does a directory and a same-named sibling page;
// neither ever produces two entries. Sibling nodes that resolve to the same
// URL are kept as distinct entries and logged at warn level (the build does
// not deduplicate or fail on colliding slugs).
//
// Node order is insertion order (root index page first, then root pages,
// then directories); callers are expected to run SortTree afterwards.
func BuildTree(paths []string, pages map[string]*Page, mode Mode) []*Node {
	root := newDirNode()
	for _, p := range paths {
		segs := strings.Split(strings.Trim(p, "/"), "/")
		cur := root
		for _, s := range segs[:len(segs)-1] {
			cur = cur.child(s)
		}
		cur.files = append(cur.files, segs[len(segs)-1])
	}

	nodes := make([]*Node, 0, len(root.files)+len(root.order))

	// Home first, when present.
	for _, f := range root.files {
		if !isIndexFile(f) {
			continue
		}
		page := pages[f]
		nodes = append(nodes, &Node{
			Title:    titleFor(page, f),
			Path:     "/",
			NavIndex: explicitIndex(page),
			Children: []*Node{},
		})
		break
	}

	for _, f := range root.files {
		if isIndexFile(f) {
			continue
		}
		if _, isDir := root.dirs[stripExt(f)]; isDir {
			// Surfaces as part of the directory node below.
			continue
		}
		page := pages[f]
		nodes = append(nodes, &Node{
			Title:    titleFor(page, f),
			Path:     resolveRootPage(f, mode),
			NavIndex: explicitIndex(page),
			Children: []*Node{},
		})
	}

	for _, name := range root.order {
		nodes = append(nodes, buildDir(name, root.dirs[name], pages, mode, sameNamedPage(root, name, "", pages)))
	}

	warnCollisions(nodes)
	return nodes
}

// buildDir converts one directory into a navigation node. Children are the
// directory's non-index files followed by its subdirectories; the
// directory's own index page (or, failing that, a same-named sibling page
// handed down by the parent) supplies the node's title and index override.
func buildDir(relDir string, dn *dirNode, pages map[string]*Page, mode Mode, merged *Page) *Node {
	seg := relDir
	if i := strings.LastIndex(relDir, "/"); i >= 0 {
		seg = relDir[i+1:]
	}

	var indexName string
	var indexPage *Page
	children := make([]*Node, 0, len(dn.files)+len(dn.order))

	for _, f := range dn.files {
		full := relDir + "/" + f
		if isIndexFile(f) {
			if indexName == "" {
				indexName = f
				indexPage = pages[full]
			}
			continue
		}
		if _, isDir := dn.dirs[stripExt(f)]; isDir {
			continue
		}
		page := pages[full]
		children = append(children, &Node{
			Title:    titleFor(page, f),
			Path:     resolveChildPage(relDir, f, mode),
			NavIndex: explicitIndex(page),
			Children: []*Node{},
		})
	}

	for _, name := range dn.order {
		children = append(children, buildDir(relDir+"/"+name, dn.dirs[name], pages, mode, sameNamedPage(dn, name, relDir, pages)))
	}
	warnCollisions(children)

	node := &Node{
		Path:     resolveDirIndex(relDir, indexName, mode),
		Children: children,
	}
	switch {
	case indexPage != nil:
		node.Title = titleFor(indexPage, seg)
		node.NavIndex = explicitIndex(indexPage)
	case merged != nil:
		node.Title = titleFor(merged, seg)
		node.NavIndex = explicitIndex(merged)
	default:
		node.Title = deriveTitle(seg)
	}
	return node
}

// sameNamedPage finds a sibling page whose name (without extension) equals
// the directory segment, e.g. "services.html" next to "services/". The page
// merges into the directory node instead of becoming its own entry.
func sameNamedPage(parent *dirNode, dir, parentDir string, pages map[string]*Page) *Page {
	for _, f := range parent.files {
		if isIndexFile(f) || stripExt(f) != dir {
			continue
		}
		full := f
		if parentDir != "" {
			full = parentDir + "/" + f
		}
		return pages[full]
	}
	return nil
}

// explicitIndex copies a page's index override so later sorter write-backs
// on the node cannot mutate the page record.
func explicitIndex(p *Page) *int {
	if p == nil || p.NavIndex == nil {
		return nil
	}
	v := *p.NavIndex
	return &v
}

func warnCollisions(siblings []*Node) {
	seen := make(map[string]string, len(siblings))
	for _, n := range siblings {
		if first, ok := seen[n.Path]; ok {
			slog.Warn("Sibling navigation nodes resolve to the same URL",
				logfields.Path(n.Path),
				slog.String("first", first),
				slog.String("second", n.Title))
			continue
		}
		seen[n.Path] = n.Title
	}
}

// TreeDepth returns the maximum nesting depth of the forest; an empty
// forest has depth 0.
func TreeDepth(nodes []*Node) int {
	depth := 0
	for _, n := range nodes {
		if d := 1 + TreeDepth(n.Children); d > depth {
			depth = d
		}
	}
	return depth
}
