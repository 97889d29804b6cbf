package navigation

import "strings"

// ResolveBreadcrumbs walks the full (unextracted) tree and returns the
// target URL path's ancestor chain as root-to-leaf crumbs, ending with the
// target node itself.
//
// The trail is seeded with the home node ("/") when the tree has one. A
// node counts as an ancestor when the target's path starts with the node's
// normalized path plus a separator. An unmatched target yields the partial
// trail accumulated so far (possibly just home, possibly empty); resolution
// never fails.
//
// Callers must pass the full tree, not a section extraction, so that
// breadcrumbs stay complete even when a scoped menu is in use elsewhere.
func ResolveBreadcrumbs(targetPath string, tree []*Node) []Crumb {
	target := normalizePath(targetPath)

	var trail []Crumb
	home := homeNode(tree)
	if home != nil {
		if target == "/" {
			return []Crumb{crumbOf(home)}
		}
		trail = append(trail, crumbOf(home))
	}

	found, ok := descend(target, tree, trail)
	if ok {
		return found
	}
	return trail
}

// descend depth-first searches for the target, accumulating matching
// ancestors along the way down. Nodes that are not ancestors of the target
// are still descended into (their children may match without them), but do
// not contribute a crumb.
func descend(target string, nodes []*Node, trail []Crumb) ([]Crumb, bool) {
	for _, n := range nodes {
		np := normalizePath(n.Path)
		if np == "/" {
			// Home is already seeded; its children live at the top level of
			// the forest, not under it.
			continue
		}
		if np == target {
			return appendCrumb(trail, n), true
		}
		next := trail
		if strings.HasPrefix(target, np+"/") {
			next = appendCrumb(trail, n)
		}
		if found, ok := descend(target, n.Children, next); ok {
			return found, true
		}
	}
	return nil, false
}

func homeNode(tree []*Node) *Node {
	for _, n := range tree {
		if normalizePath(n.Path) == "/" {
			return n
		}
	}
	return nil
}

// appendCrumb copies the trail before appending so sibling branches of the
// search never share backing storage.
func appendCrumb(trail []Crumb, n *Node) []Crumb {
	out := make([]Crumb, 0, len(trail)+1)
	out = append(out, trail...)
	return append(out, crumbOf(n))
}
