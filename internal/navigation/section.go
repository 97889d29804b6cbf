package navigation

// ExtractSection locates the subtree rooted at rootPath and returns its
// children as a standalone top-level list for section-scoped menus.
//
// rootPath is compared against node paths with trailing slashes stripped
// (the literal root "/" excepted). The root path is a no-op returning the
// full tree unchanged; an unmatched path returns an empty list, never an
// error.
func ExtractSection(rootPath string, tree []*Node) []*Node {
	target := normalizePath(rootPath)
	if target == "/" {
		return tree
	}
	if n := findByPath(target, tree); n != nil {
		return n.Children
	}
	return []*Node{}
}

// findByPath depth-first searches the forest for the node whose normalized
// path equals target.
func findByPath(target string, nodes []*Node) *Node {
	for _, n := range nodes {
		if normalizePath(n.Path) == target {
			return n
		}
		if found := findByPath(target, n.Children); found != nil {
			return found
		}
	}
	return nil
}
