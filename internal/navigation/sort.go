package navigation

import "sort"

// UnindexedSentinel is the effective index of nodes with neither a page
// override nor a global index map entry. Unindexed items sort after all
// explicitly indexed ones.
const UnindexedSentinel = 1000

// TiebreakFunc is a caller-supplied secondary comparator. It must return a
// negative value when a sorts before b, zero when equal, positive when a
// sorts after b. It is consulted only for nodes with equal effective
// indices and can never reorder differently-indexed nodes.
type TiebreakFunc func(a, b *Node) int

// SortTree orders sibling nodes at every level of the forest, recursively.
//
// Each node's effective index is its explicit override if present, else the
// global navIndex map entry for its canonical path (looked up both with and
// without a trailing slash), else UnindexedSentinel. Siblings are stable-
// sorted ascending by effective index; tiebreak, if non-nil, breaks ties
// between equal indices only. Output is deterministic for identical input.
//
// Indices resolved from the global map are written back onto the nodes so
// the stored tree reflects the order it was given.
func SortTree(nodes []*Node, navIndex map[string]int, tiebreak TiebreakFunc) {
	type ranked struct {
		node *Node
		eff  int
	}
	rs := make([]ranked, len(nodes))
	for i, n := range nodes {
		rs[i] = ranked{node: n, eff: resolveEffectiveIndex(n, navIndex)}
	}
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].eff != rs[j].eff {
			return rs[i].eff < rs[j].eff
		}
		if tiebreak != nil {
			return tiebreak(rs[i].node, rs[j].node) < 0
		}
		return false
	})
	for i := range rs {
		nodes[i] = rs[i].node
	}
	for _, n := range nodes {
		SortTree(n.Children, navIndex, tiebreak)
	}
}

// resolveEffectiveIndex resolves override → global map → sentinel, writing
// a map hit back onto the node.
func resolveEffectiveIndex(n *Node, navIndex map[string]int) int {
	if n.NavIndex != nil {
		return *n.NavIndex
	}
	if v, ok := navIndex[n.Path]; ok {
		n.NavIndex = &v
		return v
	}
	alt := normalizePath(n.Path)
	if alt == n.Path {
		alt = n.Path + "/"
	}
	if v, ok := navIndex[alt]; ok {
		n.NavIndex = &v
		return v
	}
	return UnindexedSentinel
}
