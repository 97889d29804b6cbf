// Package navigation builds a hierarchical navigation tree from a flat set
// of generated site pages.
//
// Given a mapping of slash-separated page paths to page metadata, it
// produces an ordered, nested forest of navigation nodes, annotates each
// page with its resolved URL and breadcrumb trail, and supports exclusion
// rules, explicit ordering and section-scoped sub-navigations. The whole
// pass is synchronous and rebuilt from scratch on every invocation; no
// state is carried between builds.
package navigation
