package navigation

import (
	"path"
	"strings"
)

// Mode selects how page file paths resolve to URLs.
type Mode string

const (
	// ModeClean resolves extensionless permalink URLs ending in "/".
	ModeClean Mode = "clean"
	// ModeLiteral preserves the original file path and extension.
	ModeLiteral Mode = "literal"
)

// indexBase is the filename (without extension) that marks a directory's
// index page. The directory node and this page merge into one entry.
const indexBase = "index"

// stripExt returns the filename without its extension.
func stripExt(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// isIndexFile reports whether the filename is a directory index page.
func isIndexFile(name string) bool { return stripExt(name) == indexBase }

// resolveRootPage resolves a non-index page at the content root.
// Clean: "/name/", literal: "/name.ext".
func resolveRootPage(name string, mode Mode) string {
	if mode == ModeClean {
		return "/" + stripExt(name) + "/"
	}
	return "/" + name
}

// resolveDirIndex resolves a directory node's URL. indexName is the
// directory's index page filename, or "" when the directory has none.
// Clean: "/dir/"; literal: "/dir/index.ext". A directory without an index
// page links to "/dir/" in both modes since there is no file to preserve.
func resolveDirIndex(dir, indexName string, mode Mode) string {
	if mode == ModeClean || indexName == "" {
		return "/" + dir + "/"
	}
	return "/" + dir + "/" + indexName
}

// resolveChildPage resolves a non-index page inside a directory.
// Clean: "/dir/name/", literal: "/dir/name.ext".
func resolveChildPage(dir, name string, mode Mode) string {
	if mode == ModeClean {
		return "/" + dir + "/" + stripExt(name) + "/"
	}
	return "/" + dir + "/" + name
}

// ResolvePageURL maps a page's content-relative file path to its canonical
// URL for the given mode. The home index always resolves to "/".
func ResolvePageURL(pagePath string, mode Mode) string {
	pagePath = strings.TrimPrefix(pagePath, "/")
	dir, name := path.Split(pagePath)
	dir = strings.Trim(dir, "/")
	if dir == "" {
		if isIndexFile(name) {
			return "/"
		}
		return resolveRootPage(name, mode)
	}
	if isIndexFile(name) {
		return resolveDirIndex(dir, name, mode)
	}
	return resolveChildPage(dir, name, mode)
}

// normalizePath strips a trailing slash for comparisons, except for the
// literal root which stays "/".
func normalizePath(p string) string {
	if p == "/" || p == "" {
		return "/"
	}
	return strings.TrimSuffix(p, "/")
}
