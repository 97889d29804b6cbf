// Package pages discovers site pages under a content root and produces the
// path→metadata mapping the navigation builder consumes. Markdown pages
// carry their overrides in YAML frontmatter; HTML pages contribute their
// document title.
package pages

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/navigation"
)

// pageExtensions are the file extensions treated as pages. Everything else
// (assets, data files) is ignored.
var pageExtensions = map[string]bool{
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
}

// Discovery walks a content root for pages.
type Discovery struct {
	root string
}

// NewDiscovery creates a discovery over the given content root directory.
func NewDiscovery(root string) *Discovery {
	return &Discovery{root: root}
}

// DiscoverPages walks the content root and returns the page mapping keyed
// by slash-separated path relative to the root. Hidden files and
// directories (dot-prefixed) are skipped. Files that fail to parse are
// logged and included with derived-title fallback metadata rather than
// failing the walk.
func (d *Discovery) DiscoverPages() (map[string]*navigation.Page, error) {
	if _, err := os.Stat(d.root); err != nil {
		return nil, fmt.Errorf("content root %s: %w", d.root, err)
	}

	pages := make(map[string]*navigation.Page)
	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") && path != d.root {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(name))
		if !pageExtensions[ext] {
			return nil
		}

		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		page, err := d.loadPage(path, ext)
		if err != nil {
			slog.Warn("Failed to parse page metadata, using fallbacks",
				logfields.Page(rel), logfields.Error(err))
			page = &navigation.Page{}
		}
		pages[rel] = page
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk content root: %w", err)
	}

	slog.Debug("Discovered pages", logfields.Path(d.root), logfields.Pages(len(pages)))
	return pages, nil
}

func (d *Discovery) loadPage(path, ext string) (*navigation.Page, error) {
	// #nosec G304 -- path comes from walking the configured content root
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}

	switch ext {
	case ".md", ".markdown":
		return loadMarkdownPage(content)
	default:
		return loadHTMLPage(content)
	}
}
