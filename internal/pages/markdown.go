package pages

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/navbuilder/internal/navigation"
)

// frontmatterFields are the per-page navigation overrides read from YAML
// frontmatter.
type frontmatterFields struct {
	Title      string `yaml:"title"`
	NavLabel   string `yaml:"navLabel"`
	NavIndex   *int   `yaml:"navIndex"`
	NavExclude bool   `yaml:"navExclude"`
}

// loadMarkdownPage extracts navigation metadata from a markdown document:
// frontmatter overrides first, then the first heading as a title fallback.
func loadMarkdownPage(content []byte) (*navigation.Page, error) {
	fm, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	page := &navigation.Page{}
	if len(fm) > 0 {
		var fields frontmatterFields
		if err := yaml.Unmarshal(fm, &fields); err != nil {
			return nil, fmt.Errorf("parse frontmatter: %w", err)
		}
		page.Title = fields.Title
		page.NavLabel = fields.NavLabel
		page.NavIndex = fields.NavIndex
		page.NavExclude = fields.NavExclude
	}

	if page.Title == "" {
		page.Title = firstHeading(body)
	}
	return page, nil
}

// splitFrontmatter separates `---` delimited YAML frontmatter from the
// markdown body. A document without a leading delimiter has no frontmatter.
func splitFrontmatter(content []byte) (frontmatter, body []byte, err error) {
	open := []byte("---\n")
	if !bytes.HasPrefix(content, open) {
		return nil, content, nil
	}
	rest := content[len(open):]
	if bytes.HasPrefix(rest, []byte("---\n")) {
		// Empty frontmatter block.
		return []byte{}, rest[len("---\n"):], nil
	}
	closeSeq := []byte("\n---\n")
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		return nil, nil, fmt.Errorf("frontmatter: missing closing delimiter")
	}
	fm := rest[:idx+1]
	body = rest[idx+len(closeSeq):]
	body = bytes.TrimPrefix(body, []byte("\n"))
	return fm, body, nil
}

// firstHeading returns the text of the document's first heading, or "".
func firstHeading(body []byte) string {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok {
			var buf bytes.Buffer
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*gmast.Text); ok {
					buf.Write(t.Segment.Value(body))
				}
			}
			title = buf.String()
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title
}
