package pages

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/navbuilder/internal/navigation"
)

// loadHTMLPage extracts the display title from an HTML document: the
// <title> element when present, else the first <h1>.
func loadHTMLPage(content []byte) (*navigation.Page, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	page := &navigation.Page{}
	if t := findElementText(doc, "title"); t != "" {
		page.Title = t
	} else if h := findElementText(doc, "h1"); h != "" {
		page.Title = h
	}
	return page, nil
}

// findElementText depth-first searches for the first element with the given
// tag and returns its concatenated text content, whitespace-collapsed.
func findElementText(n *html.Node, tag string) string {
	if n.Type == html.ElementNode && n.Data == tag {
		var buf bytes.Buffer
		collectText(n, &buf)
		return strings.Join(strings.Fields(buf.String()), " ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findElementText(c, tag); t != "" {
			return t
		}
	}
	return ""
}

func collectText(n *html.Node, buf *bytes.Buffer) {
	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, buf)
	}
}
