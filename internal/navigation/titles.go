package navigation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// deriveTitle produces a display title from a filename or directory
// segment: strip the extension, split on hyphen/underscore, title-case each
// word and join with spaces ("another_file" → "Another File").
func deriveTitle(name string) string {
	base := stripExt(name)
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	words := strings.Fields(base)
	for i, w := range words {
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, " ")
}

// titleFor resolves a node title with the documented precedence:
// navigation label override, then the page title, then a title derived from
// the filename. page may be nil (directory without an index page).
func titleFor(page *Page, name string) string {
	if page != nil {
		if page.NavLabel != "" {
			return page.NavLabel
		}
		if page.Title != "" {
			return page.Title
		}
	}
	return deriveTitle(name)
}
