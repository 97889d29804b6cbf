package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"another_file.html", "Another File"},
		{"no-title.html", "No Title"},
		{"about.html", "About"},
		{"getting-started", "Getting Started"},
		{"mixed_and-both.md", "Mixed And Both"},
		{"UPPER.html", "Upper"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, deriveTitle(tt.in), "deriveTitle(%q)", tt.in)
	}
}

func TestTitleFor_Precedence(t *testing.T) {
	assert.Equal(t, "Label", titleFor(&Page{NavLabel: "Label", Title: "Title"}, "file.html"))
	assert.Equal(t, "Title", titleFor(&Page{Title: "Title"}, "file.html"))
	assert.Equal(t, "File", titleFor(&Page{}, "file.html"))
	assert.Equal(t, "File", titleFor(nil, "file.html"))
}
