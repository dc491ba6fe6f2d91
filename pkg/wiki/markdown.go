package wiki

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts section markdown to HTML for page payloads.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	// GFM for tables, AutoHeadingID so headings carry the anchors the
	// TOC links to.
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &Renderer{md: md}
}

// RenderHTML converts markdown to HTML. A render failure degrades to an
// empty string; callers always keep the raw markdown alongside.
func (r *Renderer) RenderHTML(markdown string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return ""
	}
	return buf.String()
}
