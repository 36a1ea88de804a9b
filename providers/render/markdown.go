package render

import (
	"fmt"
	"html"
	"io"
	"strings"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leofalp/prefsjson/core/prefs"
)

// MarkdownRenderer writes one bullet per key, in key order: the key in bold,
// the value as inline code (raw text values in italics instead).
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Format() Format { return FormatMarkdown }

func (r *MarkdownRenderer) Render(w io.Writer, res *prefs.Result) error {
	markdown, err := htmltomarkdown.ConvertString(buildHTML(res))
	if err != nil {
		return fmt.Errorf("failed to convert to markdown: %w", err)
	}
	if _, err := io.WriteString(w, strings.TrimSpace(markdown)+"\n"); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}
	return nil
}

func buildHTML(res *prefs.Result) string {
	if res.Len() == 0 {
		return "<p><em>No preferences</em></p>"
	}

	var b strings.Builder
	b.WriteString("<ul>")
	for key, value := range res.All() {
		b.WriteString("<li><strong>")
		b.WriteString(html.EscapeString(key))
		b.WriteString("</strong>: ")
		switch {
		case value.IsRaw() && strings.TrimSpace(value.Text()) == "":
			// Markdown collapses whitespace, so blank text gets a label.
			b.WriteString("<em>")
			b.WriteString(blankLabel(value.Text()))
			b.WriteString("</em>")
		case value.IsRaw():
			b.WriteString("<em>")
			b.WriteString(html.EscapeString(value.Text()))
			b.WriteString("</em>")
		default:
			b.WriteString("<code>")
			b.WriteString(html.EscapeString(value.Text()))
			b.WriteString("</code>")
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

func blankLabel(text string) string {
	n := utf8.RuneCountInString(text)
	switch n {
	case 0:
		return "empty"
	case 1:
		return "blank, 1 char"
	default:
		return fmt.Sprintf("blank, %d chars", n)
	}
}
