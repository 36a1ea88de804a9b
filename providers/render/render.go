package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/leofalp/prefsjson/core/prefs"
)

// Format names an output format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// DefaultIndent is the number of spaces per nesting level in JSON output.
const DefaultIndent = 4

// Renderer writes a Result to w.
type Renderer interface {
	Format() Format
	Render(w io.Writer, res *prefs.Result) error
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	indent int
}

// WithIndent sets the number of spaces per nesting level. Zero produces
// compact JSON. Only the JSON renderer uses it.
func WithIndent(spaces int) Option {
	return func(c *config) {
		c.indent = spaces
	}
}

// ParseFormat maps a configuration string onto a Format. "yml" and "md" are
// accepted as aliases; the empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// New returns the Renderer for format.
func New(format Format, opts ...Option) (Renderer, error) {
	cfg := &config{indent: DefaultIndent}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.indent < 0 {
		return nil, fmt.Errorf("negative indent %d", cfg.indent)
	}

	switch format {
	case FormatJSON:
		return &JSONRenderer{Indent: strings.Repeat(" ", cfg.indent)}, nil
	case FormatYAML:
		return &YAMLRenderer{}, nil
	case FormatMarkdown:
		return &MarkdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
