package render

import (
	"fmt"
	"io"

	"github.com/leofalp/prefsjson/core/prefs"
)

// JSONRenderer writes the mapping as a JSON object in key order.
type JSONRenderer struct {
	// Indent is the per-level indentation; empty means compact output.
	Indent string
}

func (r *JSONRenderer) Format() Format { return FormatJSON }

func (r *JSONRenderer) Render(w io.Writer, res *prefs.Result) error {
	var (
		out []byte
		err error
	)
	if r.Indent == "" {
		out, err = res.MarshalJSON()
	} else {
		out, err = res.MarshalIndent("", r.Indent)
	}
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
