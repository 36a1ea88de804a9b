package slogobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Handler is a slog.Handler that writes compact, pretty or JSON lines.
// Attributes keep the order in which they were attached.
type Handler struct {
	format Format
	level  slog.Leveler
	output io.Writer
	colors bool
	mu     *sync.Mutex
	attrs  []field
	groups []string
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	// Format specifies the output format (compact, pretty, json).
	Format Format
	// Level is the minimum log level to output.
	Level slog.Leveler
	// Output is where logs are written (defaults to os.Stderr).
	Output io.Writer
	// Colors enables ANSI color codes (only for compact/pretty formats).
	Colors bool
}

type field struct {
	key   string
	value any
}

// NewHandler creates a new Handler with the given options.
func NewHandler(opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	format := opts.Format
	if format == "" {
		format = FormatCompact
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	colors := opts.Colors
	if !colors && format != FormatJSON {
		if f, ok := output.(*os.File); ok {
			colors = isTerminal(f)
		}
	}

	return &Handler{
		format: format,
		level:  level,
		output: output,
		colors: colors,
		mu:     &sync.Mutex{},
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes a log record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	fields := h.collect(r)

	var buf bytes.Buffer
	switch h.format {
	case FormatPretty:
		h.writePretty(&buf, r, fields)
	case FormatJSON:
		if err := writeJSON(&buf, r, fields); err != nil {
			return err
		}
	default:
		h.writeCompact(&buf, r, fields)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.output.Write(buf.Bytes())
	return err
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]field{}, h.attrs...)
	for _, attr := range attrs {
		clone.attrs = h.appendAttr(clone.attrs, attr)
	}
	return &clone
}

// WithGroup returns a new Handler with a group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

// collect returns the handler's stored attributes followed by the record's.
func (h *Handler) collect(r slog.Record) []field {
	fields := make([]field, 0, len(h.attrs)+r.NumAttrs())
	fields = append(fields, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		fields = h.appendAttr(fields, attr)
		return true
	})
	return fields
}

// appendAttr flattens group attributes into dotted keys.
func (h *Handler) appendAttr(fields []field, attr slog.Attr) []field {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return fields
	}

	key := attr.Key
	for i := len(h.groups) - 1; i >= 0; i-- {
		key = h.groups[i] + "." + key
	}

	if attr.Value.Kind() == slog.KindGroup {
		for _, member := range attr.Value.Group() {
			member.Key = key + "." + member.Key
			fields = append(fields, field{key: member.Key, value: member.Value.Resolve().Any()})
		}
		return fields
	}

	value := attr.Value.Any()
	if err, ok := value.(error); ok {
		value = err.Error()
	}
	return append(fields, field{key: key, value: value})
}

// writeCompact writes "2006-01-02 15:04:05 LEVEL Message → {"key":"value"}".
func (h *Handler) writeCompact(buf *bytes.Buffer, r slog.Record, fields []field) {
	buf.WriteString(r.Time.Format("2006-01-02 15:04:05"))
	buf.WriteByte(' ')
	h.writeLevel(buf, r.Level, "%5s")
	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	if len(fields) > 0 {
		buf.WriteString(" → ")
		if err := writeObject(buf, fields); err != nil {
			buf.WriteString("[json-error]")
		}
	}
	buf.WriteByte('\n')
}

// writePretty writes the header line and one tree-indented line per attribute.
func (h *Handler) writePretty(buf *bytes.Buffer, r slog.Record, fields []field) {
	buf.WriteString(r.Time.Format("2006-01-02 15:04:05"))
	buf.WriteByte(' ')
	h.writeLevel(buf, r.Level, "%-7s")
	buf.WriteString(r.Message)
	buf.WriteByte('\n')

	for i, f := range fields {
		if i == len(fields)-1 {
			buf.WriteString("                    └─ ")
		} else {
			buf.WriteString("                    ├─ ")
		}
		fmt.Fprintf(buf, "%s: %v\n", f.key, f.value)
	}
}

func (h *Handler) writeLevel(buf *bytes.Buffer, level slog.Level, layout string) {
	text := fmt.Sprintf(layout, levelString(level))
	if !h.colors {
		buf.WriteString(text)
		return
	}
	buf.WriteString(colorForLevel(level))
	buf.WriteString(text)
	buf.WriteString(colorReset)
}

// writeJSON writes {"time":...,"level":...,"msg":...,<attrs>} on one line.
func writeJSON(buf *bytes.Buffer, r slog.Record, fields []field) error {
	head := []field{
		{key: "time", value: r.Time.Format("2006-01-02T15:04:05")},
		{key: "level", value: levelString(r.Level)},
		{key: "msg", value: r.Message},
	}
	if err := writeObject(buf, append(head, fields...)); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return nil
}

// writeObject encodes fields as a JSON object without sorting the keys.
func writeObject(buf *bytes.Buffer, fields []field) error {
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return err
		}
		value, err := json.Marshal(jsonSafe(f.value))
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return nil
}

// jsonSafe renders values encoding/json would mangle (durations as integers,
// errors as {}) through fmt instead.
func jsonSafe(v any) any {
	switch v := v.(type) {
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return v
	}
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

func colorForLevel(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return colorGray
	case level < slog.LevelInfo:
		return colorBlue
	case level < slog.LevelWarn:
		return colorGreen
	case level < slog.LevelError:
		return colorYellow
	default:
		return colorRed
	}
}

// isTerminal reports whether f is a character device.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
