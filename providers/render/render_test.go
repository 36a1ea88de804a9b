package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/leofalp/prefsjson/core/prefs"
)

func sampleResult(t *testing.T) *prefs.Result {
	t.Helper()
	doc := `<map>
		<string name="flutter.zoom">1.5</string>
		<string name="flutter.name">"Alice"</string>
		<string name="flutter.tags">["a","b"]</string>
		<string name="flutter.note">hello &amp; goodbye</string>
	</map>`
	res, err := prefs.New().ConvertString(context.Background(), doc)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	return res
}

func renderString(t *testing.T, format Format, res *prefs.Result, opts ...Option) string {
	t.Helper()
	r, err := New(format, opts...)
	if err != nil {
		t.Fatalf("New(%s) error = %v", format, err)
	}
	if r.Format() != format {
		t.Errorf("Format() = %s, want %s", r.Format(), format)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, res); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{" yaml ", FormatYAML, false},
		{"md", FormatMarkdown, false},
		{"markdown", FormatMarkdown, false},
		{"toml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New("toml"); err == nil {
		t.Error("New(toml) should fail")
	}
	if _, err := New(FormatJSON, WithIndent(-1)); err == nil {
		t.Error("negative indent should fail")
	}
}

func TestJSONRenderer(t *testing.T) {
	got := renderString(t, FormatJSON, sampleResult(t))
	want := `{
    "zoom": 1.5,
    "name": "Alice",
    "tags": [
        "a",
        "b"
    ],
    "note": "hello & goodbye"
}
`
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestJSONRenderer_IndentOptions(t *testing.T) {
	res := prefs.NewResult()
	res.Set("a", prefs.DecodeValue("1"))

	if got := renderString(t, FormatJSON, res, WithIndent(2)); got != "{\n  \"a\": 1\n}\n" {
		t.Errorf("indent 2 = %q", got)
	}
	if got := renderString(t, FormatJSON, res, WithIndent(0)); got != "{\"a\":1}\n" {
		t.Errorf("indent 0 = %q", got)
	}
	if got := renderString(t, FormatJSON, prefs.NewResult()); got != "{}\n" {
		t.Errorf("empty = %q", got)
	}
}

func TestYAMLRenderer(t *testing.T) {
	got := renderString(t, FormatYAML, sampleResult(t))
	for _, want := range []string{"zoom: 1.5\n", "name: Alice\n", "note: ", "tags:\n", "- a\n", "- b\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("YAML output missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "zoom:") > strings.Index(got, "name:") {
		t.Errorf("YAML should keep key order:\n%s", got)
	}
}

func TestYAMLRenderer_NumberLiterals(t *testing.T) {
	doc := `<map>
		<string name="flutter.big">123456789012345678901234567890</string>
		<string name="flutter.f">1.0</string>
		<string name="flutter.nested">{"n": 2.50, "list": [10, -0.0]}</string>
		<string name="flutter.quoted">"42"</string>
	</map>`
	res, err := prefs.New().ConvertString(context.Background(), doc)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}

	got := renderString(t, FormatYAML, res)
	for _, want := range []string{"123456789012345678901234567890\n", "f: 1.0\n", "n: 2.50\n", "- 10\n", "- -0.0\n", `quoted: "42"`} {
		if !strings.Contains(got, want) {
			t.Errorf("YAML output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "e+29") {
		t.Errorf("big integer was rounded:\n%s", got)
	}
}

func TestYAMLRenderer_Empty(t *testing.T) {
	if got := renderString(t, FormatYAML, prefs.NewResult()); got != "{}\n" {
		t.Errorf("empty YAML = %q", got)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	got := renderString(t, FormatMarkdown, sampleResult(t))
	for _, want := range []string{"**zoom**", "`1.5`", "**name**", `"Alice"`, "**note**", "hello", "goodbye"} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown output missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "zoom") > strings.Index(got, "note") {
		t.Errorf("markdown should keep key order:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("expected trailing newline: %q", got)
	}
}

func TestMarkdownRenderer_Empty(t *testing.T) {
	got := renderString(t, FormatMarkdown, prefs.NewResult())
	if !strings.Contains(got, "No preferences") {
		t.Errorf("empty markdown = %q", got)
	}
}

func TestMarkdownRenderer_BlankRawText(t *testing.T) {
	res := prefs.NewResult()
	res.Set("spaces", prefs.RawText("  "))
	res.Set("unset", prefs.RawText(""))

	got := renderString(t, FormatMarkdown, res)
	for _, want := range []string{"**spaces**", "blank, 2 chars", "**unset**", "empty"} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown output missing %q:\n%s", want, got)
		}
	}
}
