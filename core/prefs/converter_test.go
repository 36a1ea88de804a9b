package prefs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/leofalp/prefsjson/core/parse"
	"github.com/leofalp/prefsjson/providers/observability"
	"github.com/leofalp/prefsjson/providers/observability/slogobs"
)

func convertIndented(t *testing.T, conv *Converter, doc string) string {
	t.Helper()
	res, err := conv.ConvertString(context.Background(), doc)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	out, err := res.MarshalIndent("", "    ")
	if err != nil {
		t.Fatalf("MarshalIndent() error = %v", err)
	}
	return string(out)
}

func TestConverter_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "number stays a number",
			doc:  `<root><string name="flutter.count">42</string></root>`,
			want: "{\n    \"count\": 42\n}",
		},
		{
			name: "quoted string is unquoted",
			doc:  `<root><string name="flutter.name">"Alice"</string></root>`,
			want: "{\n    \"name\": \"Alice\"\n}",
		},
		{
			name: "plain text falls back",
			doc:  `<root><string name="flutter.raw">hello world</string></root>`,
			want: "{\n    \"raw\": \"hello world\"\n}",
		},
		{
			name: "empty root",
			doc:  `<root></root>`,
			want: "{}",
		},
		{
			name: "bare literals decode",
			doc:  `<map><string name="flutter.b">true</string><string name="flutter.n">null</string></map>`,
			want: "{\n    \"b\": true,\n    \"n\": null\n}",
		},
		{
			name: "self-closing element is empty text",
			doc:  `<map><string name="flutter.e"/></map>`,
			want: "{\n    \"e\": \"\"\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertIndented(t, New(), tt.doc); got != tt.want {
				t.Errorf("output =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestConverter_DistinctKeysAreAllKept(t *testing.T) {
	var b strings.Builder
	b.WriteString("<map>")
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&b, `<string name="flutter.k%d">%d</string>`, i, i)
	}
	b.WriteString("</map>")

	res, err := New().ConvertString(context.Background(), b.String())
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	if res.Len() != 50 {
		t.Errorf("Len() = %d, want 50", res.Len())
	}
	for i, key := range res.Keys() {
		if key != fmt.Sprintf("k%d", i) {
			t.Fatalf("key %d = %q, document order not preserved", i, key)
		}
	}
}

func TestConverter_DuplicateKeyLastWriteWins(t *testing.T) {
	doc := `<map>
		<string name="flutter.a">1</string>
		<string name="flutter.b">2</string>
		<string name="flutter.flutter.a">"last"</string>
	</map>`

	got := convertIndented(t, New(), doc)
	want := "{\n    \"a\": \"last\",\n    \"b\": 2\n}"
	if got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestConverter_NestedDuplicateMembers(t *testing.T) {
	doc := `<map><string name="flutter.x">{"a": 1, "b": 2, "a": 3}</string></map>`
	want := "{\n    \"x\": {\n        \"a\": 3,\n        \"b\": 2\n    }\n}"

	if got := convertIndented(t, New(), doc); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestConverter_MissingName(t *testing.T) {
	doc := `<map><string name="flutter.ok">1</string><string>2</string></map>`

	_, err := New().ConvertString(context.Background(), doc)
	if !errors.Is(err, ErrMissingAttribute) {
		t.Fatalf("error = %v, want ErrMissingAttribute", err)
	}
	var missing *MissingAttributeError
	if !errors.As(err, &missing) {
		t.Fatalf("error %T should be *MissingAttributeError", err)
	}
	if missing.Index != 1 || missing.Attribute != "name" || missing.Element != "string" {
		t.Errorf("unexpected error details: %+v", missing)
	}
	if !strings.Contains(missing.Error(), `#1 has no "name" attribute`) {
		t.Errorf("Error() = %q", missing.Error())
	}

	res, err := New(WithMissingNamePolicy(MissingNameSkip)).ConvertString(context.Background(), doc)
	if err != nil {
		t.Fatalf("skip policy should not fail: %v", err)
	}
	if res.Len() != 1 {
		t.Errorf("Len() = %d, want 1", res.Len())
	}
}

func TestConverter_MalformedInput(t *testing.T) {
	_, err := New().ConvertString(context.Background(), `<map><string name="a">1</map>`)
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("error = %v, want ErrMalformedInput", err)
	}
}

func TestConverter_KeyPrefix(t *testing.T) {
	doc := `<map><string name="app.theme">"dark"</string><string name="flutter.x">1</string></map>`

	res, err := New(WithKeyPrefix("app.")).ConvertString(context.Background(), doc)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	if keys := res.Keys(); len(keys) != 2 || keys[0] != "theme" || keys[1] != "flutter.x" {
		t.Errorf("Keys() = %v, want [theme flutter.x]", keys)
	}
}

func TestConverter_Decode(t *testing.T) {
	tests := []struct {
		name         string
		opts         []Option
		text         string
		wantKind     Kind
		wantStrategy parse.Strategy
	}{
		{"strict", nil, "[1]", KindArray, parse.StrategyStrict},
		{"raw by default", nil, "{a: 1}", KindRaw, parse.StrategyRaw},
		{"repair when enabled", []Option{WithRepair(true)}, "{a: 1}", KindObject, parse.StrategyRepair},
		{"repair leaves words alone", []Option{WithRepair(true)}, "hello", KindRaw, parse.StrategyRaw},
		{"flutter off by default", nil, parse.DoublePrefix + "1.5", KindRaw, parse.StrategyRaw},
		{"flutter double", []Option{WithFlutterEncodings(true)}, parse.DoublePrefix + "1.5", KindNumber, parse.StrategyFlutter},
		{"flutter list", []Option{WithFlutterEncodings(true)}, parse.JSONListPrefix + `["a"]`, KindArray, parse.StrategyFlutter},
		{"flutter still decodes plain json", []Option{WithFlutterEncodings(true)}, "7", KindNumber, parse.StrategyStrict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, strategy := New(tt.opts...).decode(tt.text)
			if v.Kind() != tt.wantKind {
				t.Errorf("kind = %v, want %v", v.Kind(), tt.wantKind)
			}
			if strategy != tt.wantStrategy {
				t.Errorf("strategy = %v, want %v", strategy, tt.wantStrategy)
			}
		})
	}
}

func TestConverter_Build(t *testing.T) {
	entries := []Entry{
		{Name: "flutter.a", HasName: true, Text: "1"},
		{Name: "flutter.b", HasName: true, Text: "x"},
	}
	res, err := New().Build(context.Background(), entries)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got, _ := res.MarshalJSON(); string(got) != `{"a":1,"b":"x"}` {
		t.Errorf("Build() = %s", got)
	}
}

func TestConverter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().ConvertString(ctx, `<map><string name="a">1</string></map>`)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestConverter_Observability(t *testing.T) {
	var buf bytes.Buffer
	obs := slogobs.New(slogobs.WithOutput(&buf), slogobs.WithLevel(slog.LevelDebug), slogobs.WithColors(false))
	doc := `<map>
		<string name="flutter.a">1</string>
		<string name="flutter.a">word</string>
		<string>orphan</string>
	</map>`

	_, err := New(WithObserver(obs), WithMissingNamePolicy(MissingNameSkip)).ConvertString(context.Background(), doc)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}

	counters := map[string]int64{
		observability.MetricEntriesTotal:    3,
		observability.MetricEntriesRaw:      1,
		observability.MetricEntriesSkipped:  1,
		observability.MetricKeysOverwritten: 1,
	}
	for name, want := range counters {
		if got := obs.CounterValue(name); got != want {
			t.Errorf("counter %s = %d, want %d", name, got, want)
		}
	}
	output := buf.String()
	for _, want := range []string{"Skipping entry without name", "Duplicate key", observability.SpanConvert} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in log output:\n%s", want, output)
		}
	}
}

func TestConverter_TraceAttributes(t *testing.T) {
	var buf bytes.Buffer
	obs := slogobs.New(
		slogobs.WithOutput(&buf),
		slogobs.WithFormat(slogobs.FormatJSON),
		slogobs.WithLevel(slogobs.LevelTrace),
	)
	doc := "<map>\n<string name=\"flutter.a\">1</string>\n</map>"

	if _, err := New(WithObserver(obs)).ConvertString(context.Background(), doc); err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		fmt.Sprintf(`"%s":2`, observability.AttrPrefLine),
		fmt.Sprintf(`"%s":%d`, observability.AttrInputBytes, len(doc)),
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in log output:\n%s", want, output)
		}
	}
}

func TestConverter_ObserverFromContext(t *testing.T) {
	var buf bytes.Buffer
	obs := slogobs.New(slogobs.WithOutput(&buf), slogobs.WithLevel(slog.LevelDebug))
	ctx := observability.ContextWithObserver(context.Background(), obs)

	if _, err := New().ConvertString(ctx, `<map/>`); err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Span ended") {
		t.Errorf("converter should report through the context observer:\n%s", buf.String())
	}
}
