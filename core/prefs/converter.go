package prefs

import (
	"context"
	"io"
	"strings"

	"github.com/leofalp/prefsjson/core/parse"
	"github.com/leofalp/prefsjson/internal/utils"
	"github.com/leofalp/prefsjson/providers/observability"
)

// Converter turns preference entries into a Result. It is immutable after
// New and safe for concurrent use.
type Converter struct {
	keyPrefix        string
	missingName      MissingNamePolicy
	repair           bool
	flutterEncodings bool
	observer         observability.Provider
}

// New creates a Converter. With no options it reproduces the plain
// conversion: "flutter." removed from names, strict JSON decoding with raw
// text fallback, and a missing name attribute treated as an error.
func New(opts ...Option) *Converter {
	c := &Converter{keyPrefix: DefaultKeyPrefix}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConvertString is Convert for an in-memory document.
func (c *Converter) ConvertString(ctx context.Context, document string) (*Result, error) {
	return c.Convert(ctx, strings.NewReader(document))
}

// Convert parses an XML shared-preferences document from r and builds the
// mapping. The whole document is parsed before any entry is decoded, so a
// malformed document never yields a partial Result.
func (c *Converter) Convert(ctx context.Context, r io.Reader) (*Result, error) {
	observer := c.observerFor(ctx)
	ctx, span := observer.StartSpan(ctx, observability.SpanConvert,
		observability.String(observability.AttrInputFormat, "xml"),
		observability.String(observability.AttrKeyPrefix, c.keyPrefix),
	)
	defer span.End()

	timer := utils.NewTimer()
	input := &countingReader{r: r}
	entries, err := ParseXML(input)
	span.SetAttributes(observability.Int(observability.AttrInputBytes, int(input.n)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, "parse failed")
		observer.Error(ctx, "Failed to parse preferences", observability.Error(err))
		return nil, err
	}

	res, err := c.build(ctx, observer, entries)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, "build failed")
		return nil, err
	}

	observer.Histogram(observability.MetricConvertDuration).Record(ctx, timer.Milliseconds())
	span.SetAttributes(
		observability.Int(observability.AttrEntriesCount, len(entries)),
		observability.Int(observability.AttrKeysCount, res.Len()),
	)
	span.SetStatus(observability.StatusOK, "")
	return res, nil
}

// Build decodes entries that were read by another source, such as a
// property list, applying the same key derivation, decoding and
// missing-name policy as Convert.
func (c *Converter) Build(ctx context.Context, entries []Entry) (*Result, error) {
	return c.build(ctx, c.observerFor(ctx), entries)
}

func (c *Converter) build(ctx context.Context, observer observability.Provider, entries []Entry) (*Result, error) {
	res := NewResult()
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		observer.Counter(observability.MetricEntriesTotal).Add(ctx, 1)

		if !entry.HasName {
			missing := &MissingAttributeError{
				Element:   stringElement,
				Attribute: nameAttribute,
				Index:     entry.Index,
				Line:      entry.Line,
			}
			if c.missingName == MissingNameFail {
				return nil, missing
			}
			observer.Warn(ctx, "Skipping entry without name", observability.Error(missing))
			observer.Counter(observability.MetricEntriesSkipped).Add(ctx, 1)
			if span := observability.SpanFromContext(ctx); span != nil {
				span.AddEvent(observability.EventEntrySkipped, observability.Int(observability.AttrPrefIndex, entry.Index))
			}
			continue
		}

		key := DeriveKey(entry.Name, c.keyPrefix)
		value, strategy := c.decode(entry.Text)
		if value.IsRaw() {
			observer.Counter(observability.MetricEntriesRaw).Add(ctx, 1)
		}
		observer.Trace(ctx, "Decoded entry",
			observability.String(observability.AttrPrefName, entry.Name),
			observability.String(observability.AttrPrefKey, key),
			observability.Int(observability.AttrPrefLine, entry.Line),
			observability.String(observability.AttrPrefKind, value.Kind().String()),
			observability.String(observability.AttrPrefStrategy, strategy.String()),
			observability.String(observability.AttrPrefText, observability.TruncateString(entry.Text, 0)),
		)

		if res.Set(key, value) {
			observer.Counter(observability.MetricKeysOverwritten).Add(ctx, 1)
			observer.Debug(ctx, "Duplicate key, keeping the later value",
				observability.String(observability.AttrPrefKey, key),
				observability.Int(observability.AttrPrefIndex, entry.Index),
			)
			if span := observability.SpanFromContext(ctx); span != nil {
				span.AddEvent(observability.EventKeyOverwritten, observability.String(observability.AttrPrefKey, key))
			}
		}
	}
	return res, nil
}

// decode applies the enabled strategies in order: Flutter prefixes (never
// valid JSON on their own), strict JSON, repair, and finally raw text.
func (c *Converter) decode(text string) (Value, parse.Strategy) {
	if c.flutterEncodings {
		if raw, ok := parse.UnwrapFlutter(text); ok {
			return decoded(raw), parse.StrategyFlutter
		}
	}
	if raw, ok := parse.Strict(text); ok {
		return decoded(raw), parse.StrategyStrict
	}
	if c.repair {
		if raw, err := parse.Repair(text); err == nil {
			return decoded(raw), parse.StrategyRepair
		}
	}
	return RawText(text), parse.StrategyRaw
}

func (c *Converter) observerFor(ctx context.Context) observability.Provider {
	if c.observer != nil {
		return c.observer
	}
	if p := observability.ObserverFromContext(ctx); p != nil {
		return p
	}
	return observability.Discard
}

// countingReader records how many bytes of the document were consumed.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
