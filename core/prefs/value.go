package prefs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/leofalp/prefsjson/core/parse"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindRaw is text that could not be decoded and is kept verbatim.
	KindRaw Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

var kindNames = [...]string{
	KindRaw:    "raw",
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindObject: "object",
	KindArray:  "array",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Value is a decoded preference value: either a JSON value or the raw text
// it was read from. The zero Value is raw empty text.
type Value struct {
	kind Kind
	raw  json.RawMessage // compact JSON, nil for KindRaw
	text string          // original text, KindRaw only
}

// RawText returns a Value holding s verbatim.
func RawText(s string) Value {
	return Value{kind: KindRaw, text: s}
}

// JSONValue wraps an already valid JSON document. It returns an error if raw
// is not exactly one JSON value.
func JSONValue(raw json.RawMessage) (Value, error) {
	compacted, ok := parse.Strict(string(raw))
	if !ok {
		return Value{}, fmt.Errorf("invalid JSON value: %s", raw)
	}
	return decoded(compacted), nil
}

// decoded builds a Value from compact, valid JSON.
func decoded(raw json.RawMessage) Value {
	return Value{kind: kindOf(raw), raw: raw}
}

func kindOf(raw json.RawMessage) Kind {
	switch raw[0] {
	case '{':
		return KindObject
	case '[':
		return KindArray
	case '"':
		return KindString
	case 't', 'f':
		return KindBool
	case 'n':
		return KindNull
	default:
		return KindNumber
	}
}

// DecodeValue decodes text as a JSON value, falling back to raw text when it
// is not valid JSON. It is the decoding a Converter applies with no options.
func DecodeValue(text string) Value {
	if raw, ok := parse.Strict(text); ok {
		return decoded(raw)
	}
	return RawText(text)
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsRaw reports whether v is undecoded text.
func (v Value) IsRaw() bool {
	return v.kind == KindRaw
}

// Text returns the raw text for KindRaw, and the compact JSON encoding for
// every other kind.
func (v Value) Text() string {
	if v.kind == KindRaw {
		return v.text
	}
	return string(v.raw)
}

// Interface returns v as a plain Go value: string for raw text and JSON
// strings, bool, nil, json.Number, map[string]any or []any.
func (v Value) Interface() (any, error) {
	if v.kind == KindRaw {
		return v.text, nil
	}
	dec := json.NewDecoder(bytes.NewReader(v.raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s value: %w", v.kind, err)
	}
	return out, nil
}

// MarshalJSON encodes raw text as a JSON string and returns decoded values
// unchanged. HTML characters are not escaped.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind != KindRaw {
		return v.raw, nil
	}
	return marshalString(v.text)
}

// Equal reports whether v and other hold the same variant and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindRaw {
		return v.text == other.text
	}
	return bytes.Equal(v.raw, other.raw)
}

func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
