package prefs

import (
	"bytes"
	"encoding/json"
	"iter"
)

// Result is the ordered mapping produced by a conversion. Keys keep the
// position of their first insertion; a later entry with the same key only
// replaces the value.
type Result struct {
	keys   []string
	values map[string]Value
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{values: make(map[string]Value)}
}

// Set stores v under key and reports whether an earlier value was replaced.
func (r *Result) Set(key string, v Value) (replaced bool) {
	if _, replaced = r.values[key]; !replaced {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
	return replaced
}

// Get returns the value stored under key.
func (r *Result) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of keys.
func (r *Result) Len() int {
	return len(r.keys)
}

// Keys returns the keys in first-insertion order.
func (r *Result) Keys() []string {
	return append([]string(nil), r.keys...)
}

// All iterates over key/value pairs in first-insertion order.
func (r *Result) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range r.keys {
			if !yield(key, r.values[key]) {
				return
			}
		}
	}
}

// Map returns the mapping as plain Go values (see [Value.Interface]). Key
// order is lost.
func (r *Result) Map() (map[string]any, error) {
	out := make(map[string]any, len(r.keys))
	for key, v := range r.All() {
		plain, err := v.Interface()
		if err != nil {
			return nil, err
		}
		out[key] = plain
	}
	return out, nil
}

// MarshalJSON encodes the mapping as a compact JSON object in key order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalString(key)
		if err != nil {
			return nil, err
		}
		v, err := r.values[key].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalIndent is like MarshalJSON but applies json.Indent with the given
// prefix and indent. An empty mapping is rendered as {}.
func (r *Result) MarshalIndent(prefix, indent string) ([]byte, error) {
	compact, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
