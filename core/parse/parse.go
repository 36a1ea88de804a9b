package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrNotRepairable is returned by Repair when the repaired text is not a JSON
// object or array.
var ErrNotRepairable = errors.New("parse: content is not a repairable JSON container")

// Strategy names the decoding path that produced a value.
type Strategy string

const (
	// StrategyStrict means the text was valid JSON as-is.
	StrategyStrict Strategy = "strict"

	// StrategyFlutter means a Flutter Android encoding prefix was unwrapped.
	StrategyFlutter Strategy = "flutter"

	// StrategyRepair means the text only decoded after jsonrepair fixed it.
	StrategyRepair Strategy = "repair"

	// StrategyRaw means no strategy succeeded and the text is kept verbatim.
	StrategyRaw Strategy = "raw"
)

// String returns the strategy name.
func (s Strategy) String() string {
	return string(s)
}

// Strict reports whether content is exactly one valid JSON value, optionally
// surrounded by whitespace, and returns its compact encoding. An object that
// repeats a member name keeps the last value at the first position.
//
// Example usage:
//
//	raw, ok := parse.Strict(`  42 `)   // raw == `42`, ok == true
//	raw, ok = parse.Strict(`"Alice"`)  // raw == `"Alice"`, ok == true
//	raw, ok = parse.Strict(`hello`)    // raw == nil, ok == false
func Strict(content string) (json.RawMessage, bool) {
	if !json.Valid([]byte(content)) {
		return nil, false
	}
	raw, ok := compact(content)
	if !ok {
		return nil, false
	}
	collapsed, _, err := lastWins(raw)
	if err != nil {
		return nil, false
	}
	return collapsed, true
}

// Repair runs content through jsonrepair and accepts the outcome only when it
// is an object or an array. Bare words are always "repairable" into quoted
// strings, which would hide the fact that the stored value was plain text.
//
// Example usage:
//
//	raw, err := parse.Repair(`{name: 'John', age: 30,}`)
//	// raw == `{"name":"John","age":30}`
func Repair(content string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return nil, ErrNotRepairable
	}

	repaired, err := jsonrepair.JSONRepair(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to repair JSON: %w", err)
	}

	raw, ok := Strict(repaired)
	if !ok {
		return nil, fmt.Errorf("repaired content is still invalid JSON (repaired: %s): %w", repaired, ErrNotRepairable)
	}
	if raw[0] != '{' && raw[0] != '[' {
		return nil, ErrNotRepairable
	}
	return raw, nil
}

func compact(content string) (json.RawMessage, bool) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(content)); err != nil {
		return nil, false
	}
	return json.RawMessage(buf.Bytes()), true
}

// lastWins rewrites objects holding duplicate member names, at any depth.
// raw must be valid compact JSON and is returned as-is when nothing repeats.
func lastWins(raw json.RawMessage) (json.RawMessage, bool, error) {
	switch raw[0] {
	case '{':
		return lastWinsObject(raw)
	case '[':
		return lastWinsArray(raw)
	default:
		return raw, false, nil
	}
}

func lastWinsObject(raw json.RawMessage) (json.RawMessage, bool, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, false, err
	}

	var (
		names   []string
		members = make(map[string]json.RawMessage)
		changed bool
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false, err
		}
		name, _ := tok.(string)

		var member json.RawMessage
		if err := dec.Decode(&member); err != nil {
			return nil, false, err
		}
		member, memberChanged, err := lastWins(member)
		if err != nil {
			return nil, false, err
		}
		changed = changed || memberChanged

		if _, seen := members[name]; seen {
			changed = true
		} else {
			names = append(names, name)
		}
		members[name] = member
	}
	if !changed {
		return raw, false, nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, name); err != nil {
			return nil, false, err
		}
		buf.WriteByte(':')
		buf.Write(members[name])
	}
	buf.WriteByte('}')
	return json.RawMessage(buf.Bytes()), true, nil
}

func lastWinsArray(raw json.RawMessage) (json.RawMessage, bool, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, false, err
	}

	var (
		elements []json.RawMessage
		changed  bool
	)
	for dec.More() {
		var element json.RawMessage
		if err := dec.Decode(&element); err != nil {
			return nil, false, err
		}
		element, elementChanged, err := lastWins(element)
		if err != nil {
			return nil, false, err
		}
		changed = changed || elementChanged
		elements = append(elements, element)
	}
	if !changed {
		return raw, false, nil
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, element := range elements {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(element)
	}
	buf.WriteByte(']')
	return json.RawMessage(buf.Bytes()), true, nil
}

// writeString appends s as a JSON string without HTML escaping.
func writeString(buf *bytes.Buffer, s string) error {
	var quoted bytes.Buffer
	enc := json.NewEncoder(&quoted)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(quoted.Bytes(), []byte("\n")))
	return nil
}
