package parse

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Prefixes the shared_preferences Android plugin writes in front of values it
// cannot store natively. They are base64 encodings of English sentences
// ("This is the prefix for a list." and so on).
const (
	ListPrefix       = "VGhpcyBpcyB0aGUgcHJlZml4IGZvciBhIGxpc3Qu"
	JSONListPrefix   = ListPrefix + "!"
	BigIntegerPrefix = "VGhpcyBpcyB0aGUgcHJlZml4IGZvciBCaWdJbnRlZ2Vy"
	DoublePrefix     = "VGhpcyBpcyB0aGUgcHJlZml4IGZvciBEb3VibGUu"
)

// UnwrapFlutter decodes values stored with one of the Flutter Android plugin
// prefixes:
//   - JSONListPrefix followed by a JSON array of strings
//   - DoublePrefix followed by a Java Double.toString rendering
//   - BigIntegerPrefix followed by a base-36 integer
//
// The legacy list encoding (ListPrefix followed by a base64 Java serialized
// object) is not decoded. ok is false whenever content does not carry a known
// prefix or the payload after the prefix is unusable.
func UnwrapFlutter(content string) (json.RawMessage, bool) {
	switch {
	case strings.HasPrefix(content, JSONListPrefix):
		raw, ok := Strict(strings.TrimPrefix(content, JSONListPrefix))
		if !ok || raw[0] != '[' {
			return nil, false
		}
		return raw, true

	case strings.HasPrefix(content, DoublePrefix):
		return unwrapDouble(strings.TrimPrefix(content, DoublePrefix))

	case strings.HasPrefix(content, BigIntegerPrefix):
		n, ok := new(big.Int).SetString(strings.TrimPrefix(content, BigIntegerPrefix), 36)
		if !ok {
			return nil, false
		}
		return json.RawMessage(n.String()), true

	default:
		return nil, false
	}
}

func unwrapDouble(payload string) (json.RawMessage, bool) {
	f, err := strconv.ParseFloat(payload, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	// Java renders 1.0E10 and 3.14 as valid JSON numbers already, keep them.
	if raw, ok := Strict(payload); ok {
		return raw, true
	}
	return json.RawMessage(strconv.FormatFloat(f, 'g', -1, 64)), true
}
