package plist

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"howett.net/plist"

	"github.com/leofalp/prefsjson/core/prefs"
)

// Read decodes a property list whose top level is a dictionary. Entries are
// returned in sorted key order because dictionaries carry no order; skipped
// lists the keys whose values were not strings, also sorted.
func Read(r io.Reader) (entries []prefs.Entry, skipped []string, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read property list: %w", err)
	}
	if len(data) == 0 {
		return nil, nil, &prefs.MalformedInputError{Err: errors.New("empty property list")}
	}

	var raw any
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		return nil, nil, &prefs.MalformedInputError{Err: err}
	}
	dict, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, &prefs.MalformedInputError{Err: fmt.Errorf("top level is %T, want a dictionary", raw)}
	}

	keys := make([]string, 0, len(dict))
	for key := range dict {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		text, ok := dict[key].(string)
		if !ok {
			skipped = append(skipped, key)
			continue
		}
		entries = append(entries, prefs.Entry{
			Name:    key,
			HasName: true,
			Text:    text,
			Index:   len(entries),
		})
	}
	return entries, skipped, nil
}
