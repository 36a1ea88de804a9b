package prefs

import "strings"

// DefaultKeyPrefix is the marker the Flutter plugin puts in front of every
// key it stores.
const DefaultKeyPrefix = "flutter."

// Entry is one <string> element of a preferences store, before decoding.
type Entry struct {
	// Name is the name attribute; empty when HasName is false.
	Name string
	// HasName is false when the element carried no name attribute at all.
	HasName bool
	// Text is the element's text content, empty when absent.
	Text string
	// Index is the position of the entry among the store's entries.
	Index int
	// Line is the input line the element started on, zero when unknown.
	Line int
}

// DeriveKey removes every occurrence of prefix from name. The removal is a
// plain substring replacement, not a prefix trim, so "flutter.flutter.dup"
// becomes "dup". An empty prefix leaves name unchanged.
func DeriveKey(name, prefix string) string {
	if prefix == "" {
		return name
	}
	return strings.ReplaceAll(name, prefix, "")
}
