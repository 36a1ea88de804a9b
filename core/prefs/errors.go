package prefs

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput matches every *MalformedInputError via errors.Is.
	ErrMalformedInput = errors.New("prefs: malformed input")

	// ErrMissingAttribute matches every *MissingAttributeError via errors.Is.
	ErrMissingAttribute = errors.New("prefs: missing attribute")
)

// MalformedInputError reports a store that could not be parsed.
type MalformedInputError struct {
	// Line is the input line where parsing stopped, zero when unknown.
	Line int
	Err  error
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("prefs: malformed input at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("prefs: malformed input: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

// MissingAttributeError reports a preference element without a required
// attribute.
type MissingAttributeError struct {
	Element   string
	Attribute string
	// Index is the position of the element among the store's entries.
	Index int
	// Line is the input line of the element, zero when unknown.
	Line int
}

func (e *MissingAttributeError) Error() string {
	msg := fmt.Sprintf("prefs: <%s> element #%d has no %q attribute", e.Element, e.Index, e.Attribute)
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	return msg
}

func (e *MissingAttributeError) Is(target error) bool { return target == ErrMissingAttribute }
