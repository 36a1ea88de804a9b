package prefs

import "github.com/leofalp/prefsjson/providers/observability"

// MissingNamePolicy decides what happens to a <string> element that has no
// name attribute.
type MissingNamePolicy int

const (
	// MissingNameFail aborts the conversion with a *MissingAttributeError.
	MissingNameFail MissingNamePolicy = iota
	// MissingNameSkip drops the entry, logs a warning and counts it.
	MissingNameSkip
)

func (p MissingNamePolicy) String() string {
	if p == MissingNameSkip {
		return "skip"
	}
	return "fail"
}

// Option configures a Converter.
type Option func(*Converter)

// WithKeyPrefix sets the substring removed from entry names. The default is
// DefaultKeyPrefix; an empty prefix keeps names as they are.
func WithKeyPrefix(prefix string) Option {
	return func(c *Converter) {
		c.keyPrefix = prefix
	}
}

// WithMissingNamePolicy sets the policy for entries without a name.
func WithMissingNamePolicy(policy MissingNamePolicy) Option {
	return func(c *Converter) {
		c.missingName = policy
	}
}

// WithRepair enables jsonrepair for values that look like a broken JSON
// object or array. Values that stay undecodable are still kept as raw text.
func WithRepair(enabled bool) Option {
	return func(c *Converter) {
		c.repair = enabled
	}
}

// WithFlutterEncodings enables unwrapping of the prefixes the Flutter Android
// plugin uses for lists, doubles and big integers.
func WithFlutterEncodings(enabled bool) Option {
	return func(c *Converter) {
		c.flutterEncodings = enabled
	}
}

// WithObserver sets the observability provider. Without one the converter
// uses the provider found in the context, if any, and is silent otherwise.
func WithObserver(observer observability.Provider) Option {
	return func(c *Converter) {
		c.observer = observer
	}
}
