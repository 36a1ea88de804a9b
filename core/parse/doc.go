// Package parse turns the raw text stored in a shared-preferences entry into
// JSON. Preference stores are written by many plugin versions and by hand, so
// the package offers a layered strategy: strict validation, unwrapping of the
// encodings the Flutter Android plugin applies to non-string values, and
// automatic JSON repair. Each strategy reports whether it produced a value and
// leaves the decision to fall back to raw text to the caller.
//
// The main entry points are [Strict], [UnwrapFlutter] and [Repair]; all of them
// return compact JSON so callers can re-indent or embed the result without
// re-encoding it.
package parse
