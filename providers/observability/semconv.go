package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Preference Attributes ---

const (
	// AttrPrefKey is the derived key of a preference entry
	AttrPrefKey = "pref.key"

	// AttrPrefName is the name attribute as found in the store
	AttrPrefName = "pref.name"

	// AttrPrefIndex is the position of the entry among the store's entries
	AttrPrefIndex = "pref.index"

	// AttrPrefLine is the input line of the entry, when known
	AttrPrefLine = "pref.line"

	// AttrPrefKind is the kind of the decoded value (number, raw, ...)
	AttrPrefKind = "pref.kind"

	// AttrPrefStrategy is the decoding strategy that produced the value
	AttrPrefStrategy = "pref.strategy"

	// AttrPrefText is the (truncated) raw text of the entry
	AttrPrefText = "pref.text"
)

// --- Conversion Attributes ---

const (
	// AttrInputFormat is the store format being read (xml, plist)
	AttrInputFormat = "input.format"

	// AttrInputBytes is the size of the input document in bytes
	AttrInputBytes = "input.bytes"

	// AttrOutputFormat is the renderer used (json, yaml, markdown)
	AttrOutputFormat = "output.format"

	// AttrEntriesCount is the number of entries read from the store
	AttrEntriesCount = "entries.count"

	// AttrKeysCount is the number of keys in the resulting mapping
	AttrKeysCount = "keys.count"

	// AttrKeyPrefix is the substring removed from entry names
	AttrKeyPrefix = "key.prefix"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanConvert wraps a whole store conversion
	SpanConvert = "prefs.convert"

	// SpanRender wraps rendering a result into an output format
	SpanRender = "prefs.render"

	// SpanSourceRead wraps reading a non-XML store into entries
	SpanSourceRead = "prefs.source.read"
)

// --- Event Names ---

const (
	// EventKeyOverwritten marks a duplicate key replacing an earlier value
	EventKeyOverwritten = "prefs.key.overwritten"

	// EventEntrySkipped marks an entry dropped by policy
	EventEntrySkipped = "prefs.entry.skipped"
)

// --- Metric Names ---

const (
	// MetricEntriesTotal counts entries processed
	MetricEntriesTotal = "prefs.entries.total"

	// MetricEntriesRaw counts entries kept as raw text
	MetricEntriesRaw = "prefs.entries.raw"

	// MetricEntriesSkipped counts entries dropped by the missing-name policy
	MetricEntriesSkipped = "prefs.entries.skipped"

	// MetricKeysOverwritten counts duplicate keys
	MetricKeysOverwritten = "prefs.keys.overwritten"

	// MetricConvertDuration records conversion time in milliseconds
	MetricConvertDuration = "prefs.convert.duration_ms"
)
