// Package plist reads the NSUserDefaults property list the Flutter
// shared_preferences plugin writes on iOS and macOS, and turns it into the
// same [prefs.Entry] list the XML reader produces.
//
// XML, binary, OpenStep and GNUStep property lists are accepted. Only string
// values become entries; numbers, booleans, dates, data, arrays and nested
// dictionaries are reported as skipped, the way <long> and <boolean> elements
// are ignored in the Android store.
package plist
