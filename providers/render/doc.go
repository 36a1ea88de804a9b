// Package render writes a converted preferences [prefs.Result] in one of the
// supported output formats.
//
// [FormatJSON] is the reference output: an object in first-seen key order,
// indented with four spaces and terminated by a newline. [FormatYAML] goes
// through sigs.k8s.io/yaml and therefore sorts keys. [FormatMarkdown] renders
// a bullet list through html-to-markdown, for pasting into issues and docs.
package render
