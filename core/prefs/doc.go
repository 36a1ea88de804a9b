// Package prefs converts Flutter shared-preferences stores into an ordered
// mapping of JSON values.
//
// The Android plugin persists preferences as an XML document of <string>
// elements whose name attribute carries a "flutter." prefix. A [Converter]
// reads that document with [ParseXML], turns every name into a key with
// [DeriveKey], decodes every text as JSON when possible and keeps it as raw
// text otherwise, and collects the outcome into a [Result] that remembers
// first-insertion order.
//
// Example:
//
//	conv := prefs.New()
//	res, err := conv.ConvertString(ctx, `<map><string name="flutter.count">42</string></map>`)
//	if err != nil {
//	    return err
//	}
//	out, _ := res.MarshalIndent("", "    ")
//	// {
//	//     "count": 42
//	// }
//
// Structural problems are reported as [*MalformedInputError] and
// [*MissingAttributeError]; a value that is not JSON is never an error.
package prefs
