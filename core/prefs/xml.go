package prefs

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

const (
	stringElement = "string"
	nameAttribute = "name"
)

// ParseXML reads a shared-preferences XML document and returns its <string>
// entries in document order.
//
// Only direct children of the root element named "string" (without a
// namespace) are returned; <long>, <boolean>, <set> and any other element are
// skipped. The text of an entry is the character data before its first child
// element, with comments dropped and entities and CDATA sections decoded.
// Elements without a name attribute are returned with HasName unset, leaving
// the policy to the caller.
//
// The document must be well-formed: exactly one root element and nothing but
// whitespace, comments or processing instructions around it. Any other
// problem yields a *MalformedInputError.
func ParseXML(r io.Reader) ([]Entry, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		entries    []Entry
		rootSeen   bool
		rootClosed bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed(dec, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case rootClosed:
				return nil, malformed(dec, errors.New("content after root element"))
			case !rootSeen:
				rootSeen = true
			case t.Name.Space == "" && t.Name.Local == stringElement:
				entry, err := readEntry(dec, t, len(entries))
				if err != nil {
					return nil, err
				}
				entries = append(entries, entry)
			default:
				if err := dec.Skip(); err != nil {
					return nil, malformed(dec, err)
				}
			}

		case xml.EndElement:
			// Children are consumed whole, so this is the root closing.
			rootClosed = true

		case xml.CharData:
			if !rootSeen || rootClosed {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, malformed(dec, errors.New("text outside root element"))
				}
			}
		}
	}

	switch {
	case !rootSeen:
		return nil, malformed(dec, errors.New("no root element"))
	case !rootClosed:
		return nil, malformed(dec, io.ErrUnexpectedEOF)
	}
	return entries, nil
}

// readEntry consumes a <string> element whose start tag was just read.
func readEntry(dec *xml.Decoder, start xml.StartElement, index int) (Entry, error) {
	line, _ := dec.InputPos()
	entry := Entry{Index: index, Line: line}

	for _, attr := range start.Attr {
		if attr.Name.Space == "" && attr.Name.Local == nameAttribute {
			entry.Name = attr.Value
			entry.HasName = true
			break
		}
	}

	var text strings.Builder
	childSeen := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return Entry{}, malformed(dec, io.ErrUnexpectedEOF)
		}
		if err != nil {
			return Entry{}, malformed(dec, err)
		}

		switch t := tok.(type) {
		case xml.CharData:
			if !childSeen {
				text.Write(t)
			}
		case xml.StartElement:
			childSeen = true
			if err := dec.Skip(); err != nil {
				return Entry{}, malformed(dec, err)
			}
		case xml.EndElement:
			entry.Text = text.String()
			return entry, nil
		}
	}
}

func malformed(dec *xml.Decoder, err error) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &MalformedInputError{Line: syntaxErr.Line, Err: err}
	}
	line, _ := dec.InputPos()
	return &MalformedInputError{Line: line, Err: err}
}
