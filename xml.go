package keyfile

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strings"
	"unicode"

	"github.com/awnumar/memguard"
)

// XML key document schema.
const (
	xmlRootTag    = "KeyFile"
	xmlMetaTag    = "Meta"
	xmlVersionTag = "Version"
	xmlKeyTag     = "Key"
	xmlDataTag    = "Data"

	// xmlVersion is written into Meta on creation. It is informational and
	// never enforced on read.
	xmlVersion = "1.00"
)

// parseXMLKey attempts to read data as an XML key document and returns the
// decoded key bytes. Any failure (malformed markup, wrong root tag, fewer
// than two root children, malformed base64, no Data element) is a soft miss
// reported as ok=false, never an error: corrupted or unrelated input must
// fall through to the other formats.
//
// Only the first Data element is honored; later occurrences are ignored.
// The decoded length is returned as-is, without validation against the
// 32-byte key size. Both behaviors match the legacy loaders this format
// must stay compatible with.
func parseXMLKey(data []byte) (key []byte, ok bool) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	root, err := nextStartElement(dec)
	if err != nil || root.Name.Local != xmlRootTag {
		return nil, false
	}

	var children int
	for {
		tok, err := dec.Token()
		if err != nil {
			memguard.WipeBytes(key)
			return nil, false
		}

		switch t := tok.(type) {
		case xml.StartElement:
			children++
			if t.Name.Local == xmlKeyTag {
				k, ok := decodeKeyElement(dec, key == nil)
				if !ok {
					memguard.WipeBytes(key)
					return nil, false
				}
				if key == nil {
					key = k
				} else {
					memguard.WipeBytes(k)
				}
			} else {
				// Meta and unknown children are ignored entirely.
				if err := dec.Skip(); err != nil {
					memguard.WipeBytes(key)
					return nil, false
				}
			}
		case xml.EndElement:
			// Root closed. A well-formed document has at least two
			// children and exactly one usable Data element.
			if children < 2 || key == nil {
				memguard.WipeBytes(key)
				return nil, false
			}
			return key, true
		}
	}
}

// decodeKeyElement walks the contents of a Key element until it closes,
// decoding the first Data grandchild when want is true. Returns ok=false on
// malformed markup or malformed base64 in the honored Data element.
func decodeKeyElement(dec *xml.Decoder, want bool) (key []byte, ok bool) {
	for {
		tok, err := dec.Token()
		if err != nil {
			memguard.WipeBytes(key)
			return nil, false
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == xmlDataTag && want && key == nil {
				var text string
				if err := dec.DecodeElement(&text, &t); err != nil {
					return nil, false
				}
				raw, err := base64.StdEncoding.DecodeString(stripSpace(text))
				if err != nil {
					return nil, false
				}
				key = raw
			} else {
				if err := dec.Skip(); err != nil {
					memguard.WipeBytes(key)
					return nil, false
				}
			}
		case xml.EndElement:
			return key, true
		}
	}
}

// nextStartElement advances the decoder past prolog tokens (declaration,
// comments, whitespace) to the document's root element.
func nextStartElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// stripSpace removes all whitespace so wrapped base64 payloads decode, the
// same leniency legacy writers relied on.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// serializeKey renders key as the canonical XML key document: UTF-8, CRLF
// line endings, tab indentation. Parsers accept any whitespace; this exact
// shape is what the reference writer emits.
func serializeKey(key []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(256)

	buf.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\r\n")
	fmt.Fprintf(&buf, "<%s>\r\n", xmlRootTag)
	fmt.Fprintf(&buf, "\t<%s>\r\n", xmlMetaTag)
	fmt.Fprintf(&buf, "\t\t<%s>%s</%s>\r\n", xmlVersionTag, xmlVersion, xmlVersionTag)
	fmt.Fprintf(&buf, "\t</%s>\r\n", xmlMetaTag)
	fmt.Fprintf(&buf, "\t<%s>\r\n", xmlKeyTag)
	fmt.Fprintf(&buf, "\t\t<%s>%s</%s>\r\n", xmlDataTag, base64.StdEncoding.EncodeToString(key), xmlDataTag)
	fmt.Fprintf(&buf, "\t</%s>\r\n", xmlKeyTag)
	fmt.Fprintf(&buf, "</%s>\r\n", xmlRootTag)

	return buf.Bytes()
}
