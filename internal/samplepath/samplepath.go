// Package samplepath rewrites <fileName> element text inside a patch XML
// document according to a substitution map, leaving every other byte
// untouched. It uses encoding/xml.Decoder purely as a byte-offset-tracking
// tokenizer: replacement text is spliced into the original byte slice
// rather than re-encoded, since re-encoding through encoding/xml's Encoder
// would not preserve the source document's formatting.
package samplepath

import (
	"bytes"
	"encoding/xml"
	"io"
)

const fileNameTag = "fileName"

// Rewrite scans src for <fileName>...</fileName> text content and replaces
// any occurrence found (verbatim) as a key in substitutions with its mapped
// value. Text not found in substitutions, and all bytes outside fileName
// elements, pass through unchanged.
func Rewrite(src []byte, substitutions map[string]string) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(src))

	var out bytes.Buffer
	lastOffset := int64(0)
	insideFileName := false

	for {
		startOffset := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			insideFileName = t.Name.Local == fileNameTag
		case xml.EndElement:
			if t.Name.Local == fileNameTag {
				insideFileName = false
			}
		case xml.CharData:
			if insideFileName {
				if replacement, ok := substitutions[string(t)]; ok {
					out.Write(src[lastOffset:startOffset])
					out.WriteString(replacement)
					lastOffset = dec.InputOffset()
				}
			}
		}
	}

	out.Write(src[lastOffset:])
	return out.Bytes(), nil
}
