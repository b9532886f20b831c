package serialization

import (
	"github.com/beevik/etree"
	"github.com/schollz/deluge-patch/internal/patch"
	"github.com/schollz/deluge-patch/internal/xmlkit"
)

// ParseDocument wraps etree's DOM parser, shaping failures into the shared
// error taxonomy.
func ParseDocument(xml string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, &xmlkit.XMLParsingFailedError{Cause: err}
	}
	return doc, nil
}

// LoadSynth detects the document's format version and parses it into the
// canonical Synth model.
func LoadSynth(xml string) (patch.Synth, error) {
	synth, _, err := LoadSynthWithVersion(xml)
	return synth, err
}

// LoadSynthWithVersion is LoadSynth plus the detected VersionInfo, useful
// for callers that want to display or preserve version provenance.
func LoadSynthWithVersion(xml string) (patch.Synth, VersionInfo, error) {
	doc, err := ParseDocument(xml)
	if err != nil {
		return patch.Synth{}, VersionInfo{}, err
	}
	root := &doc.Element
	info, err := LoadVersionInfo(root, PatchTypeSynth)
	if err != nil {
		return patch.Synth{}, VersionInfo{}, err
	}
	var synth patch.Synth
	switch info.Format {
	case Version3:
		synth, err = ReadSynthV3(root)
	case Version2:
		synth, err = ReadSynthV2(root)
	case Version1:
		synth, err = ReadSynthV1(root)
	default:
		return patch.Synth{}, VersionInfo{}, &InvalidVersionFormatError{}
	}
	if err != nil {
		return patch.Synth{}, VersionInfo{}, err
	}
	return synth, info, nil
}

// SaveSynth emits s as a V3 document string.
func SaveSynth(s patch.Synth) (string, error) {
	doc := WriteSynth(s)
	return doc.WriteToString()
}

// LoadKit detects the document's format version and parses it into the
// canonical Kit model.
func LoadKit(xml string) (patch.Kit, error) {
	kit, _, err := LoadKitWithVersion(xml)
	return kit, err
}

// LoadKitWithVersion is LoadKit plus the detected VersionInfo.
func LoadKitWithVersion(xml string) (patch.Kit, VersionInfo, error) {
	doc, err := ParseDocument(xml)
	if err != nil {
		return patch.Kit{}, VersionInfo{}, err
	}
	root := &doc.Element
	info, err := LoadVersionInfo(root, PatchTypeKit)
	if err != nil {
		return patch.Kit{}, VersionInfo{}, err
	}
	var kit patch.Kit
	switch info.Format {
	case Version3:
		kit, err = ReadKitV3(root)
	case Version2:
		kit, err = ReadKitV2(root)
	case Version1:
		kit, err = ReadKitV1(root)
	default:
		return patch.Kit{}, VersionInfo{}, &InvalidVersionFormatError{}
	}
	if err != nil {
		return patch.Kit{}, VersionInfo{}, err
	}
	return kit, info, nil
}

// SaveKit emits k as a V3 document string.
func SaveKit(k patch.Kit) (string, error) {
	doc := WriteKit(k)
	return doc.WriteToString()
}
