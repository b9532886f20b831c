package serialization

import (
	"github.com/beevik/etree"
	"github.com/schollz/deluge-patch/internal/xmlkit"
)

// PatchType distinguishes a synth ("sound") document from a kit ("kit")
// document, the two root element names a card file can hold.
type PatchType int

const (
	PatchTypeSynth PatchType = iota
	PatchTypeKit
)

const (
	kitKey   = "kit"
	synthKey = "sound"

	// KitBaseName and SynthBaseName are the standard card filename prefixes
	// ("KIT057.XML", "SYNT184.XML").
	KitBaseName   = "KIT"
	SynthBaseName = "SYNT"
)

func (t PatchType) rootKey() string {
	if t == PatchTypeKit {
		return kitKey
	}
	return synthKey
}

// BaseName returns the standard card filename prefix for t.
func (t PatchType) BaseName() string {
	if t == PatchTypeKit {
		return KitBaseName
	}
	return SynthBaseName
}

// FormatVersion is the detected wire-schema generation of a loaded
// document.
type FormatVersion int

const (
	VersionUnknown FormatVersion = iota
	Version1
	Version2
	Version3
)

const (
	firmwareVersionKey            = "firmwareVersion"
	earliestCompatibleFirmwareKey = "earliestCompatibleFirmware"
)

// DetectFormatVersion inspects the document root for the markers that
// distinguish V1/V2/V3, trying the newest schema first since only V1
// lacks any version marker at all to test for.
func DetectFormatVersion(root *etree.Element, patchType PatchType) (FormatVersion, bool) {
	if isVersion3(root, patchType) {
		return Version3, true
	}
	if isVersion2(root, patchType) {
		return Version2, true
	}
	if isVersion1(root, patchType) {
		return Version1, true
	}
	return VersionUnknown, false
}

func isVersion3(root *etree.Element, patchType PatchType) bool {
	node := xmlkit.OptElement(root, patchType.rootKey())
	if node == nil {
		return false
	}
	fw, ok := xmlkit.OptAttr(node, firmwareVersionKey)
	if !ok {
		return false
	}
	return startsWithDigit(fw, '3')
}

func isVersion2(root *etree.Element, patchType PatchType) bool {
	if xmlkit.OptElement(root, patchType.rootKey()) == nil {
		return false
	}
	fwNode := xmlkit.OptElement(root, firmwareVersionKey)
	if fwNode == nil {
		return false
	}
	return startsWithDigit(xmlkit.Text(fwNode), '2')
}

func isVersion1(root *etree.Element, patchType PatchType) bool {
	fwNode := xmlkit.OptElement(root, firmwareVersionKey)
	if fwNode == nil {
		return xmlkit.OptElement(root, patchType.rootKey()) != nil
	}
	return startsWithDigit(xmlkit.Text(fwNode), '1')
}

func startsWithDigit(s string, want byte) bool {
	return len(s) > 0 && s[0] == want
}

// VersionInfo carries the raw firmware-version strings (as recorded in the
// document, independent of whether they could be parsed) alongside the
// detected format generation.
type VersionInfo struct {
	FirmwareVersion            string
	HasFirmwareVersion         bool
	EarliestCompatibleFirmware string
	HasEarliestCompatibleFirmware bool
	Format                     FormatVersion
}

// LoadVersionInfo reads the firmware/earliest-compatible strings the same
// way the format detector does: a dedicated child element if present
// (V1/V2), else an attribute of the root patch element (V3).
func LoadVersionInfo(root *etree.Element, patchType PatchType) (VersionInfo, error) {
	fw, hasFw := loadVersionString(root, patchType, firmwareVersionKey)
	earliest, hasEarliest := loadVersionString(root, patchType, earliestCompatibleFirmwareKey)
	format, ok := DetectFormatVersion(root, patchType)
	if !ok {
		return VersionInfo{}, &InvalidVersionFormatError{}
	}
	return VersionInfo{
		FirmwareVersion:               fw,
		HasFirmwareVersion:            hasFw,
		EarliestCompatibleFirmware:    earliest,
		HasEarliestCompatibleFirmware: hasEarliest,
		Format:                        format,
	}, nil
}

func loadVersionString(root *etree.Element, patchType PatchType, key string) (string, bool) {
	if node := xmlkit.OptElement(root, key); node != nil {
		return xmlkit.Text(node), true
	}
	if node := xmlkit.OptElement(root, patchType.rootKey()); node != nil {
		if v, ok := xmlkit.OptAttr(node, key); ok {
			return v, true
		}
	}
	return "", false
}

// InvalidVersionFormatError reports a document with no recognizable V1/V2/V3
// marker at all.
type InvalidVersionFormatError struct{}

func (e *InvalidVersionFormatError) Error() string { return "invalid or unrecognized version format" }
