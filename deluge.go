// Package deluge reads and writes Synthstrom Deluge patch XML (synth and
// kit sounds) and provides the card-facade helpers used to lay those patches
// out on a Deluge SD card.
package deluge

import (
	"github.com/schollz/deluge-patch/internal/card"
	"github.com/schollz/deluge-patch/internal/patch"
	"github.com/schollz/deluge-patch/internal/serialization"
	"github.com/schollz/deluge-patch/internal/xmlkit"
)

// Synth and Kit are the in-memory patch models. See internal/patch for the
// full field set.
type (
	Synth = patch.Synth
	Kit   = patch.Kit
)

// VersionInfo carries the document's detected structural format alongside
// its declared firmware version strings.
type VersionInfo = serialization.VersionInfo

// FormatVersion is the detected wire-schema generation of a loaded document.
type FormatVersion = serialization.FormatVersion

const (
	VersionUnknown = serialization.VersionUnknown
	Version1       = serialization.Version1
	Version2       = serialization.Version2
	Version3       = serialization.Version3
)

// LoadSynth parses xml into a Synth, auto-detecting whether it is a V1, V2,
// or V3 document.
func LoadSynth(xml string) (Synth, error) {
	return serialization.LoadSynth(xml)
}

// LoadSynthWithVersion is LoadSynth plus the detected VersionInfo.
func LoadSynthWithVersion(xml string) (Synth, VersionInfo, error) {
	return serialization.LoadSynthWithVersion(xml)
}

// SaveSynth always emits the current V3 wire form, regardless of which
// version s was originally loaded from.
func SaveSynth(s Synth) (string, error) {
	return serialization.SaveSynth(s)
}

// LoadKit parses xml into a Kit, auto-detecting its format version.
func LoadKit(xml string) (Kit, error) {
	return serialization.LoadKit(xml)
}

// LoadKitWithVersion is LoadKit plus the detected VersionInfo.
func LoadKitWithVersion(xml string) (Kit, VersionInfo, error) {
	return serialization.LoadKitWithVersion(xml)
}

// SaveKit always emits the current V3 wire form.
func SaveKit(k Kit) (string, error) {
	return serialization.SaveKit(k)
}

// Card facade: layout and naming conventions for a Deluge SD card.
type (
	Card      = card.Card
	PatchType = card.PatchType
)

const (
	PatchTypeKit   = card.PatchTypeKit
	PatchTypeSynth = card.PatchTypeSynth
)

// OpenCard validates that root already has the KITS/SAMPLES/SYNTHS layout
// of a Deluge SD card.
func OpenCard(root string) (*Card, error) {
	return card.Open(root)
}

// CreateCard creates the KITS/SAMPLES/SYNTHS layout under root if it does
// not already exist.
func CreateCard(root string) (*Card, error) {
	return card.Create(root)
}

// Error taxonomy re-exports. Each is a plain struct type, so values are safe
// to share across goroutines without extra synchronization.
type (
	MissingElementError       = xmlkit.MissingElementError
	MissingAttributeError     = xmlkit.MissingAttributeError
	MissingChildError         = xmlkit.MissingChildError
	XMLParsingFailedError     = xmlkit.XMLParsingFailedError
	InvalidVersionFormatError = serialization.InvalidVersionFormatError

	DirectoryDoesNotExistError = card.DirectoryDoesNotExistError
	MissingRootDirectoryError  = card.MissingRootDirectoryError
	FileNotInCardError         = card.FileNotInCardError
	NoMoreStandardNameError    = card.NoMoreStandardNameError
	PathNotRelativeError       = card.PathNotRelativeError
)
