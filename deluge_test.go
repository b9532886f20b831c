package deluge

import (
	"path/filepath"
	"testing"

	"github.com/schollz/deluge-patch/internal/patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadSynthRoundTrip(t *testing.T) {
	s := Synth{Sound: patch.NewSubtractiveSound()}
	xml, err := SaveSynth(s)
	require.NoError(t, err)

	reloaded, info, err := LoadSynthWithVersion(xml)
	require.NoError(t, err)
	assert.Equal(t, Version3, info.Format)
	assert.Equal(t, s.Sound.Mode, reloaded.Sound.Mode)
}

func TestLoadSynthWithVersionRejectsUnversionedDocument(t *testing.T) {
	_, _, err := LoadSynthWithVersion(`<notASound/>`)
	require.Error(t, err)
	var invalid *InvalidVersionFormatError
	assert.ErrorAs(t, err, &invalid)
}

func TestCreateThenOpenCard(t *testing.T) {
	root := t.TempDir()
	_, err := CreateCard(root)
	require.NoError(t, err)

	c, err := OpenCard(root)
	require.NoError(t, err)

	name, err := c.NextStandardPatchName(PatchTypeKit)
	require.NoError(t, err)
	assert.Equal(t, "KIT000", name)
}

func TestOpenCardRejectsMissingRootDirectory(t *testing.T) {
	root := t.TempDir()
	_, err := OpenCard(root)
	require.Error(t, err)
	var missing *MissingRootDirectoryError
	assert.ErrorAs(t, err, &missing)
}

func TestCardSamplePathRejectsFileOutsideCard(t *testing.T) {
	root := t.TempDir()
	c, err := CreateCard(root)
	require.NoError(t, err)

	_, err = c.SamplePath(filepath.Join(t.TempDir(), "SAMPLES", "A.WAV"))
	require.Error(t, err)
	var notInCard *FileNotInCardError
	assert.ErrorAs(t, err, &notInCard)
}
