package serialization

import (
	"testing"

	"github.com/schollz/deluge-patch/internal/patch"
	"github.com/schollz/deluge-patch/internal/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A minimal but valid V3 subtractive sound, hand-built in the device's
// attribute form. It has no defaultParams node, so every scalar that lives
// there takes the reader's default.
const v3SubtractiveXML = `<sound mode="subtractive" firmwareVersion="3.1.5" earliestCompatibleFirmware="3.1.0-beta" polyphonic="poly" voicePriority="1">
	<osc1 type="saw"/>
	<osc2 type="saw"/>
	<delay/>
</sound>`

func TestLoadSynthV3SeedScenario(t *testing.T) {
	synth, info, err := LoadSynthWithVersion(v3SubtractiveXML)
	require.NoError(t, err)

	assert.Equal(t, Version3, info.Format)
	assert.Equal(t, patch.ModeSubtractive, synth.Sound.Mode)
	assert.Equal(t, patch.PolyPoly, synth.Sound.Polyphony)
	assert.Equal(t, patch.PriorityMedium, synth.Sound.Priority)

	sub, ok := synth.Sound.Generator.(patch.Subtractive)
	require.True(t, ok)
	osc1, ok := sub.Osc1.(patch.WaveformOscillator)
	require.True(t, ok)
	assert.Equal(t, patch.OscSaw, osc1.Type)
	osc2, ok := sub.Osc2.(patch.WaveformOscillator)
	require.True(t, ok)
	assert.Equal(t, patch.OscSaw, osc2.Type)
}

func TestLoadSynthV1RejectsV3PolyphonySpelling(t *testing.T) {
	// No firmwareVersion anywhere, so this is detected as V1, where
	// "polyphonic" is supposed to carry the legacy 0/1/2 integer form. A V3
	// string spelling appearing here must be rejected, not silently parsed.
	v1XML := `<sound><mode>subtractive</mode><polyphonic>poly</polyphonic></sound>`
	_, _, err := LoadSynthWithVersion(v1XML)
	require.Error(t, err)
	var serde *patch.SerdeError
	assert.ErrorAs(t, err, &serde)
}

func TestLoadSynthRejectsDocumentWithNoVersionMarker(t *testing.T) {
	_, _, err := LoadSynthWithVersion(`<somethingElse/>`)
	assert.Error(t, err)
	var invalid *InvalidVersionFormatError
	assert.ErrorAs(t, err, &invalid)
}

func TestSaveSynthAlwaysUpgradesToV3(t *testing.T) {
	s := patch.NewSubtractiveSound()
	xml, err := SaveSynth(patch.Synth{Sound: s})
	require.NoError(t, err)

	reloaded, info, err := LoadSynthWithVersion(xml)
	require.NoError(t, err)
	assert.Equal(t, Version3, info.Format)
	assert.Equal(t, patch.CurrentFirmwareVersion, info.FirmwareVersion)
	assert.Equal(t, s.Mode, reloaded.Sound.Mode)
	assert.Equal(t, s.Polyphony, reloaded.Sound.Polyphony)
	assert.Equal(t, s.Volume, reloaded.Sound.Volume)
	assert.Equal(t, s.Pan, reloaded.Sound.Pan)
}

// TestSynthRoundTripIsStable checks that saving and reloading a sound twice
// produces identical values the second time: a save-load cycle should be a
// fixed point once a document is already in V3 form.
func TestSynthRoundTripIsStable(t *testing.T) {
	s := patch.Synth{Sound: patch.NewSubtractiveSound()}

	xml1, err := SaveSynth(s)
	require.NoError(t, err)
	once, err := LoadSynth(xml1)
	require.NoError(t, err)

	xml2, err := SaveSynth(once)
	require.NoError(t, err)
	twice, err := LoadSynth(xml2)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestHexU50RoundTripsThroughFullPipeline(t *testing.T) {
	s := patch.NewSubtractiveSound()
	s.Volume = values.NewHexU50(37)

	xml, err := SaveSynth(patch.Synth{Sound: s})
	require.NoError(t, err)

	reloaded, err := LoadSynth(xml)
	require.NoError(t, err)
	assert.Equal(t, 37, reloaded.Sound.Volume.Value())
}

func TestKitRoundTripPreservesRows(t *testing.T) {
	k := patch.NewKit()
	k.Rows = []patch.Row{
		patch.SoundRow{Sound: patch.NewSubtractiveSound(), DisplayName: "KICK"},
		patch.MidiRow{Channel: 3, Note: 60},
		patch.CvGateRow{Channel: 1},
	}

	xml, err := SaveKit(k)
	require.NoError(t, err)

	reloaded, info, err := LoadKitWithVersion(xml)
	require.NoError(t, err)
	assert.Equal(t, Version3, info.Format)
	require.Len(t, reloaded.Rows, 3)

	soundRow, ok := reloaded.Rows[0].(patch.SoundRow)
	require.True(t, ok)
	assert.Equal(t, "KICK", soundRow.DisplayName)

	midiRow, ok := reloaded.Rows[1].(patch.MidiRow)
	require.True(t, ok)
	assert.Equal(t, 3, midiRow.Channel)
	assert.Equal(t, 60, midiRow.Note)

	gateRow, ok := reloaded.Rows[2].(patch.CvGateRow)
	require.True(t, ok)
	assert.Equal(t, 1, gateRow.Channel)
}

func TestParseDocumentRejectsMalformedXML(t *testing.T) {
	_, err := ParseDocument("<sound><unclosed>")
	assert.Error(t, err)
}
