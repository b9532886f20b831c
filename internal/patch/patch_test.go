package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthModeParseStringRoundTrip(t *testing.T) {
	for _, m := range []SynthMode{ModeSubtractive, ModeRingMod, ModeFM} {
		parsed, err := ParseSynthMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParseSynthModeRejectsUnknown(t *testing.T) {
	_, err := ParseSynthMode("wavetable")
	assert.Error(t, err)
	var unsupported *UnsupportedSoundTypeError
	assert.ErrorAs(t, err, &unsupported)
}

func TestPolyphonyV1AcceptsLegacyIntegers(t *testing.T) {
	cases := map[string]Polyphony{"0": PolyAuto, "1": PolyPoly, "2": PolyChoke}
	for s, want := range cases {
		got, err := ParsePolyphonyV1(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPolyphonyV1RejectsV3StringForms(t *testing.T) {
	for _, s := range []string{"poly", "mono", "legato", "choke", "auto"} {
		_, err := ParsePolyphonyV1(s)
		assert.Error(t, err, "expected ParsePolyphonyV1(%q) to fail", s)
		var serde *SerdeError
		assert.ErrorAs(t, err, &serde)
	}
}

func TestPolyphonyParseStringRoundTrip(t *testing.T) {
	for _, p := range []Polyphony{PolyAuto, PolyPoly, PolyMono, PolyLegato, PolyChoke} {
		parsed, err := ParsePolyphony(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}

func TestPolyphonyRejectsLegacyIntegers(t *testing.T) {
	for _, s := range []string{"0", "1", "2"} {
		_, err := ParsePolyphony(s)
		assert.Error(t, err, "expected ParsePolyphony(%q) to fail", s)
	}
}

func TestVoicePriorityParseStringRoundTrip(t *testing.T) {
	for _, p := range []VoicePriority{PriorityLow, PriorityMedium, PriorityHigh} {
		parsed, err := ParseVoicePriority(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}

func TestOscTypeParseStringRoundTrip(t *testing.T) {
	for _, o := range []OscType{OscSine, OscTriangle, OscSquare, OscSaw, OscSquare25, OscSquare50, OscNoise} {
		parsed, err := ParseOscType(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}
}

func TestLfoShapeParseStringRoundTrip(t *testing.T) {
	for _, s := range []LfoShape{LfoSine, LfoTriangle, LfoSquare, LfoSaw, LfoSampleHold, LfoRandomWalk} {
		parsed, err := ParseLfoShape(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}

func TestModulationFxTypeParseStringRoundTrip(t *testing.T) {
	for _, fx := range []ModulationFxType{ModFxOff, ModFxFlanger, ModFxChorus, ModFxPhaser} {
		parsed, err := ParseModulationFxType(fx.String())
		require.NoError(t, err)
		assert.Equal(t, fx, parsed)
	}
}

func TestParseModulationFxTypeRejectsUnknown(t *testing.T) {
	_, err := ParseModulationFxType("reverse")
	assert.Error(t, err)
	var unsupported *UnsupportedModulationFxError
	assert.ErrorAs(t, err, &unsupported)
}

func TestSyncLevelParseStringRoundTrip(t *testing.T) {
	for v := 0; v <= 10; v++ {
		s := SyncLevel(v)
		parsed, err := ParseSyncLevel(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}

func TestParseSyncLevelRejectsOutOfRange(t *testing.T) {
	_, err := ParseSyncLevel("11")
	assert.Error(t, err)
}

func TestDefaultArpeggiatorMatchesV1Fallback(t *testing.T) {
	a := DefaultArpeggiator()
	assert.Equal(t, ArpOff, a.Mode)
	assert.Equal(t, SyncSixteenth, a.Sync)
	assert.Equal(t, 2, a.Octaves)
	assert.Equal(t, 25, a.Rate.Value())
	assert.Equal(t, 25, a.Gate.Value())
}

func TestDefaultSidechainMatchesV1Fallback(t *testing.T) {
	s := DefaultSidechain()
	assert.Equal(t, uint32(327244), s.Attack.MicroSamples())
	assert.Equal(t, uint32(936), s.Release.MicroSamples())
	assert.Equal(t, 18, s.Shape.Value())
	assert.Equal(t, SyncSixteenth, s.Sync)
}

func TestNewSubtractiveSoundHasSawOnOsc1SilentOsc2(t *testing.T) {
	s := NewSubtractiveSound()
	sub, ok := s.Generator.(Subtractive)
	require.True(t, ok)

	osc1, ok := sub.Osc1.(WaveformOscillator)
	require.True(t, ok)
	assert.Equal(t, OscSaw, osc1.Type)
	assert.Equal(t, 50, osc1.Volume.Value())

	osc2, ok := sub.Osc2.(WaveformOscillator)
	require.True(t, ok)
	assert.Equal(t, 0, osc2.Volume.Value())
}

func TestNewKitHasDocumentedGlobalDefaults(t *testing.T) {
	k := NewKit()
	assert.Equal(t, Lpf24dB, k.LpfMode)
	assert.Equal(t, "lpfHpf", k.CurrentFilterType)
	assert.Nil(t, k.SelectedDrumIndex)
	assert.Equal(t, CurrentFirmwareVersion, k.FirmwareVersion)
}

func TestNewEnvelopeIsInstantAttackFullSustain(t *testing.T) {
	e := NewEnvelope()
	assert.Equal(t, 0, e.Attack.Value())
	assert.Equal(t, 50, e.Sustain.Value())
	assert.Equal(t, 0, e.Release.Value())
}
