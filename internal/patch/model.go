// Package patch is the canonical in-memory object model for Deluge synth
// and kit patches: the version-independent tree every reader produces and
// the writer consumes.
package patch

import "github.com/schollz/deluge-patch/internal/values"

// Synth wraps a single Sound (a "SYNT" patch).
type Synth struct {
	Sound Sound
}

// Kit is a drum-kit patch: an ordered sequence of rows plus global state.
type Kit struct {
	Rows []Row

	Volume, Pan                values.HexU50
	ReverbAmount                values.HexU50
	LpfMode                     LpfMode
	CurrentFilterType           string
	Lpf                         Lpf
	Hpf                         Hpf
	Equalizer                   Equalizer
	Delay                       GlobalDelay
	Sidechain                   Sidechain
	ModulationFx                ModulationFx
	BitCrush, SampleRateReduction values.HexU50
	StutterRate                 values.HexU50
	SelectedDrumIndex            *int

	FirmwareVersion            string
	EarliestCompatibleFirmware string
}

// Row is one slot of a kit's soundSources list.
type Row interface {
	isRow()
}

// SoundRow is a kit row that is itself a full synth voice.
type SoundRow struct {
	Sound       Sound
	DisplayName string
}

func (SoundRow) isRow() {}

// MidiRow is a kit row that forwards to an external MIDI channel/note.
type MidiRow struct {
	Channel int
	Note    int
}

func (MidiRow) isRow() {}

// CvGateRow is a kit row that forwards to a CV/gate output.
type CvGateRow struct {
	Channel int
}

func (CvGateRow) isRow() {}

// Sound is a synth voice: a generator plus the shared modulation/FX chain.
type Sound struct {
	Mode       SynthMode
	Generator  Generator
	Polyphony  Polyphony
	Priority   VoicePriority
	Name       string // kit-row display name; empty for a bare Synth

	Volume, Pan       values.HexU50
	Portamento        values.HexU50
	ReverbAmount      values.HexU50
	StutterRate       values.HexU50
	SidechainSend     *values.HexU50

	Envelope1, Envelope2 Envelope
	Lfo1                 Lfo1
	Lfo2                 Lfo2
	Unison               Unison
	Arpeggiator          Arpeggiator
	Delay                Delay
	Distortion           Distortion
	ModulationFx         ModulationFx
	Equalizer            Equalizer
	Sidechain            Sidechain
	PatchCables          []PatchCable
	ModKnobs             [16]ModKnob

	FirmwareVersion            string
	EarliestCompatibleFirmware string
}

// Generator is the tagged union of tone-generating engines.
type Generator interface {
	isGenerator()
}

// Subtractive is the classic two-oscillator subtractive engine.
type Subtractive struct {
	Osc1, Osc2   Oscillator
	Osc2Sync     values.OnOff
	NoiseVolume  values.HexU50
	LpfMode      LpfMode
	LpfFrequency, LpfResonance values.HexU50
	HpfFrequency, HpfResonance values.HexU50
}

func (Subtractive) isGenerator() {}

// RingMod is the ring-modulation engine: two waveform oscillators only
// (no sample oscillators), plus noise and osc2 sync.
type RingMod struct {
	Osc1, Osc2  WaveformOscillator
	Osc2Sync    values.OnOff
	NoiseVolume values.HexU50
}

func (RingMod) isGenerator() {}

// FM is the two-operator-pair FM engine.
type FM struct {
	Carrier1, Carrier2     WaveformOscillator
	Modulator1, Modulator2 WaveformOscillator
	Mod2ToMod1             values.OnOff
	Osc1Volume, Osc2Volume values.HexU50
}

func (FM) isGenerator() {}

// Oscillator is the tagged union of subtractive-engine oscillator shapes.
type Oscillator interface {
	isOscillator()
}

// WaveformOscillator is a synthetic (non-sample) oscillator.
type WaveformOscillator struct {
	Type           OscType
	Transpose      int // -96..=96
	FineTranspose  int // -100..=100
	RetrigPhase    values.RetrigPhase
	PulseWidth     values.HexU50
	Volume         values.HexU50
}

func (WaveformOscillator) isOscillator() {}

// SampleOscillator plays back a recorded sample.
type SampleOscillator struct {
	Transpose         int
	FineTranspose     int
	PlayMode          SamplePlayMode
	Reversed          values.OnOff
	PitchSpeed        PitchSpeed
	TimeStretchAmount int // -48..=48
	LinearInterp      values.OnOff
	Volume            values.HexU50
	Sample            Sample
}

func (SampleOscillator) isOscillator() {}

// Sample is the tagged union of single-zone vs multi-range sample data.
type Sample interface {
	isSample()
}

// OneZoneSample references a single file with at most one playback zone.
type OneZoneSample struct {
	Path string
	Zone *SampleZone
}

func (OneZoneSample) isSample() {}

// SampleRangesSample maps pitch ranges to distinct sample files.
type SampleRangesSample struct {
	Ranges []SampleRange
}

func (SampleRangesSample) isSample() {}

// SampleRange is one entry of a multi-range sample map. RangeTopNote is
// nil for the last (unbounded-top) range.
type SampleRange struct {
	RangeTopNote  *int
	Transpose     int
	FineTranspose int
	Path          string
	Zone          *SampleZone
}

// SampleZone is a frame range within a sample file, with optional loop
// points.
type SampleZone struct {
	Start, End         values.SamplePosition
	StartLoop, EndLoop *values.SamplePosition
}

// Envelope is an ADSR envelope generator.
type Envelope struct {
	Attack, Decay, Sustain, Release values.HexU50
}

// Lfo1 is the sound's primary (global) LFO.
type Lfo1 struct {
	Shape LfoShape
	Rate  values.HexU50
	Sync  SyncLevel
}

// Lfo2 is the sound's secondary LFO (never tempo-synced).
type Lfo2 struct {
	Shape LfoShape
	Rate  values.HexU50
}

// Unison is the voice-stacking detune configuration.
type Unison struct {
	VoiceCount int // 1..=8
	Detune     int // 0..=50
}

// Arpeggiator is the note-arpeggiation configuration.
type Arpeggiator struct {
	Mode    ArpeggiatorMode
	Sync    SyncLevel
	Octaves int // 1..=8
	Rate    values.HexU50
	Gate    values.HexU50
}

// DefaultArpeggiator reproduces the V1 reader's hardcoded fallback used
// when no arpeggiator node is present in the document: off, sixteenth
// sync, 2 octaves, rate 25, gate 25.
func DefaultArpeggiator() Arpeggiator {
	return Arpeggiator{
		Mode:    ArpOff,
		Sync:    SyncSixteenth,
		Octaves: 2,
		Rate:    values.NewHexU50(25),
		Gate:    values.NewHexU50(25),
	}
}

// Delay is the per-sound delay effect.
type Delay struct {
	PingPong values.OnOff
	Analog   values.OnOff
	Sync     SyncLevel
	Amount   values.HexU50
	Rate     values.HexU50
}

// GlobalDelay is a kit's delay effect: like Delay, but V1 hardcodes
// ping-pong/analog/sync and only reads amount/rate from the document.
type GlobalDelay struct {
	PingPong values.OnOff
	Analog   values.OnOff
	Sync     SyncLevel
	Amount   values.HexU50
	Rate     values.HexU50
}

// Distortion is the saturation/bit-reduction stage.
type Distortion struct {
	BitCrush          values.HexU50
	SampleRateReduction values.HexU50
	Clipping          int // 0..=16
}

// Equalizer is the two-band tone-shaping stage.
type Equalizer struct {
	Bass, Treble             values.HexU50
	BassFrequency, TrebleFrequency values.HexU50
}

// Lpf is the kit-global low-pass filter.
type Lpf struct {
	Mode                LpfMode
	Frequency, Resonance values.HexU50
}

// Hpf is the kit-global high-pass filter.
type Hpf struct {
	Frequency, Resonance values.HexU50
}

// ModulationFx is the tagged union of modulation-effect variants.
type ModulationFx interface {
	isModulationFx()
	Type() ModulationFxType
}

type ModFxOffEffect struct{}

func (ModFxOffEffect) isModulationFx()       {}
func (ModFxOffEffect) Type() ModulationFxType { return ModFxOff }

type Flanger struct {
	Rate, Feedback values.HexU50
}

func (Flanger) isModulationFx()       {}
func (Flanger) Type() ModulationFxType { return ModFxFlanger }

type Chorus struct {
	Rate, Depth, Offset values.HexU50
}

func (Chorus) isModulationFx()       {}
func (Chorus) Type() ModulationFxType { return ModFxChorus }

type Phaser struct {
	Rate, Feedback, Depth values.HexU50
}

func (Phaser) isModulationFx()       {}
func (Phaser) Type() ModulationFxType { return ModFxPhaser }

// Sidechain is the per-sound (or kit-global) ducking compressor.
type Sidechain struct {
	Attack  values.AttackSidechain
	Release values.ReleaseSidechain
	Shape   values.HexU50
	Sync    SyncLevel
}

// DefaultSidechain reproduces the V1 reader's hardcoded fallback used when
// no compressor node is present: attack micro-sample 327244 (table index
// 7), release 936 (table index 28), shape 0xDC28F5B2 (HexU50(18)), sync
// Sixteenth.
func DefaultSidechain() Sidechain {
	attack, _ := values.AttackSidechainFromMicroSamples(327244)
	release, _ := values.ReleaseSidechainFromMicroSamples(936)
	return Sidechain{
		Attack:  attack,
		Release: release,
		Shape:   values.NewHexU50(18),
		Sync:    SyncSixteenth,
	}
}

// PatchCable is one modulation routing entry.
type PatchCable struct {
	Source, Destination string
	Amount               values.HexU50
}

// ModKnob is one of the 16 assignable front-panel knob mappings.
type ModKnob struct {
	ControlsParam          string
	PatchAmountFromSource *string
}
