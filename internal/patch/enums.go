package patch

import "fmt"

// SynthMode selects the tone-generating engine.
type SynthMode int

const (
	ModeSubtractive SynthMode = iota
	ModeRingMod
	ModeFM
)

func (m SynthMode) String() string {
	switch m {
	case ModeSubtractive:
		return "subtractive"
	case ModeRingMod:
		return "ringmod"
	case ModeFM:
		return "fm"
	default:
		return "subtractive"
	}
}

func ParseSynthMode(s string) (SynthMode, error) {
	switch s {
	case "subtractive":
		return ModeSubtractive, nil
	case "ringmod":
		return ModeRingMod, nil
	case "fm":
		return ModeFM, nil
	default:
		return 0, &UnsupportedSoundTypeError{}
	}
}

// UnsupportedSoundTypeError reports an unrecognized synth-mode string.
type UnsupportedSoundTypeError struct{}

func (e *UnsupportedSoundTypeError) Error() string { return "unsupported sound type" }

// Polyphony is the voice-allocation mode.
type Polyphony int

const (
	PolyAuto Polyphony = iota
	PolyPoly
	PolyMono
	PolyLegato
	PolyChoke
)

func (p Polyphony) String() string {
	switch p {
	case PolyPoly:
		return "poly"
	case PolyMono:
		return "mono"
	case PolyLegato:
		return "legato"
	case PolyChoke:
		return "choke"
	default:
		return "auto"
	}
}

// ParsePolyphony accepts the V3 string form (auto/poly/mono/legato/choke).
func ParsePolyphony(s string) (Polyphony, error) {
	switch s {
	case "auto":
		return PolyAuto, nil
	case "poly":
		return PolyPoly, nil
	case "mono":
		return PolyMono, nil
	case "legato":
		return PolyLegato, nil
	case "choke":
		return PolyChoke, nil
	default:
		return 0, &SerdeError{Kind: "Polyphony", Value: s}
	}
}

// ParsePolyphonyV1 accepts only the legacy V1 integer form (0=auto, 1=poly,
// 2=choke). Any other token, including a V3 string spelling appearing where
// it should not occur in a V1 document, is a SerdeError rather than a
// silent default.
func ParsePolyphonyV1(s string) (Polyphony, error) {
	switch s {
	case "0":
		return PolyAuto, nil
	case "1":
		return PolyPoly, nil
	case "2":
		return PolyChoke, nil
	default:
		return 0, &SerdeError{Kind: "Polyphony", Value: s}
	}
}

// VoicePriority is the voice-stealing priority.
type VoicePriority int

const (
	PriorityLow VoicePriority = iota
	PriorityMedium
	PriorityHigh
)

func (v VoicePriority) String() string {
	switch v {
	case PriorityLow:
		return "0"
	case PriorityHigh:
		return "2"
	default:
		return "1"
	}
}

func ParseVoicePriority(s string) (VoicePriority, error) {
	switch s {
	case "0":
		return PriorityLow, nil
	case "1":
		return PriorityMedium, nil
	case "2":
		return PriorityHigh, nil
	default:
		return 0, &SerdeError{Kind: "VoicePriority", Value: s}
	}
}

// OscType is a waveform oscillator's shape.
type OscType int

const (
	OscSine OscType = iota
	OscTriangle
	OscSquare
	OscSaw
	OscSquare25
	OscSquare50
	OscNoise
)

var oscTypeNames = map[OscType]string{
	OscSine: "sine", OscTriangle: "triangle", OscSquare: "square",
	OscSaw: "saw", OscSquare25: "square25", OscSquare50: "square50", OscNoise: "noise",
}

func (o OscType) String() string {
	if n, ok := oscTypeNames[o]; ok {
		return n
	}
	return "sine"
}

func ParseOscType(s string) (OscType, error) {
	for k, v := range oscTypeNames {
		if v == s {
			return k, nil
		}
	}
	return 0, &SerdeError{Kind: "OscType", Value: s}
}

// LpfMode is the subtractive-engine low-pass filter topology.
type LpfMode int

const (
	Lpf24dB LpfMode = iota
	Lpf24dBDrive
	Lpf12dB
)

func (m LpfMode) String() string {
	switch m {
	case Lpf24dBDrive:
		return "24dBDrive"
	case Lpf12dB:
		return "12dB"
	default:
		return "24dB"
	}
}

func ParseLpfMode(s string) (LpfMode, error) {
	switch s {
	case "24dB":
		return Lpf24dB, nil
	case "24dBDrive":
		return Lpf24dBDrive, nil
	case "12dB":
		return Lpf12dB, nil
	default:
		return 0, &SerdeError{Kind: "LpfMode", Value: s}
	}
}

// LfoShape is an LFO waveform.
type LfoShape int

const (
	LfoSine LfoShape = iota
	LfoTriangle
	LfoSquare
	LfoSaw
	LfoSampleHold
	LfoRandomWalk
)

var lfoShapeNames = map[LfoShape]string{
	LfoSine: "sine", LfoTriangle: "triangle", LfoSquare: "square",
	LfoSaw: "saw", LfoSampleHold: "sampleAndHold", LfoRandomWalk: "randomWalk",
}

func (s LfoShape) String() string {
	if n, ok := lfoShapeNames[s]; ok {
		return n
	}
	return "triangle"
}

func ParseLfoShape(s string) (LfoShape, error) {
	for k, v := range lfoShapeNames {
		if v == s {
			return k, nil
		}
	}
	return 0, &SerdeError{Kind: "LfoShape", Value: s}
}

// SamplePlayMode controls how a sample oscillator plays back its zone(s).
type SamplePlayMode int

const (
	PlayModeCut SamplePlayMode = iota
	PlayModeOnce
	PlayModeLoop
	PlayModeStretch
)

var playModeNames = map[SamplePlayMode]string{
	PlayModeCut: "cut", PlayModeOnce: "once", PlayModeLoop: "loop", PlayModeStretch: "stretch",
}

func (m SamplePlayMode) String() string {
	if n, ok := playModeNames[m]; ok {
		return n
	}
	return "cut"
}

func ParseSamplePlayMode(s string) (SamplePlayMode, error) {
	for k, v := range playModeNames {
		if v == s {
			return k, nil
		}
	}
	return 0, &SerdeError{Kind: "SamplePlayMode", Value: s}
}

// PitchSpeed selects whether changing pitch also changes playback speed.
type PitchSpeed int

const (
	PitchSpeedLinked PitchSpeed = iota
	PitchSpeedIndependent
)

func (p PitchSpeed) String() string {
	if p == PitchSpeedIndependent {
		return "independent"
	}
	return "linked"
}

func ParsePitchSpeed(s string) (PitchSpeed, error) {
	switch s {
	case "linked":
		return PitchSpeedLinked, nil
	case "independent":
		return PitchSpeedIndependent, nil
	default:
		return 0, &SerdeError{Kind: "PitchSpeed", Value: s}
	}
}

// SyncLevel is a musical note-sync division, 0..=10 (0 = off).
type SyncLevel int

const (
	SyncOff SyncLevel = iota
	SyncWhole
	SyncHalf
	SyncQuarter
	SyncEighth
	SyncSixteenth
	SyncThirtySecond
	SyncSixtyFourth
	SyncWholeTriplet
	SyncHalfTriplet
	SyncQuarterTriplet
)

func (s SyncLevel) Value() int { return int(s) }

func ParseSyncLevel(s string) (SyncLevel, error) {
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return 0, &SerdeError{Kind: "SyncLevel", Value: s}
	}
	if v < 0 || v > 10 {
		return 0, &SerdeError{Kind: "SyncLevel", Value: s}
	}
	return SyncLevel(v), nil
}

func (s SyncLevel) String() string { return fmt.Sprintf("%d", int(s)) }

// ArpeggiatorMode selects the arpeggiator's note-ordering pattern.
type ArpeggiatorMode int

const (
	ArpOff ArpeggiatorMode = iota
	ArpUp
	ArpDown
	ArpBoth
	ArpRandom
)

var arpModeNames = map[ArpeggiatorMode]string{
	ArpOff: "off", ArpUp: "up", ArpDown: "down", ArpBoth: "both", ArpRandom: "random",
}

func (a ArpeggiatorMode) String() string {
	if n, ok := arpModeNames[a]; ok {
		return n
	}
	return "off"
}

func ParseArpeggiatorMode(s string) (ArpeggiatorMode, error) {
	for k, v := range arpModeNames {
		if v == s {
			return k, nil
		}
	}
	return 0, &SerdeError{Kind: "ArpeggiatorMode", Value: s}
}

// ModulationFxType selects the modulation-FX variant on a sound.
type ModulationFxType int

const (
	ModFxOff ModulationFxType = iota
	ModFxFlanger
	ModFxChorus
	ModFxPhaser
)

var modFxNames = map[ModulationFxType]string{
	ModFxOff: "none", ModFxFlanger: "flanger", ModFxChorus: "chorus", ModFxPhaser: "phaser",
}

func (m ModulationFxType) String() string {
	if n, ok := modFxNames[m]; ok {
		return n
	}
	return "none"
}

func ParseModulationFxType(s string) (ModulationFxType, error) {
	for k, v := range modFxNames {
		if v == s {
			return k, nil
		}
	}
	return 0, &UnsupportedModulationFxError{Name: s}
}

// UnsupportedModulationFxError reports an unrecognized modulation-FX name.
type UnsupportedModulationFxError struct{ Name string }

func (e *UnsupportedModulationFxError) Error() string {
	return "unsupported modulation fx: " + e.Name
}

// SerdeError reports a scalar enum-string mismatch.
type SerdeError struct {
	Kind, Value string
}

func (e *SerdeError) Error() string {
	return "invalid " + e.Kind + " value: " + e.Value
}

// UnsupportedSoundSourceError reports an unrecognized row tag name.
type UnsupportedSoundSourceError struct{ Tag string }

func (e *UnsupportedSoundSourceError) Error() string {
	return "unsupported sound source: " + e.Tag
}
