// Package keys centralizes the XML element/attribute names used across all
// three patch format versions, following spec.md §6.2's wire-form naming.
package keys

const (
	Sound       = "sound"
	Kit         = "kit"
	SoundSources = "soundSources"
	MidiOutput  = "midiOutput"
	GateOutput  = "gateOutput"

	FirmwareVersion            = "firmwareVersion"
	EarliestCompatibleFirmware = "earliestCompatibleFirmware"

	Mode          = "mode"
	Polyphonic    = "polyphonic"
	VoicePriority = "voicePriority"
	SideChainSend = "sideChainSend"
	Name          = "name"
	Channel       = "channel"
	Note          = "note"

	Osc1       = "osc1"
	Osc2       = "osc2"
	Modulator1 = "modulator1"
	Modulator2 = "modulator2"

	OscType           = "type"
	Transpose         = "transpose"
	Cents             = "cents"
	RetrigPhase       = "retrigPhase"
	PulseWidth        = "pulseWidth"
	Reversed          = "reversed"
	LoopMode          = "loopMode"
	TimeStretchEnable = "timeStretchEnable"
	TimeStretchAmount = "timeStretchAmount"
	LinearInterp      = "linearInterpolation"
	FileName          = "fileName"
	Zone              = "zone"
	SampleRanges      = "sampleRanges"
	SampleRange       = "sampleRange"
	RangeTopNote      = "rangeTopNote"

	StartSamplePos   = "startSamplePos"
	EndSamplePos     = "endSamplePos"
	StartLoopPos     = "startLoopPos"
	EndLoopPos       = "endLoopPos"
	StartMilliseconds = "startMilliseconds"
	EndMilliseconds   = "endMilliseconds"

	VolumeOscA = "oscAVolume"
	VolumeOscB = "oscBVolume"
	FeedbackCarrier1 = "carrier1Feedback"
	FeedbackCarrier2 = "carrier2Feedback"
	Modulator1Amount = "modulator1Amount"
	Modulator2Amount = "modulator2Amount"
	PulseWidthOscA   = "oscAPulseWidth"
	PulseWidthOscB   = "oscBPulseWidth"

	Unison         = "unison"
	UnisonVoices   = "numVoices"
	UnisonDetune   = "detune"

	Envelope1 = "envelope1"
	Envelope2 = "envelope2"
	Attack    = "attack"
	Decay     = "decay"
	Sustain   = "sustain"
	Release   = "release"

	Lfo1      = "lfo1"
	Lfo2      = "lfo2"
	LfoShape  = "type"
	LfoRate   = "rate"
	LfoSync   = "syncLevel"

	Arpeggiator   = "arpeggiator"
	ArpMode       = "mode"
	ArpSync       = "syncLevel"
	ArpOctaves    = "numOctaves"
	ArpRate       = "rate"
	ArpGate       = "gate"
	ArpRateDP     = "arpeggiatorRate"
	ArpGateDP     = "arpeggiatorGate"

	Delay         = "delay"
	PingPong      = "pingPong"
	Analog        = "analog"
	SyncLevel     = "syncLevel"
	DelayFeedback = "delayFeedback"
	DelayRate     = "delayRate"
	DelayAmount   = "amount"

	Compressor        = "compressor"
	CompressorAttack  = "attack"
	CompressorRelease = "release"
	CompressorShape   = "compressorShape"
	CompressorSync    = "syncLevel"

	BitCrush            = "bitCrush"
	SampleRateReduction = "sampleRateReduction"
	ClippingAmount      = "clippingAmount"

	Equalizer       = "equalizer"
	Bass            = "bass"
	Treble          = "treble"
	BassFrequency   = "bassFrequency"
	TrebleFrequency = "trebleFrequency"

	Lpf           = "lpf"
	Hpf           = "hpf"
	LpfMode       = "lpfMode"
	LpfFrequency  = "lpfFrequency"
	LpfResonance  = "lpfResonance"
	HpfFrequency  = "hpfFrequency"
	HpfResonance  = "hpfResonance"

	ModFxType     = "modFXType"
	ModFxRate     = "modFXRate"
	ModFxFeedback = "modFXFeedback"
	ModFxDepth    = "modFXDepth"
	ModFxOffset   = "modFXOffset"

	PatchCables = "patchCables"
	PatchCable  = "patchCable"
	Source      = "source"
	Destination = "destination"
	Amount      = "amount"

	ModKnobs             = "modKnobs"
	ModKnob              = "modKnob"
	ControlsParam        = "controlsParam"
	PatchAmountFromSource = "patchAmountFromSource"

	Volume          = "volume"
	Pan             = "pan"
	Portamento      = "portamento"
	ReverbAmount    = "reverbAmount"
	StutterRate     = "stutterRate"
	NoiseVolume     = "noiseVolume"
	Osc2Sync        = "oscillatorSync"
	Mod2ToMod1      = "modulator2ToModulator1"
	OscillatorReset = "oscillatorReset"

	DefaultParams     = "defaultParams"
	CurrentFilterType = "currentFilterType"
	SelectedDrumIndex = "selectedDrumIndex"
)
