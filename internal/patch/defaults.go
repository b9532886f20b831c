package patch

import "github.com/schollz/deluge-patch/internal/values"

// mid is the "centered/unity" point of the 0..=50 scalar range used
// pervasively as a neutral default (volume, pan, LFO and stutter rates,
// equalizer bands, pulse width, etc).
const mid = 25

// NewEnvelope returns the device's default ADSR: instant attack, decay 20,
// full sustain, instant release.
func NewEnvelope() Envelope {
	return Envelope{
		Attack:  values.NewHexU50(0),
		Decay:   values.NewHexU50(20),
		Sustain: values.NewHexU50(50),
		Release: values.NewHexU50(0),
	}
}

func NewLfo1() Lfo1 {
	return Lfo1{Shape: LfoTriangle, Rate: values.NewHexU50(mid), Sync: SyncOff}
}

func NewLfo2() Lfo2 {
	return Lfo2{Shape: LfoTriangle, Rate: values.NewHexU50(mid)}
}

func NewUnison() Unison {
	return Unison{VoiceCount: 1, Detune: 0}
}

func NewDelay() Delay {
	return Delay{
		PingPong: values.On,
		Analog:   values.Off,
		Sync:     SyncSixteenth,
		Amount:   values.NewHexU50(0),
		Rate:     values.NewHexU50(mid),
	}
}

func NewGlobalDelay() GlobalDelay {
	return GlobalDelay{
		PingPong: values.On,
		Analog:   values.Off,
		Sync:     SyncSixteenth,
		Amount:   values.NewHexU50(0),
		Rate:     values.NewHexU50(mid),
	}
}

func NewDistortion() Distortion {
	return Distortion{
		BitCrush:            values.NewHexU50(0),
		SampleRateReduction: values.NewHexU50(0),
		Clipping:            0,
	}
}

func NewEqualizer() Equalizer {
	return Equalizer{
		Bass:           values.NewHexU50(mid),
		Treble:         values.NewHexU50(mid),
		BassFrequency:  values.NewHexU50(mid),
		TrebleFrequency: values.NewHexU50(mid),
	}
}

func NewLpf() Lpf {
	return Lpf{Mode: Lpf24dB, Frequency: values.NewHexU50(50), Resonance: values.NewHexU50(0)}
}

func NewHpf() Hpf {
	return Hpf{Frequency: values.NewHexU50(0), Resonance: values.NewHexU50(0)}
}

func NewModKnobs() [16]ModKnob {
	var knobs [16]ModKnob
	// The device's default 16 mod-knob mappings; front-panel order.
	defaults := [16]string{
		"pan", "volumePostFX", "lpfResonance", "lpfFrequency",
		"envelope1Attack", "envelope1Release", "delayRate", "delayAmount",
		"reverbAmount", "volumePostReverbSend", "hpfResonance", "hpfFrequency",
		"modFXRate", "modFXDepth", "stutterRate", "sampleRepeat",
	}
	for i, d := range defaults {
		knobs[i] = ModKnob{ControlsParam: d}
	}
	return knobs
}

// NewSubtractiveSound returns a Sound wrapping a default subtractive
// generator: a single sawtooth oscillator on osc1, osc2 silent.
func NewSubtractiveSound() Sound {
	s := newSoundCommon()
	s.Mode = ModeSubtractive
	s.Generator = Subtractive{
		Osc1: WaveformOscillator{
			Type: OscSaw, RetrigPhase: values.RetrigOff,
			PulseWidth: values.NewHexU50(mid), Volume: values.NewHexU50(50),
		},
		Osc2: WaveformOscillator{
			Type: OscSaw, RetrigPhase: values.RetrigOff,
			PulseWidth: values.NewHexU50(mid), Volume: values.NewHexU50(0),
		},
		Osc2Sync:     values.Off,
		NoiseVolume:  values.NewHexU50(0),
		LpfMode:      Lpf24dB,
		LpfFrequency: values.NewHexU50(50),
		LpfResonance: values.NewHexU50(0),
		HpfFrequency: values.NewHexU50(0),
		HpfResonance: values.NewHexU50(0),
	}
	return s
}

func newSoundCommon() Sound {
	return Sound{
		Polyphony:    PolyPoly,
		Priority:     PriorityMedium,
		Volume:       values.NewHexU50(mid),
		Pan:          values.NewHexU50(mid),
		Portamento:   values.NewHexU50(0),
		ReverbAmount: values.NewHexU50(0),
		StutterRate:  values.NewHexU50(mid),
		Envelope1:    NewEnvelope(),
		Envelope2:    NewEnvelope(),
		Lfo1:         NewLfo1(),
		Lfo2:         NewLfo2(),
		Unison:       NewUnison(),
		Arpeggiator:  DefaultArpeggiator(),
		Delay:        NewDelay(),
		Distortion:   NewDistortion(),
		ModulationFx: ModFxOffEffect{},
		Equalizer:    NewEqualizer(),
		Sidechain:    DefaultSidechain(),
		ModKnobs:     NewModKnobs(),

		FirmwareVersion:            CurrentFirmwareVersion,
		EarliestCompatibleFirmware: CurrentFirmwareVersion,
	}
}

// CurrentFirmwareVersion is the literal constant the writer always stamps
// onto saved V3 documents, matching the device's current release.
const CurrentFirmwareVersion = "3.1.5"

// NewKit returns an empty kit with the device's documented global
// defaults.
func NewKit() Kit {
	return Kit{
		Volume:              values.NewHexU50(mid),
		Pan:                 values.NewHexU50(mid),
		ReverbAmount:        values.NewHexU50(0),
		LpfMode:             Lpf24dB,
		CurrentFilterType:   "lpfHpf",
		Lpf:                 NewLpf(),
		Hpf:                 NewHpf(),
		Equalizer:           NewEqualizer(),
		Delay:               NewGlobalDelay(),
		Sidechain:           DefaultSidechain(),
		ModulationFx:        ModFxOffEffect{},
		BitCrush:            values.NewHexU50(0),
		SampleRateReduction: values.NewHexU50(0),
		StutterRate:         values.NewHexU50(mid),

		FirmwareVersion:            CurrentFirmwareVersion,
		EarliestCompatibleFirmware: CurrentFirmwareVersion,
	}
}
