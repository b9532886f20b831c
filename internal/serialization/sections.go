package serialization

import (
	"github.com/schollz/deluge-patch/internal/patch"
	"github.com/schollz/deluge-patch/internal/values"
	"github.com/schollz/deluge-patch/internal/xmlkit"
)

// The functions in this file read and write the sections shared by every
// sound or kit: envelopes, LFOs, unison, distortion, equalizer, modulation
// FX, arpeggiator, sidechain, patch cables and mod knobs. Each one except
// the patch cable and mod knob functions takes a ParamSource/WriteSink
// rather than an element directly, so the same function serves the
// child-text readers (V1, and V2 where it reuses V1) and the attribute
// reader (V3). The patch cable and mod knob functions take the parent
// element and read or write attributes on its child elements.

func readEnvelope(src ParamSource, def patch.Envelope) (patch.Envelope, error) {
	attack, err := getHexU50(src, "attack", def.Attack)
	if err != nil {
		return patch.Envelope{}, err
	}
	decay, err := getHexU50(src, "decay", def.Decay)
	if err != nil {
		return patch.Envelope{}, err
	}
	sustain, err := getHexU50(src, "sustain", def.Sustain)
	if err != nil {
		return patch.Envelope{}, err
	}
	release, err := getHexU50(src, "release", def.Release)
	if err != nil {
		return patch.Envelope{}, err
	}
	return patch.Envelope{Attack: attack, Decay: decay, Sustain: sustain, Release: release}, nil
}

func writeEnvelope(sink WriteSink, e patch.Envelope) {
	setHexU50(sink, "attack", e.Attack)
	setHexU50(sink, "decay", e.Decay)
	setHexU50(sink, "sustain", e.Sustain)
	setHexU50(sink, "release", e.Release)
}

func readLfo1(src ParamSource, def patch.Lfo1) (patch.Lfo1, error) {
	shapeStr := getString(src, "type", def.Shape.String())
	shape, err := patch.ParseLfoShape(shapeStr)
	if err != nil {
		shape = def.Shape
	}
	rate, err := getHexU50(src, "rate", def.Rate)
	if err != nil {
		return patch.Lfo1{}, err
	}
	syncStr, ok := src.Get("syncLevel")
	sync := def.Sync
	if ok {
		sync, err = patch.ParseSyncLevel(syncStr)
		if err != nil {
			return patch.Lfo1{}, err
		}
	}
	return patch.Lfo1{Shape: shape, Rate: rate, Sync: sync}, nil
}

func writeLfo1(sink WriteSink, l patch.Lfo1) {
	setString(sink, "type", l.Shape.String())
	setHexU50(sink, "rate", l.Rate)
	setInt(sink, "syncLevel", l.Sync.Value())
}

func readLfo2(src ParamSource, def patch.Lfo2) (patch.Lfo2, error) {
	shapeStr := getString(src, "type", def.Shape.String())
	shape, err := patch.ParseLfoShape(shapeStr)
	if err != nil {
		shape = def.Shape
	}
	rate, err := getHexU50(src, "rate", def.Rate)
	if err != nil {
		return patch.Lfo2{}, err
	}
	return patch.Lfo2{Shape: shape, Rate: rate}, nil
}

func writeLfo2(sink WriteSink, l patch.Lfo2) {
	setString(sink, "type", l.Shape.String())
	setHexU50(sink, "rate", l.Rate)
}

func readUnison(src ParamSource, def patch.Unison) patch.Unison {
	voices := getIntClamped(src, "numVoices", def.VoiceCount, 1, 8)
	detune := getIntClamped(src, "detune", def.Detune, 0, 50)
	return patch.Unison{VoiceCount: voices, Detune: detune}
}

func writeUnison(sink WriteSink, u patch.Unison) {
	setInt(sink, "numVoices", u.VoiceCount)
	setInt(sink, "detune", u.Detune)
}

func readArpeggiator(src ParamSource, def patch.Arpeggiator) (patch.Arpeggiator, error) {
	modeStr := getString(src, "mode", def.Mode.String())
	mode, err := patch.ParseArpeggiatorMode(modeStr)
	if err != nil {
		mode = def.Mode
	}
	syncStr, ok := src.Get("syncLevel")
	sync := def.Sync
	if ok {
		sync, err = patch.ParseSyncLevel(syncStr)
		if err != nil {
			return patch.Arpeggiator{}, err
		}
	}
	octaves := getIntClamped(src, "numOctaves", def.Octaves, 1, 8)
	rate, err := getHexU50(src, "rate", def.Rate)
	if err != nil {
		return patch.Arpeggiator{}, err
	}
	gate, err := getHexU50(src, "gate", def.Gate)
	if err != nil {
		return patch.Arpeggiator{}, err
	}
	return patch.Arpeggiator{Mode: mode, Sync: sync, Octaves: octaves, Rate: rate, Gate: gate}, nil
}

func writeArpeggiator(sink WriteSink, a patch.Arpeggiator) {
	setString(sink, "mode", a.Mode.String())
	setInt(sink, "syncLevel", a.Sync.Value())
	setInt(sink, "numOctaves", a.Octaves)
	setHexU50(sink, "rate", a.Rate)
	setHexU50(sink, "gate", a.Gate)
}

func readDelay(src ParamSource, def patch.Delay) (patch.Delay, error) {
	pingPong, err := getOnOff(src, "pingPong", def.PingPong)
	if err != nil {
		return patch.Delay{}, err
	}
	analog, err := getOnOff(src, "analog", def.Analog)
	if err != nil {
		return patch.Delay{}, err
	}
	syncStr, ok := src.Get("syncLevel")
	sync := def.Sync
	if ok {
		sync, err = patch.ParseSyncLevel(syncStr)
		if err != nil {
			return patch.Delay{}, err
		}
	}
	amount, err := getHexU50(src, "amount", def.Amount)
	if err != nil {
		return patch.Delay{}, err
	}
	rate, err := getHexU50(src, "delayRate", def.Rate)
	if err != nil {
		return patch.Delay{}, err
	}
	return patch.Delay{PingPong: pingPong, Analog: analog, Sync: sync, Amount: amount, Rate: rate}, nil
}

func writeDelay(sink WriteSink, d patch.Delay) {
	setOnOff(sink, "pingPong", d.PingPong)
	setOnOff(sink, "analog", d.Analog)
	setInt(sink, "syncLevel", d.Sync.Value())
	setHexU50(sink, "amount", d.Amount)
	setHexU50(sink, "delayRate", d.Rate)
}

// readGlobalDelay mirrors readDelay: a kit's delay section has the same
// wire shape as a sound's.
func readGlobalDelay(src ParamSource, def patch.GlobalDelay) (patch.GlobalDelay, error) {
	d, err := readDelay(src, patch.Delay(def))
	return patch.GlobalDelay(d), err
}

func writeGlobalDelay(sink WriteSink, d patch.GlobalDelay) {
	writeDelay(sink, patch.Delay(d))
}

func readDistortion(src ParamSource, def patch.Distortion) (patch.Distortion, error) {
	bitCrush, err := getHexU50(src, "bitCrush", def.BitCrush)
	if err != nil {
		return patch.Distortion{}, err
	}
	srr, err := getHexU50(src, "sampleRateReduction", def.SampleRateReduction)
	if err != nil {
		return patch.Distortion{}, err
	}
	clipping := getIntClamped(src, "clippingAmount", def.Clipping, 0, 16)
	return patch.Distortion{BitCrush: bitCrush, SampleRateReduction: srr, Clipping: clipping}, nil
}

func writeDistortion(sink WriteSink, d patch.Distortion) {
	setHexU50(sink, "bitCrush", d.BitCrush)
	setHexU50(sink, "sampleRateReduction", d.SampleRateReduction)
	setInt(sink, "clippingAmount", d.Clipping)
}

func readEqualizer(src ParamSource, def patch.Equalizer) (patch.Equalizer, error) {
	bass, err := getHexU50(src, "bass", def.Bass)
	if err != nil {
		return patch.Equalizer{}, err
	}
	treble, err := getHexU50(src, "treble", def.Treble)
	if err != nil {
		return patch.Equalizer{}, err
	}
	bassFreq, err := getHexU50(src, "bassFrequency", def.BassFrequency)
	if err != nil {
		return patch.Equalizer{}, err
	}
	trebleFreq, err := getHexU50(src, "trebleFrequency", def.TrebleFrequency)
	if err != nil {
		return patch.Equalizer{}, err
	}
	return patch.Equalizer{Bass: bass, Treble: treble, BassFrequency: bassFreq, TrebleFrequency: trebleFreq}, nil
}

func writeEqualizer(sink WriteSink, e patch.Equalizer) {
	setHexU50(sink, "bass", e.Bass)
	setHexU50(sink, "treble", e.Treble)
	setHexU50(sink, "bassFrequency", e.BassFrequency)
	setHexU50(sink, "trebleFrequency", e.TrebleFrequency)
}

func readLpf(src ParamSource, def patch.Lpf) (patch.Lpf, error) {
	modeStr := getString(src, "lpfMode", def.Mode.String())
	mode, err := patch.ParseLpfMode(modeStr)
	if err != nil {
		mode = def.Mode
	}
	freq, err := getHexU50(src, "lpfFrequency", def.Frequency)
	if err != nil {
		return patch.Lpf{}, err
	}
	res, err := getHexU50(src, "lpfResonance", def.Resonance)
	if err != nil {
		return patch.Lpf{}, err
	}
	return patch.Lpf{Mode: mode, Frequency: freq, Resonance: res}, nil
}

func writeLpf(sink WriteSink, l patch.Lpf) {
	setString(sink, "lpfMode", l.Mode.String())
	setHexU50(sink, "lpfFrequency", l.Frequency)
	setHexU50(sink, "lpfResonance", l.Resonance)
}

func readHpf(src ParamSource, def patch.Hpf) (patch.Hpf, error) {
	freq, err := getHexU50(src, "hpfFrequency", def.Frequency)
	if err != nil {
		return patch.Hpf{}, err
	}
	res, err := getHexU50(src, "hpfResonance", def.Resonance)
	if err != nil {
		return patch.Hpf{}, err
	}
	return patch.Hpf{Frequency: freq, Resonance: res}, nil
}

func writeHpf(sink WriteSink, h patch.Hpf) {
	setHexU50(sink, "hpfFrequency", h.Frequency)
	setHexU50(sink, "hpfResonance", h.Resonance)
}

// readModulationFx dispatches on the modFXType discriminator, reading the
// matching variant's extra fields from the same source.
func readModulationFx(src ParamSource, typeName string) (patch.ModulationFx, error) {
	fxType, err := patch.ParseModulationFxType(typeName)
	if err != nil {
		return nil, err
	}
	switch fxType {
	case patch.ModFxFlanger:
		rate, err := getHexU50(src, "modFXRate", values.NewHexU50(25))
		if err != nil {
			return nil, err
		}
		feedback, err := getHexU50(src, "modFXFeedback", values.NewHexU50(0))
		if err != nil {
			return nil, err
		}
		return patch.Flanger{Rate: rate, Feedback: feedback}, nil
	case patch.ModFxChorus:
		rate, err := getHexU50(src, "modFXRate", values.NewHexU50(25))
		if err != nil {
			return nil, err
		}
		depth, err := getHexU50(src, "modFXDepth", values.NewHexU50(25))
		if err != nil {
			return nil, err
		}
		offset, err := getHexU50(src, "modFXOffset", values.NewHexU50(0))
		if err != nil {
			return nil, err
		}
		return patch.Chorus{Rate: rate, Depth: depth, Offset: offset}, nil
	case patch.ModFxPhaser:
		rate, err := getHexU50(src, "modFXRate", values.NewHexU50(25))
		if err != nil {
			return nil, err
		}
		feedback, err := getHexU50(src, "modFXFeedback", values.NewHexU50(0))
		if err != nil {
			return nil, err
		}
		depth, err := getHexU50(src, "modFXDepth", values.NewHexU50(25))
		if err != nil {
			return nil, err
		}
		return patch.Phaser{Rate: rate, Feedback: feedback, Depth: depth}, nil
	default:
		return patch.ModFxOffEffect{}, nil
	}
}

// writeModulationFx writes the type discriminator onto typeSink (the sound
// or kit root element) and the variant's scalar parameters onto
// paramsSink (the shared defaultParams node). Even when fx is Off, the
// firmware expects modFXRate/modFXFeedback placeholders on defaultParams,
// so those are always emitted at HexU50(25).
func writeModulationFx(typeSink, paramsSink WriteSink, fx patch.ModulationFx) {
	setString(typeSink, "modFXType", fx.Type().String())
	switch v := fx.(type) {
	case patch.Flanger:
		setHexU50(paramsSink, "modFXRate", v.Rate)
		setHexU50(paramsSink, "modFXFeedback", v.Feedback)
	case patch.Chorus:
		setHexU50(paramsSink, "modFXRate", v.Rate)
		setHexU50(paramsSink, "modFXDepth", v.Depth)
		setHexU50(paramsSink, "modFXOffset", v.Offset)
	case patch.Phaser:
		setHexU50(paramsSink, "modFXRate", v.Rate)
		setHexU50(paramsSink, "modFXFeedback", v.Feedback)
		setHexU50(paramsSink, "modFXDepth", v.Depth)
	default:
		setHexU50(paramsSink, "modFXRate", values.NewHexU50(25))
		setHexU50(paramsSink, "modFXFeedback", values.NewHexU50(25))
	}
}

func readSidechain(src ParamSource, def patch.Sidechain) (patch.Sidechain, error) {
	attackMicros := getIntClamped(src, "attack", int(def.Attack.MicroSamples()), 0, 1<<31-1)
	attack, err := values.AttackSidechainFromMicroSamples(uint32(attackMicros))
	if err != nil {
		attack = def.Attack
	}
	releaseMicros := getIntClamped(src, "release", int(def.Release.MicroSamples()), 0, 1<<31-1)
	release, err := values.ReleaseSidechainFromMicroSamples(uint32(releaseMicros))
	if err != nil {
		release = def.Release
	}
	shape, err := getHexU50(src, "compressorShape", def.Shape)
	if err != nil {
		return patch.Sidechain{}, err
	}
	syncStr, ok := src.Get("syncLevel")
	sync := def.Sync
	if ok {
		sync, err = patch.ParseSyncLevel(syncStr)
		if err != nil {
			return patch.Sidechain{}, err
		}
	}
	return patch.Sidechain{Attack: attack, Release: release, Shape: shape, Sync: sync}, nil
}

func writeSidechain(sink WriteSink, s patch.Sidechain) {
	setInt(sink, "attack", int(s.Attack.MicroSamples()))
	setInt(sink, "release", int(s.Release.MicroSamples()))
	setHexU50(sink, "compressorShape", s.Shape)
	setInt(sink, "syncLevel", s.Sync.Value())
}

func readPatchCables(parent *xmlkit.Element) ([]patch.PatchCable, error) {
	container := xmlkit.OptChild(parent, "patchCables")
	if container == nil {
		return nil, nil
	}
	entries := xmlkit.Children(container, "patchCable")
	cables := make([]patch.PatchCable, 0, len(entries))
	for _, e := range entries {
		source, err := xmlkit.RequiredAttr(e, "source")
		if err != nil {
			return nil, err
		}
		dest, err := xmlkit.RequiredAttr(e, "destination")
		if err != nil {
			return nil, err
		}
		amountStr, err := xmlkit.RequiredAttr(e, "amount")
		if err != nil {
			return nil, err
		}
		amount, err := values.ParseHexU50(amountStr)
		if err != nil {
			return nil, err
		}
		cables = append(cables, patch.PatchCable{Source: source, Destination: dest, Amount: amount})
	}
	return cables, nil
}

func writePatchCables(parent *xmlkit.Element, cables []patch.PatchCable) {
	if len(cables) == 0 {
		return
	}
	container := xmlkit.CreateChild(parent, "patchCables")
	for _, c := range cables {
		e := xmlkit.CreateChild(container, "patchCable")
		xmlkit.SetAttr(e, "source", c.Source)
		xmlkit.SetAttr(e, "destination", c.Destination)
		xmlkit.SetAttr(e, "amount", c.Amount.String())
	}
}

func readModKnobs(parent *xmlkit.Element, def [16]patch.ModKnob) [16]patch.ModKnob {
	container := xmlkit.OptChild(parent, "modKnobs")
	if container == nil {
		return def
	}
	entries := xmlkit.Children(container, "modKnob")
	var knobs [16]patch.ModKnob
	for i := range knobs {
		if i < len(entries) {
			e := entries[i]
			param, _ := xmlkit.OptAttr(e, "controlsParam")
			if param == "" {
				param = def[i].ControlsParam
			}
			var src *string
			if s, ok := xmlkit.OptAttr(e, "patchAmountFromSource"); ok {
				src = &s
			}
			knobs[i] = patch.ModKnob{ControlsParam: param, PatchAmountFromSource: src}
		} else {
			knobs[i] = def[i]
		}
	}
	return knobs
}

func writeModKnobs(parent *xmlkit.Element, knobs [16]patch.ModKnob) {
	container := xmlkit.CreateChild(parent, "modKnobs")
	for _, k := range knobs {
		e := xmlkit.CreateChild(container, "modKnob")
		xmlkit.SetAttr(e, "controlsParam", k.ControlsParam)
		if k.PatchAmountFromSource != nil {
			xmlkit.SetAttr(e, "patchAmountFromSource", *k.PatchAmountFromSource)
		}
	}
}
