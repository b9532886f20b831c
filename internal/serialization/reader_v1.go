package serialization

import (
	"github.com/beevik/etree"
	"github.com/schollz/deluge-patch/internal/patch"
	"github.com/schollz/deluge-patch/internal/values"
	"github.com/schollz/deluge-patch/internal/xmlkit"
)

// ReadSynthV1 parses a V1 "sound" document. V1 carries no version marker at
// all and stores every scalar as a child element's text content rather than
// an attribute.
func ReadSynthV1(root *etree.Element) (patch.Synth, error) {
	soundEl, err := xmlkit.RequiredElement(root, "sound")
	if err != nil {
		return patch.Synth{}, err
	}
	sound, err := readSoundV1(soundEl)
	if err != nil {
		return patch.Synth{}, err
	}
	return patch.Synth{Sound: sound}, nil
}

// ReadKitV1 parses a V1 "kit" document.
func ReadKitV1(root *etree.Element) (patch.Kit, error) {
	kitEl, err := xmlkit.RequiredElement(root, "kit")
	if err != nil {
		return patch.Kit{}, err
	}
	kSrc := ChildTextSource{El: kitEl}

	kit := patch.NewKit()

	modeStr, ok := kSrc.Get("lpfMode")
	if ok {
		if m, err := patch.ParseLpfMode(modeStr); err == nil {
			kit.LpfMode = m
		}
	}
	if cft, ok := kSrc.Get("currentFilterType"); ok {
		kit.CurrentFilterType = cft
	}

	// V1 kit delay: ping-pong/analog/sync forced, amount/rate read from the
	// nested defaultParams/delay element.
	kit.Delay = patch.NewGlobalDelay()
	if defaults := xmlkit.OptChild(kitEl, "defaultParams"); defaults != nil {
		if delayEl := xmlkit.OptChild(defaults, "delay"); delayEl != nil {
			dSrc := ChildTextSource{El: delayEl}
			if amount, err := getHexU50(dSrc, "feedback", kit.Delay.Amount); err == nil {
				kit.Delay.Amount = amount
			}
			if rate, err := getHexU50(dSrc, "rate", kit.Delay.Rate); err == nil {
				kit.Delay.Rate = rate
			}
		}
		dSrc := ChildTextSource{El: defaults}
		if v, err := getHexU50(dSrc, "volume", kit.Volume); err == nil {
			kit.Volume = v
		}
		if v, err := getHexU50(dSrc, "pan", kit.Pan); err == nil {
			kit.Pan = v
		}
		if v, err := getHexU50(dSrc, "reverbAmount", kit.ReverbAmount); err == nil {
			kit.ReverbAmount = v
		}
		if v, err := getHexU50(dSrc, "bitCrush", kit.BitCrush); err == nil {
			kit.BitCrush = v
		}
		if v, err := getHexU50(dSrc, "sampleRateReduction", kit.SampleRateReduction); err == nil {
			kit.SampleRateReduction = v
		}
		if v, err := getHexU50(dSrc, "stutterRate", kit.StutterRate); err == nil {
			kit.StutterRate = v
		}
		if lpfEl := xmlkit.OptChild(defaults, "lpf"); lpfEl != nil {
			if lpf, err := readLpf(ChildTextSource{El: lpfEl}, kit.Lpf); err == nil {
				kit.Lpf = lpf
			}
		}
		if hpfEl := xmlkit.OptChild(defaults, "hpf"); hpfEl != nil {
			if hpf, err := readHpf(ChildTextSource{El: hpfEl}, kit.Hpf); err == nil {
				kit.Hpf = hpf
			}
		}
	}

	// V1 has no compressor node: kit-global sidechain defaults.
	kit.Sidechain = patch.DefaultSidechain()
	kit.ModulationFx = patch.ModFxOffEffect{}

	sourcesEl, err := xmlkit.RequiredChild(kitEl, "soundSources")
	if err != nil {
		return patch.Kit{}, err
	}
	var rows []patch.Row
	for _, child := range sourcesEl.ChildElements() {
		row, err := readRowV1(child)
		if err != nil {
			return patch.Kit{}, err
		}
		rows = append(rows, row)
	}
	kit.Rows = rows

	kit.FirmwareVersion = ""
	kit.EarliestCompatibleFirmware = ""

	return kit, nil
}

func readRowV1(el *etree.Element) (patch.Row, error) {
	switch el.Tag {
	case "sound":
		sound, err := readSoundV1(el)
		if err != nil {
			return nil, err
		}
		name, _ := xmlkit.OptChildText(el, "name")
		return patch.SoundRow{Sound: sound, DisplayName: name}, nil
	case "midiOutput":
		src := ChildTextSource{El: el}
		channel := getIntClamped(src, "channel", 0, -1<<30, 1<<30)
		note := getIntClamped(src, "note", 0, -1<<30, 1<<30)
		return patch.MidiRow{Channel: channel, Note: note}, nil
	case "gateOutput":
		channel := getIntClamped(ChildTextSource{El: el}, "channel", 0, -1<<30, 1<<30)
		return patch.CvGateRow{Channel: channel}, nil
	default:
		return nil, &patch.UnsupportedSoundSourceError{Tag: el.Tag}
	}
}

func readSoundV1(el *etree.Element) (patch.Sound, error) {
	src := ChildTextSource{El: el}

	modeStr, err := xmlkit.RequiredChildText(el, "mode")
	if err != nil {
		return patch.Sound{}, err
	}
	mode, err := patch.ParseSynthMode(modeStr)
	if err != nil {
		return patch.Sound{}, err
	}

	s := patch.Sound{Mode: mode}

	polyStr := getString(src, "polyphonic", "1")
	s.Polyphony, err = patch.ParsePolyphonyV1(polyStr)
	if err != nil {
		return patch.Sound{}, err
	}
	prioStr := getString(src, "voicePriority", "1")
	s.Priority, err = patch.ParseVoicePriority(prioStr)
	if err != nil {
		return patch.Sound{}, err
	}

	if sendStr, ok := src.Get("sideChainSend"); ok {
		send, err := values.ParseHexU50(sendStr)
		if err == nil {
			s.SidechainSend = &send
		}
	}

	generator, err := readGeneratorV1(el, mode)
	if err != nil {
		return patch.Sound{}, err
	}
	s.Generator = generator

	defaults := xmlkit.OptChild(el, "defaultParams")
	var dSrc ParamSource = src
	if defaults != nil {
		dSrc = ChildTextSource{El: defaults}
	}

	s.Volume, _ = getHexU50(dSrc, "volume", values.NewHexU50(25))
	s.Pan, _ = getHexU50(dSrc, "pan", values.NewHexU50(25))
	s.Portamento, _ = getHexU50(dSrc, "portamento", values.NewHexU50(0))
	s.ReverbAmount, _ = getHexU50(dSrc, "reverbAmount", values.NewHexU50(0))
	s.StutterRate, _ = getHexU50(dSrc, "stutterRate", values.NewHexU50(25))

	s.Envelope1 = patch.NewEnvelope()
	if envEl := firstNonNil(xmlkit.OptChild(el, "envelope1"), xmlkit.OptChild(defaults, "envelope1")); envEl != nil {
		s.Envelope1, _ = readEnvelope(ChildTextSource{El: envEl}, s.Envelope1)
	}
	s.Envelope2 = patch.NewEnvelope()
	if envEl := xmlkit.OptChild(defaults, "envelope2"); envEl != nil {
		s.Envelope2, _ = readEnvelope(ChildTextSource{El: envEl}, s.Envelope2)
	}

	s.Lfo1 = patch.NewLfo1()
	if lfo1El := xmlkit.OptChild(el, "lfo1"); lfo1El != nil {
		s.Lfo1, _ = readLfo1(ChildTextSource{El: lfo1El}, s.Lfo1)
	}
	s.Lfo2 = patch.NewLfo2()
	if lfo2El := xmlkit.OptChild(el, "lfo2"); lfo2El != nil {
		s.Lfo2, _ = readLfo2(ChildTextSource{El: lfo2El}, s.Lfo2)
	}

	s.Unison = patch.NewUnison()
	if unisonEl := xmlkit.OptChild(el, "unison"); unisonEl != nil {
		s.Unison = readUnison(ChildTextSource{El: unisonEl}, s.Unison)
	}

	// No arpeggiator or compressor node exists in V1: hardcoded defaults.
	s.Arpeggiator = patch.DefaultArpeggiator()
	s.Sidechain = patch.DefaultSidechain()

	s.Delay = patch.NewDelay()
	if delayEl := xmlkit.OptChild(el, "delay"); delayEl != nil {
		s.Delay, _ = readDelay(ChildTextSource{El: delayEl}, s.Delay)
	}

	s.Distortion, _ = readDistortion(dSrc, patch.NewDistortion())

	s.ModulationFx = patch.ModFxOffEffect{}
	if modFxType, ok := src.Get("modFXType"); ok {
		if fx, err := readModulationFx(dSrc, modFxType); err == nil {
			s.ModulationFx = fx
		}
	}

	s.Equalizer, _ = readEqualizer(dSrc, patch.NewEqualizer())

	s.PatchCables, _ = readPatchCables(el)
	s.ModKnobs = readModKnobs(el, patch.NewModKnobs())

	// Legacy oscillatorReset: applies uniformly to both waveform
	// oscillators (or both FM carriers), overriding any per-oscillator
	// retrigPhase this reader already populated.
	if resetStr, ok := src.Get("oscillatorReset"); ok {
		reset, err := values.ParseOnOff(resetStr)
		if err == nil {
			s.Generator = applyOscillatorReset(s.Generator, bool(reset))
		}
	}

	s.FirmwareVersion = ""
	s.EarliestCompatibleFirmware = ""

	return s, nil
}

// applyOscillatorReset rewrites both waveform oscillators (or both FM
// carriers) with the given retrigger phase, matching the original reader's
// retroactive oscillatorReset translation. Sample oscillators are left
// untouched since they have no retrigPhase field.
func applyOscillatorReset(gen patch.Generator, on bool) patch.Generator {
	phase := values.RetrigFromOscillatorReset(on)
	switch g := gen.(type) {
	case patch.Subtractive:
		g.Osc1 = withRetrig(g.Osc1, phase)
		g.Osc2 = withRetrig(g.Osc2, phase)
		return g
	case patch.RingMod:
		g.Osc1.RetrigPhase = phase
		g.Osc2.RetrigPhase = phase
		return g
	case patch.FM:
		g.Carrier1.RetrigPhase = phase
		g.Carrier2.RetrigPhase = phase
		return g
	default:
		return gen
	}
}

func withRetrig(osc patch.Oscillator, phase values.RetrigPhase) patch.Oscillator {
	if w, ok := osc.(patch.WaveformOscillator); ok {
		w.RetrigPhase = phase
		return w
	}
	return osc
}

func readGeneratorV1(el *etree.Element, mode patch.SynthMode) (patch.Generator, error) {
	switch mode {
	case patch.ModeSubtractive:
		return readSubtractiveV1(el)
	case patch.ModeRingMod:
		return readRingModV1(el)
	case patch.ModeFM:
		return readFMV1(el)
	default:
		return nil, &patch.UnsupportedSoundTypeError{}
	}
}

func readSubtractiveV1(el *etree.Element) (patch.Subtractive, error) {
	osc1El, err := xmlkit.RequiredChild(el, "osc1")
	if err != nil {
		return patch.Subtractive{}, err
	}
	osc2El, err := xmlkit.RequiredChild(el, "osc2")
	if err != nil {
		return patch.Subtractive{}, err
	}
	defaults := xmlkit.OptChild(el, "defaultParams")

	osc1, err := readWaveformOrSampleV1(osc1El, defaults, TwinA)
	if err != nil {
		return patch.Subtractive{}, err
	}
	osc2, err := readWaveformOrSampleV1(osc2El, defaults, TwinB)
	if err != nil {
		return patch.Subtractive{}, err
	}

	src := ChildTextSource{El: el}
	osc2Sync, _ := getOnOff(src, "oscillatorSync", values.Off)

	var dSrc ParamSource = src
	if defaults != nil {
		dSrc = ChildTextSource{El: defaults}
	}
	noiseVolume, _ := getHexU50(dSrc, "noiseVolume", values.NewHexU50(0))
	lpfModeStr := getString(src, "lpfMode", "24dB")
	lpfMode, err := patch.ParseLpfMode(lpfModeStr)
	if err != nil {
		lpfMode = patch.Lpf24dB
	}
	lpfFreq, _ := getHexU50(dSrc, "lpfFrequency", values.NewHexU50(50))
	lpfRes, _ := getHexU50(dSrc, "lpfResonance", values.NewHexU50(0))
	hpfFreq, _ := getHexU50(dSrc, "hpfFrequency", values.NewHexU50(0))
	hpfRes, _ := getHexU50(dSrc, "hpfResonance", values.NewHexU50(0))

	return patch.Subtractive{
		Osc1: osc1, Osc2: osc2, Osc2Sync: osc2Sync, NoiseVolume: noiseVolume,
		LpfMode: lpfMode, LpfFrequency: lpfFreq, LpfResonance: lpfRes,
		HpfFrequency: hpfFreq, HpfResonance: hpfRes,
	}, nil
}

func readRingModV1(el *etree.Element) (patch.RingMod, error) {
	osc1El, err := xmlkit.RequiredChild(el, "osc1")
	if err != nil {
		return patch.RingMod{}, err
	}
	osc2El, err := xmlkit.RequiredChild(el, "osc2")
	if err != nil {
		return patch.RingMod{}, err
	}
	defaults := xmlkit.OptChild(el, "defaultParams")

	osc1, err := readWaveformV1(osc1El, defaults, TwinA, "oscAVolume", "oscBVolume", "oscAPulseWidth", "oscBPulseWidth")
	if err != nil {
		return patch.RingMod{}, err
	}
	osc2, err := readWaveformV1(osc2El, defaults, TwinB, "oscAVolume", "oscBVolume", "oscAPulseWidth", "oscBPulseWidth")
	if err != nil {
		return patch.RingMod{}, err
	}
	src := ChildTextSource{El: el}
	osc2Sync, _ := getOnOff(src, "oscillatorSync", values.Off)
	var dSrc ParamSource = src
	if defaults != nil {
		dSrc = ChildTextSource{El: defaults}
	}
	noiseVolume, _ := getHexU50(dSrc, "noiseVolume", values.NewHexU50(0))
	return patch.RingMod{Osc1: osc1, Osc2: osc2, Osc2Sync: osc2Sync, NoiseVolume: noiseVolume}, nil
}

func readFMV1(el *etree.Element) (patch.FM, error) {
	carrier1El, err := xmlkit.RequiredChild(el, "osc1")
	if err != nil {
		return patch.FM{}, err
	}
	carrier2El, err := xmlkit.RequiredChild(el, "osc2")
	if err != nil {
		return patch.FM{}, err
	}
	mod1El, err := xmlkit.RequiredChild(el, "modulator1")
	if err != nil {
		return patch.FM{}, err
	}
	mod2El, err := xmlkit.RequiredChild(el, "modulator2")
	if err != nil {
		return patch.FM{}, err
	}
	defaults := xmlkit.OptChild(el, "defaultParams")

	carrier1, err := readWaveformV1(carrier1El, defaults, TwinA, "oscAVolume", "oscBVolume", "oscAPulseWidth", "oscBPulseWidth")
	if err != nil {
		return patch.FM{}, err
	}
	carrier2, err := readWaveformV1(carrier2El, defaults, TwinB, "oscAVolume", "oscBVolume", "oscAPulseWidth", "oscBPulseWidth")
	if err != nil {
		return patch.FM{}, err
	}
	mod1, err := readWaveformV1(mod1El, defaults, TwinA, "modulator1Amount", "modulator2Amount", "oscAPulseWidth", "oscBPulseWidth")
	if err != nil {
		return patch.FM{}, err
	}
	mod2, err := readWaveformV1(mod2El, defaults, TwinB, "modulator1Amount", "modulator2Amount", "oscAPulseWidth", "oscBPulseWidth")
	if err != nil {
		return patch.FM{}, err
	}

	src := ChildTextSource{El: el}
	mod2ToMod1, _ := getOnOff(src, "modulator2ToModulator1", values.Off)
	var dSrc ParamSource = src
	if defaults != nil {
		dSrc = ChildTextSource{El: defaults}
	}
	osc1Volume, _ := getHexU50(dSrc, "carrier1Feedback", values.NewHexU50(0))
	osc2Volume, _ := getHexU50(dSrc, "carrier2Feedback", values.NewHexU50(0))

	return patch.FM{
		Carrier1: carrier1, Carrier2: carrier2, Modulator1: mod1, Modulator2: mod2,
		Mod2ToMod1: mod2ToMod1, Osc1Volume: osc1Volume, Osc2Volume: osc2Volume,
	}, nil
}

func readWaveformOrSampleV1(el *etree.Element, defaults *etree.Element, sel TwinSelector) (patch.Oscillator, error) {
	typeStr, err := xmlkit.RequiredChildText(el, "type")
	if err != nil {
		return nil, err
	}
	if typeStr == "sample" {
		return readSampleOscillatorV1(el)
	}
	return readWaveformV1(el, defaults, sel, "oscAVolume", "oscBVolume", "oscAPulseWidth", "oscBPulseWidth")
}

func readWaveformV1(el *etree.Element, defaults *etree.Element, sel TwinSelector, volA, volB, pwA, pwB string) (patch.WaveformOscillator, error) {
	src := ChildTextSource{El: el}
	typeStr, err := xmlkit.RequiredChildText(el, "type")
	if err != nil {
		return patch.WaveformOscillator{}, err
	}
	oscType, err := patch.ParseOscType(typeStr)
	if err != nil {
		return patch.WaveformOscillator{}, err
	}
	transpose := getIntClamped(src, "transpose", 0, -96, 96)
	fineTranspose := getIntClamped(src, "cents", 0, -100, 100)
	retrig, _ := getRetrigPhase(src, "retrigPhase", values.RetrigOff)

	var dSrc ParamSource = src
	if defaults != nil {
		dSrc = ChildTextSource{El: defaults}
	}
	twin := DefaultParamsTwin{Selector: sel, Source: dSrc}
	pulseWidth, _ := twin.getHexU50(pwA, pwB, values.NewHexU50(25))
	volume, _ := twin.getHexU50(volA, volB, values.NewHexU50(25))

	return patch.WaveformOscillator{
		Type: oscType, Transpose: transpose, FineTranspose: fineTranspose,
		RetrigPhase: retrig, PulseWidth: pulseWidth, Volume: volume,
	}, nil
}

func readSampleOscillatorV1(el *etree.Element) (patch.SampleOscillator, error) {
	src := ChildTextSource{El: el}
	transpose := getIntClamped(src, "transpose", 0, -96, 96)
	fineTranspose := getIntClamped(src, "cents", 0, -100, 100)

	playMode := patch.PlayModeCut
	if loopMode, ok := src.Get("loopMode"); ok {
		if m, err := patch.ParseSamplePlayMode(loopMode); err == nil {
			playMode = m
		}
	}
	reversed, _ := getOnOff(src, "reversed", values.Off)
	pitchSpeed := patch.PitchSpeedLinked
	timeStretchOn, _ := getOnOff(src, "timeStretchEnable", values.Off)
	if bool(timeStretchOn) {
		pitchSpeed = patch.PitchSpeedIndependent
	}
	timeStretchAmount := getIntClamped(src, "timeStretchAmount", 0, -48, 48)
	linearInterp, _ := getOnOff(src, "linearInterpolation", values.On)

	sample, err := readSampleV1(el)
	if err != nil {
		return patch.SampleOscillator{}, err
	}

	return patch.SampleOscillator{
		Transpose: transpose, FineTranspose: fineTranspose, PlayMode: playMode,
		Reversed: reversed, PitchSpeed: pitchSpeed, TimeStretchAmount: timeStretchAmount,
		LinearInterp: linearInterp, Volume: values.NewHexU50(25), Sample: sample,
	}, nil
}

func readSampleV1(el *etree.Element) (patch.Sample, error) {
	if rangesEl := xmlkit.OptChild(el, "sampleRanges"); rangesEl != nil {
		entries := xmlkit.Children(rangesEl, "sampleRange")
		ranges := make([]patch.SampleRange, 0, len(entries))
		for _, r := range entries {
			src := ChildTextSource{El: r}
			transpose := getIntClamped(src, "transpose", 0, -96, 96)
			fineTranspose := getIntClamped(src, "cents", 0, -100, 100)
			path := getString(src, "fileName", "")
			var topNote *int
			if _, ok := src.Get("rangeTopNote"); ok {
				n := getIntClamped(src, "rangeTopNote", 0, -1<<30, 1<<30)
				topNote = &n
			}
			zone, err := readSampleZoneV1(r)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, patch.SampleRange{
				RangeTopNote: topNote, Transpose: transpose, FineTranspose: fineTranspose,
				Path: path, Zone: zone,
			})
		}
		return patch.SampleRangesSample{Ranges: ranges}, nil
	}

	path := getString(ChildTextSource{El: el}, "fileName", "")
	zone, err := readSampleZoneV1(el)
	if err != nil {
		return nil, err
	}
	return patch.OneZoneSample{Path: path, Zone: zone}, nil
}

// readSampleZoneV1 prefers the canonical frame-offset children; absent
// those, it falls back to the millisecond children and applies the
// (literal, buggy) millis-to-samples conversion.
func readSampleZoneV1(parent *etree.Element) (*patch.SampleZone, error) {
	zoneEl := xmlkit.OptChild(parent, "zone")
	if zoneEl == nil {
		return nil, nil
	}
	src := ChildTextSource{El: zoneEl}
	start, hasStart, err := getSamplePosition(src, "startSamplePos")
	if err != nil {
		return nil, err
	}
	end, hasEnd, err := getSamplePosition(src, "endSamplePos")
	if err != nil {
		return nil, err
	}
	if !hasStart {
		if millis, ok := getInt(src, "startMilliseconds", 0); ok {
			start = values.SamplePosition(values.MillisToSamples(int64(millis)))
		}
	}
	if !hasEnd {
		if millis, ok := getInt(src, "endMilliseconds", 0); ok {
			end = values.SamplePosition(values.MillisToSamples(int64(millis)))
		}
	}
	var startLoop, endLoop *values.SamplePosition
	if v, has, err := getSamplePosition(src, "startLoopPos"); err != nil {
		return nil, err
	} else if has {
		startLoop = &v
	}
	if v, has, err := getSamplePosition(src, "endLoopPos"); err != nil {
		return nil, err
	} else if has {
		endLoop = &v
	}
	return &patch.SampleZone{Start: start, End: end, StartLoop: startLoop, EndLoop: endLoop}, nil
}
