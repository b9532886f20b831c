package serialization

import (
	"github.com/beevik/etree"
	"github.com/schollz/deluge-patch/internal/patch"
	"github.com/schollz/deluge-patch/internal/values"
	"github.com/schollz/deluge-patch/internal/xmlkit"
)

// WriteSynth builds a V3 document for s, stamping the current firmware
// constant onto both version attributes.
func WriteSynth(s patch.Synth) *etree.Document {
	doc := etree.NewDocument()
	soundEl := doc.CreateElement("sound")
	writeSound(soundEl, s.Sound)
	xmlkit.SetAttr(soundEl, "firmwareVersion", patch.CurrentFirmwareVersion)
	xmlkit.SetAttr(soundEl, "earliestCompatibleFirmware", patch.CurrentFirmwareVersion)
	return doc
}

// WriteKit builds a V3 document for k.
func WriteKit(k patch.Kit) *etree.Document {
	doc := etree.NewDocument()
	kitEl := doc.CreateElement("kit")
	xmlkit.SetAttr(kitEl, "lpfMode", k.LpfMode.String())
	xmlkit.SetAttr(kitEl, "currentFilterType", k.CurrentFilterType)

	delayEl := xmlkit.CreateChild(kitEl, "delay")
	writeGlobalDelay(AttrSink{El: delayEl}, k.Delay)

	compEl := xmlkit.CreateChild(kitEl, "compressor")
	writeSidechain(AttrSink{El: compEl}, k.Sidechain)

	sourcesEl := xmlkit.CreateChild(kitEl, "soundSources")
	for _, row := range k.Rows {
		writeRow(sourcesEl, row)
	}

	if k.SelectedDrumIndex != nil {
		idxEl := xmlkit.CreateChild(kitEl, "selectedDrumIndex")
		idxEl.SetText(values.SamplePosition(*k.SelectedDrumIndex).String())
	}

	defaults := etree.NewElement("defaultParams")
	dSink := AttrSink{El: defaults}
	setHexU50(dSink, "volume", k.Volume)
	setHexU50(dSink, "pan", k.Pan)
	setHexU50(dSink, "reverbAmount", k.ReverbAmount)
	setHexU50(dSink, "bitCrush", k.BitCrush)
	setHexU50(dSink, "sampleRateReduction", k.SampleRateReduction)
	setHexU50(dSink, "stutterRate", k.StutterRate)
	writeModulationFx(AttrSink{El: kitEl}, dSink, k.ModulationFx)

	lpfEl := xmlkit.CreateChild(defaults, "lpf")
	writeLpf(AttrSink{El: lpfEl}, k.Lpf)
	hpfEl := xmlkit.CreateChild(defaults, "hpf")
	writeHpf(AttrSink{El: hpfEl}, k.Hpf)
	eqEl := xmlkit.CreateChild(defaults, "equalizer")
	writeEqualizer(AttrSink{El: eqEl}, k.Equalizer)

	kitEl.AddChild(defaults)

	xmlkit.SetAttr(kitEl, "firmwareVersion", patch.CurrentFirmwareVersion)
	xmlkit.SetAttr(kitEl, "earliestCompatibleFirmware", patch.CurrentFirmwareVersion)

	return doc
}

func writeRow(parent *etree.Element, row patch.Row) {
	switch r := row.(type) {
	case patch.SoundRow:
		soundEl := xmlkit.CreateChild(parent, "sound")
		writeSound(soundEl, r.Sound)
		xmlkit.SetAttr(soundEl, "name", r.DisplayName)
	case patch.MidiRow:
		el := xmlkit.CreateChild(parent, "midiOutput")
		setInt(AttrSink{El: el}, "channel", r.Channel)
		setInt(AttrSink{El: el}, "note", r.Note)
	case patch.CvGateRow:
		el := xmlkit.CreateChild(parent, "gateOutput")
		setInt(AttrSink{El: el}, "channel", r.Channel)
	}
}

func writeSound(el *etree.Element, s patch.Sound) {
	xmlkit.SetAttr(el, "mode", s.Mode.String())
	xmlkit.SetAttr(el, "polyphonic", s.Polyphony.String())
	xmlkit.SetAttr(el, "voicePriority", s.Priority.String())
	if s.SidechainSend != nil {
		xmlkit.SetAttr(el, "sideChainSend", s.SidechainSend.String())
	}

	defaults := etree.NewElement("defaultParams")
	dSink := AttrSink{El: defaults}

	writeGenerator(el, defaults, s.Generator)

	unisonEl := xmlkit.CreateChild(el, "unison")
	writeUnison(AttrSink{El: unisonEl}, s.Unison)

	lfo1El := xmlkit.CreateChild(el, "lfo1")
	writeLfo1(AttrSink{El: lfo1El}, s.Lfo1)
	lfo2El := xmlkit.CreateChild(el, "lfo2")
	writeLfo2(AttrSink{El: lfo2El}, s.Lfo2)

	arpEl := xmlkit.CreateChild(el, "arpeggiator")
	writeArpeggiator(AttrSink{El: arpEl}, s.Arpeggiator)

	delayEl := xmlkit.CreateChild(el, "delay")
	writeDelay(AttrSink{El: delayEl}, s.Delay)

	compEl := xmlkit.CreateChild(el, "compressor")
	writeSidechain(AttrSink{El: compEl}, s.Sidechain)

	writeModKnobs(el, s.ModKnobs)

	setHexU50(dSink, "volume", s.Volume)
	setHexU50(dSink, "pan", s.Pan)
	setHexU50(dSink, "portamento", s.Portamento)
	setHexU50(dSink, "reverbAmount", s.ReverbAmount)
	setHexU50(dSink, "stutterRate", s.StutterRate)
	writeDistortion(dSink, s.Distortion)
	writeModulationFx(AttrSink{El: el}, dSink, s.ModulationFx)
	writeEqualizer(dSink, s.Equalizer)

	env1El := xmlkit.CreateChild(defaults, "envelope1")
	writeEnvelope(AttrSink{El: env1El}, s.Envelope1)
	env2El := xmlkit.CreateChild(defaults, "envelope2")
	writeEnvelope(AttrSink{El: env2El}, s.Envelope2)

	writePatchCables(defaults, s.PatchCables)

	el.AddChild(defaults)

	xmlkit.SetAttr(el, "firmwareVersion", patch.CurrentFirmwareVersion)
	xmlkit.SetAttr(el, "earliestCompatibleFirmware", patch.CurrentFirmwareVersion)
}

func writeGenerator(el, defaults *etree.Element, gen patch.Generator) {
	dSink := AttrSink{El: defaults}
	switch g := gen.(type) {
	case patch.Subtractive:
		osc1El := xmlkit.CreateChild(el, "osc1")
		writeOscillator(osc1El, defaults, TwinA, g.Osc1, "oscAVolume", "oscBVolume", "oscAPulseWidth", "oscBPulseWidth")
		osc2El := xmlkit.CreateChild(el, "osc2")
		writeOscillator(osc2El, defaults, TwinB, g.Osc2, "oscAVolume", "oscBVolume", "oscAPulseWidth", "oscBPulseWidth")
		setOnOff(AttrSink{El: el}, "oscillatorSync", g.Osc2Sync)
		setHexU50(dSink, "noiseVolume", g.NoiseVolume)
		xmlkit.SetAttr(el, "lpfMode", g.LpfMode.String())
		setHexU50(dSink, "lpfFrequency", g.LpfFrequency)
		setHexU50(dSink, "lpfResonance", g.LpfResonance)
		setHexU50(dSink, "hpfFrequency", g.HpfFrequency)
		setHexU50(dSink, "hpfResonance", g.HpfResonance)
	case patch.RingMod:
		osc1El := xmlkit.CreateChild(el, "osc1")
		writeWaveform(osc1El, defaults, TwinA, g.Osc1, "oscAVolume", "oscBVolume", "oscAPulseWidth", "oscBPulseWidth")
		osc2El := xmlkit.CreateChild(el, "osc2")
		writeWaveform(osc2El, defaults, TwinB, g.Osc2, "oscAVolume", "oscBVolume", "oscAPulseWidth", "oscBPulseWidth")
		setOnOff(AttrSink{El: el}, "oscillatorSync", g.Osc2Sync)
		setHexU50(dSink, "noiseVolume", g.NoiseVolume)
	case patch.FM:
		c1El := xmlkit.CreateChild(el, "osc1")
		writeWaveform(c1El, defaults, TwinA, g.Carrier1, "oscAVolume", "oscBVolume", "oscAPulseWidth", "oscBPulseWidth")
		c2El := xmlkit.CreateChild(el, "osc2")
		writeWaveform(c2El, defaults, TwinB, g.Carrier2, "oscAVolume", "oscBVolume", "oscAPulseWidth", "oscBPulseWidth")
		m1El := xmlkit.CreateChild(el, "modulator1")
		writeWaveform(m1El, defaults, TwinA, g.Modulator1, "modulator1Amount", "modulator2Amount", "oscAPulseWidth", "oscBPulseWidth")
		m2El := xmlkit.CreateChild(el, "modulator2")
		writeWaveform(m2El, defaults, TwinB, g.Modulator2, "modulator1Amount", "modulator2Amount", "oscAPulseWidth", "oscBPulseWidth")
		setOnOff(AttrSink{El: el}, "modulator2ToModulator1", g.Mod2ToMod1)
		setHexU50(dSink, "carrier1Feedback", g.Osc1Volume)
		setHexU50(dSink, "carrier2Feedback", g.Osc2Volume)
	}
}

func writeOscillator(el, defaults *etree.Element, sel TwinSelector, osc patch.Oscillator, volA, volB, pwA, pwB string) {
	switch o := osc.(type) {
	case patch.WaveformOscillator:
		writeWaveform(el, defaults, sel, o, volA, volB, pwA, pwB)
	case patch.SampleOscillator:
		writeSampleOscillator(el, o)
	}
}

func writeWaveform(el, defaults *etree.Element, sel TwinSelector, o patch.WaveformOscillator, volA, volB, pwA, pwB string) {
	xmlkit.SetAttr(el, "type", o.Type.String())
	setInt(AttrSink{El: el}, "transpose", o.Transpose)
	setInt(AttrSink{El: el}, "cents", o.FineTranspose)
	setRetrigPhase(AttrSink{El: el}, "retrigPhase", o.RetrigPhase)

	twin := DefaultParamsTwinMut{Selector: sel, Sink: AttrSink{El: defaults}}
	twin.setHexU50(pwA, pwB, o.PulseWidth)
	twin.setHexU50(volA, volB, o.Volume)
}

func writeSampleOscillator(el *etree.Element, o patch.SampleOscillator) {
	xmlkit.SetAttr(el, "type", "sample")
	setInt(AttrSink{El: el}, "transpose", o.Transpose)
	setInt(AttrSink{El: el}, "cents", o.FineTranspose)
	setOnOff(AttrSink{El: el}, "reversed", o.Reversed)
	xmlkit.SetAttr(el, "loopMode", o.PlayMode.String())
	setOnOff(AttrSink{El: el}, "timeStretchEnable", values.OnOff(o.PitchSpeed == patch.PitchSpeedIndependent))
	setInt(AttrSink{El: el}, "timeStretchAmount", o.TimeStretchAmount)
	setOnOff(AttrSink{El: el}, "linearInterpolation", o.LinearInterp)
	writeSample(el, o.Sample)
}

func writeSample(el *etree.Element, sample patch.Sample) {
	switch s := sample.(type) {
	case patch.OneZoneSample:
		xmlkit.SetAttr(el, "fileName", s.Path)
		writeSampleZone(el, s.Zone)
	case patch.SampleRangesSample:
		rangesEl := xmlkit.CreateChild(el, "sampleRanges")
		for _, r := range s.Ranges {
			rEl := xmlkit.CreateChild(rangesEl, "sampleRange")
			xmlkit.SetAttr(rEl, "fileName", r.Path)
			setInt(AttrSink{El: rEl}, "transpose", r.Transpose)
			setInt(AttrSink{El: rEl}, "cents", r.FineTranspose)
			if r.RangeTopNote != nil {
				setInt(AttrSink{El: rEl}, "rangeTopNote", *r.RangeTopNote)
			}
			writeSampleZone(rEl, r.Zone)
		}
	}
}

func writeSampleZone(parent *etree.Element, zone *patch.SampleZone) {
	if zone == nil {
		return
	}
	zoneEl := xmlkit.CreateChild(parent, "zone")
	setSamplePosition(AttrSink{El: zoneEl}, "startSamplePos", zone.Start)
	setSamplePosition(AttrSink{El: zoneEl}, "endSamplePos", zone.End)
	if zone.StartLoop != nil {
		setSamplePosition(AttrSink{El: zoneEl}, "startLoopPos", *zone.StartLoop)
	}
	if zone.EndLoop != nil {
		setSamplePosition(AttrSink{El: zoneEl}, "endLoopPos", *zone.EndLoop)
	}
}
