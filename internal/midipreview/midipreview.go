// Package midipreview sends a single note-on/note-off pair to a host MIDI
// output port, letting a user audition which channel/note a kit's MidiRow is
// wired to without touching the actual Deluge hardware.
package midipreview

import (
	"fmt"
	"strings"
	"time"

	"github.com/schollz/deluge-patch/internal/patch"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// OpenPort resolves portName to a MIDI output, trying an exact match first
// and falling back to a substring match against the system's available
// output ports.
func OpenPort(portName string) (drivers.Out, error) {
	out, err := midi.FindOutPort(portName)
	if err == nil {
		return out, nil
	}
	outs := midi.GetOutPorts()
	for _, candidate := range outs {
		if strings.Contains(strings.ToLower(candidate.String()), strings.ToLower(portName)) {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("no MIDI output port matching %q", portName)
}

// PlayRow opens out, sends row's note-on, waits dur, then sends the
// matching note-off. Channel and note are taken directly from the row;
// no transposition or velocity curve is applied. Message bytes follow the
// same raw note-on/note-off encoding as the host's own MIDI device wrapper.
func PlayRow(out drivers.Out, row patch.MidiRow, dur time.Duration) error {
	if err := out.Open(); err != nil {
		return fmt.Errorf("opening MIDI output: %w", err)
	}

	channel := clampChannel(row.Channel)
	note := clampNote(row.Note)
	const velocity = 100

	if err := out.Send([]byte{0x90 | channel, note, velocity}); err != nil {
		return fmt.Errorf("sending note-on: %w", err)
	}
	time.Sleep(dur)
	if err := out.Send([]byte{0x80 | channel, note, 0}); err != nil {
		return fmt.Errorf("sending note-off: %w", err)
	}
	return nil
}

func clampChannel(channel int) uint8 {
	switch {
	case channel < 0:
		return 0
	case channel > 15:
		return 15
	default:
		return uint8(channel)
	}
}

func clampNote(note int) uint8 {
	switch {
	case note < 0:
		return 0
	case note > 127:
		return 127
	default:
		return uint8(note)
	}
}

var pitchClassNames = [12]string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}

// NoteName renders a MidiRow's note number (0-127) as a compact pitch class
// plus octave, e.g. "c-4" for middle C (MIDI note 60) or "f#1" for MIDI note
// 30. Octave numbering follows the Deluge convention where MIDI note 12 is
// C0. Out-of-range input (a MidiRow's note is a bare int, not validated at
// construction) renders as "---".
func NoteName(note int) string {
	if note < 0 || note > 127 {
		return "---"
	}
	octave := note/12 - 1
	pitchClass := pitchClassNames[note%12]
	if strings.Contains(pitchClass, "#") {
		if octave < 0 {
			return fmt.Sprintf("%s%d", pitchClass, -octave)
		}
		return fmt.Sprintf("%s%d", pitchClass, octave)
	}
	if octave < 0 {
		return fmt.Sprintf("%s-%d", pitchClass, -octave)
	}
	return fmt.Sprintf("%s-%d", pitchClass, octave)
}
