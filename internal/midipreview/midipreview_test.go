package midipreview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampChannelStaysWithinMidiRange(t *testing.T) {
	assert.Equal(t, uint8(0), clampChannel(-1))
	assert.Equal(t, uint8(0), clampChannel(0))
	assert.Equal(t, uint8(15), clampChannel(15))
	assert.Equal(t, uint8(15), clampChannel(16))
}

func TestClampNoteStaysWithinMidiRange(t *testing.T) {
	assert.Equal(t, uint8(0), clampNote(-1))
	assert.Equal(t, uint8(60), clampNote(60))
	assert.Equal(t, uint8(127), clampNote(127))
	assert.Equal(t, uint8(127), clampNote(200))
}

func TestNoteNameRendersPitchClassAndOctave(t *testing.T) {
	cases := map[int]string{
		60:  "c-4",
		61:  "c#4",
		21:  "a-0",
		0:   "c-1",
		12:  "c-0",
		127: "g-9",
		1:   "c#1",
	}
	for note, want := range cases {
		assert.Equal(t, want, NoteName(note), "note %d", note)
	}
}

func TestNoteNameIsAlwaysThreeCharsInRange(t *testing.T) {
	for note := 0; note <= 127; note++ {
		assert.Len(t, NoteName(note), 3, "note %d", note)
	}
}

func TestNoteNameRejectsOutOfRangeInput(t *testing.T) {
	assert.Equal(t, "---", NoteName(-1))
	assert.Equal(t, "---", NoteName(128))
}
