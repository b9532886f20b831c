package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexU50RoundTrip(t *testing.T) {
	tests := []struct {
		value int
		wire  string
	}{
		{0, "0x80000000"},
		{1, "0x851EB851"},
		{2, "0x8A3D70A2"},
		{18, "0xDC28F5B2"},
		{24, "0xFAE14798"},
		{25, "0x00000000"},
		{26, "0x051EB83A"},
		{40, "0x4CCCCCA8"},
		{49, "0x7AE14781"},
		{50, "0x7FFFFFFF"},
	}
	for _, tt := range tests {
		h := NewHexU50(tt.value)
		assert.Equal(t, tt.wire, h.String())

		parsed, err := ParseHexU50(tt.wire)
		assert.NoError(t, err)
		assert.Equal(t, tt.value, parsed.Value())
	}
}

func TestHexU50ParseRejectsMalformedInput(t *testing.T) {
	_, err := ParseHexU50("not-hex")
	assert.Error(t, err)
}

func TestPanRoundTrip(t *testing.T) {
	tests := []struct {
		value int
		wire  string
	}{
		{-32, "0x80000000"},
		{-1, "0xFC000000"},
		{0, "0x00000000"},
		{1, "0x04000000"},
		{31, "0x7C000000"},
		{32, "0x7FFFFFFF"},
	}
	for _, tt := range tests {
		p := NewPan(tt.value)
		assert.Equal(t, tt.wire, p.String())

		parsed, err := ParsePan(tt.wire)
		assert.NoError(t, err)
		assert.Equal(t, tt.value, parsed.Value())
	}
}

func TestRetrigPhase(t *testing.T) {
	assert.Equal(t, "-1", RetrigOff.String())
	assert.Equal(t, "0", Degrees(0).String())
	assert.Equal(t, "11930464", Degrees(1).String())
	assert.Equal(t, "2147483520", Degrees(180).String())
	assert.Equal(t, "-256", Degrees(360).String())
	assert.Equal(t, "-11930720", Degrees(359).String())

	assert.Equal(t, 0, NewRetrigPhase(720).Degree())
	assert.Equal(t, 1, NewRetrigPhase(361).Degree())
	assert.Equal(t, 360, NewRetrigPhase(360).Degree())
}

func TestRetrigPhaseParseRoundTrip(t *testing.T) {
	for _, d := range []int{0, 1, 10, 47, 179, 180, 181, 359, 360} {
		wire := Degrees(d).String()
		parsed, err := ParseRetrigPhase(wire)
		assert.NoError(t, err)
		assert.False(t, parsed.IsOff())
		assert.Equal(t, d, parsed.Degree())
	}

	off, err := ParseRetrigPhase("-1")
	assert.NoError(t, err)
	assert.True(t, off.IsOff())
}

func TestAttackSidechainFromMicroSamples(t *testing.T) {
	tests := []struct {
		micro uint32
		index int
	}{
		{1048576, 0},
		{539028, 4},
		{327244, 7},
		{256, 50},
	}
	for _, tt := range tests {
		a, err := AttackSidechainFromMicroSamples(tt.micro)
		assert.NoError(t, err)
		assert.Equal(t, tt.index, a.Index())
	}

	_, err := AttackSidechainFromMicroSamples(1)
	assert.Error(t, err)
}

func TestReleaseSidechainFromMicroSamples(t *testing.T) {
	r, err := ReleaseSidechainFromMicroSamples(936)
	assert.NoError(t, err)
	assert.Equal(t, 28, r.Index())

	r, err = ReleaseSidechainFromMicroSamples(256)
	assert.NoError(t, err)
	assert.Equal(t, 50, r.Index())
}

func TestOnOff(t *testing.T) {
	on, err := ParseOnOff("1")
	assert.NoError(t, err)
	assert.True(t, bool(on))

	off, err := ParseOnOff("0")
	assert.NoError(t, err)
	assert.False(t, bool(off))

	any, err := ParseOnOff("42")
	assert.NoError(t, err)
	assert.True(t, bool(any))
}

func TestMillisToSamplesPreservesLiteralFormula(t *testing.T) {
	// Deliberately preserves the divide-by-44100-then-1000 formula rather
	// than the physically correct conversion, for V1/V2 read compatibility.
	assert.Equal(t, int64(0), MillisToSamples(1000))
	assert.Equal(t, int64(1), MillisToSamples(44100*1000))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 96, Clamp(200, -96, 96))
	assert.Equal(t, -96, Clamp(-200, -96, 96))
	assert.Equal(t, 10, Clamp(10, -96, 96))
}

func TestBoundedParse(t *testing.T) {
	b, err := ParseBounded("10", 0, 16)
	assert.NoError(t, err)
	assert.Equal(t, 10, b.Value())

	_, err = ParseBounded("17", 0, 16)
	assert.Error(t, err)

	_, err = ParseBounded("-1", 0, 16)
	assert.Error(t, err)
}
