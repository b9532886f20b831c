package values

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Pan is a -32..=+32 stereo position. The wire form is a hex-encoded
// reinterpreted i32 fraction: value * 2^26, saturating at +32.
type Pan struct {
	v int8
}

const panFactor = 1 << 26

func NewPan(v int) Pan {
	if v < -32 || v > 32 {
		panic("values: Pan out of range")
	}
	return Pan{v: int8(v)}
}

func (p Pan) Value() int { return int(p.v) }

func (p Pan) String() string {
	var raw int64 = int64(p.v) * panFactor
	if raw > math.MaxInt32 {
		raw = math.MaxInt32
	}
	if raw < math.MinInt32 {
		raw = math.MinInt32
	}
	return fmt.Sprintf("0x%08X", uint32(int32(raw)))
}

// ParsePan parses the hex wire form, rounding to the nearest integer pan.
func ParsePan(s string) (Pan, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	u64, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return Pan{}, &ParseHexError{Input: s, Cause: err}
	}
	i := int32(uint32(u64))
	v := int(math.Round(float64(i) / panFactor))
	if v < -32 {
		v = -32
	}
	if v > 32 {
		v = 32
	}
	return Pan{v: int8(v)}, nil
}
