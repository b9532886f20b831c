// Package values implements the bespoke fixed-point scalar encodings used
// throughout Deluge patch XML: 0-50 linear scalars (hex and decimal wire
// forms), pan, retrigger phase, bounded integers, and the sidechain
// attack/release lookup tables.
package values

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexU50 is a 0..=50 scalar whose wire form is an 8-digit hex string
// encoding a reinterpreted signed 32-bit fraction.
type HexU50 struct {
	v uint8
}

// NewHexU50 constructs a HexU50 from a semantic value in 0..=50. Out-of-range
// values are a caller error and panic.
func NewHexU50(v int) HexU50 {
	if v < 0 || v > 50 {
		panic(fmt.Sprintf("values: HexU50 out of range: %d", v))
	}
	return HexU50{v: uint8(v)}
}

// Value returns the semantic 0..=50 value.
func (h HexU50) Value() int { return int(h.v) }

func hexU50Forward(v int) int32 {
	switch v {
	case 0:
		return math.MinInt32
	case 25:
		return 0
	case 50:
		return math.MaxInt32
	default:
		step := int64(math.MaxUint32) / 50
		return int32(int64(math.MinInt32) + step*int64(v))
	}
}

func hexU50Inverse(i int32) int {
	shifted := int64(i) - int64(math.MinInt32)
	scaled := float64(shifted) * 50 / float64(math.MaxUint32)
	return int(math.Round(scaled))
}

// String renders the canonical "0x%08X" wire form.
func (h HexU50) String() string {
	u := uint32(hexU50Forward(int(h.v)))
	return fmt.Sprintf("0x%08X", u)
}

// ParseHexU50 parses an "0x"-prefixed 8-digit hex wire string.
func ParseHexU50(s string) (HexU50, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	u64, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return HexU50{}, &ParseHexError{Input: s, Cause: err}
	}
	v := hexU50Inverse(int32(uint32(u64)))
	if v < 0 || v > 50 {
		return HexU50{}, &ParseHexError{Input: s}
	}
	return HexU50{v: uint8(v)}, nil
}

// DecU50 is the same 0..=50 linear map as HexU50, but its wire form is a
// signed 32-bit decimal integer instead of hex.
type DecU50 struct {
	v uint8
}

func NewDecU50(v int) DecU50 {
	if v < 0 || v > 50 {
		panic(fmt.Sprintf("values: DecU50 out of range: %d", v))
	}
	return DecU50{v: uint8(v)}
}

func (d DecU50) Value() int { return int(d.v) }

func (d DecU50) String() string {
	return fmt.Sprintf("%d", hexU50Forward(int(d.v)))
}

func ParseDecU50(s string) (DecU50, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return DecU50{}, &ParseIntError{Input: s, Cause: err}
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return DecU50{}, &ParseIntError{Input: s}
	}
	v := hexU50Inverse(int32(i))
	if v < 0 || v > 50 {
		return DecU50{}, &ParseIntError{Input: s}
	}
	return DecU50{v: uint8(v)}, nil
}
