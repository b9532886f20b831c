package values

import (
	"strconv"
)

// RetrigPhase is either Off or a degree angle, wrapping through a scaled
// i32 on the wire. Note RetrigPhase(0) is distinct from Off.
type RetrigPhase struct {
	off    bool
	degree uint16
}

const retrigPhaseFactor = 11_930_464

// RetrigOff is the "no retrigger phase" sentinel.
var RetrigOff = RetrigPhase{off: true}

// Degrees constructs a raw RetrigPhase carrying d unnormalized.
func Degrees(d int) RetrigPhase {
	return RetrigPhase{degree: uint16(d)}
}

// NewRetrigPhase normalizes d: values of 360 or less are left untouched
// (360 is a legal, distinct-from-Off degree value); only values strictly
// greater than 360 are folded down to their value mod 360.
func NewRetrigPhase(d int) RetrigPhase {
	if d > 360 {
		d %= 360
	}
	return Degrees(d)
}

func (r RetrigPhase) IsOff() bool { return r.off }

// Degree returns the raw degree value; undefined (0) when IsOff.
func (r RetrigPhase) Degree() int { return int(r.degree) }

func (r RetrigPhase) String() string {
	if r.off {
		return "-1"
	}
	wrapped := int32(uint32(r.degree) * retrigPhaseFactor)
	return strconv.FormatInt(int64(wrapped), 10)
}

// ParseRetrigPhase parses the signed decimal wire form. No modulo is
// applied on read: the division is exact for any value this codec itself
// produced.
func ParseRetrigPhase(s string) (RetrigPhase, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return RetrigPhase{}, &ParseIntError{Input: s, Cause: err}
	}
	if i == -1 {
		return RetrigOff, nil
	}
	if i < -2147483648 || i > 2147483647 {
		return RetrigPhase{}, &ParseIntError{Input: s}
	}
	u := uint32(int32(i))
	deg := u / retrigPhaseFactor
	return RetrigPhase{degree: uint16(deg)}, nil
}

// RetrigFromOscillatorReset translates the legacy V1 oscillatorReset on/off
// flag into a RetrigPhase, per the original reader's
// load_oscillator_reset_* family.
func RetrigFromOscillatorReset(on bool) RetrigPhase {
	if on {
		return Degrees(0)
	}
	return RetrigOff
}
