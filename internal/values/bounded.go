package values

import "strconv"

// Bounded is a generic bounded integer scalar with a fixed [min,max] range.
// Construction out of range panics, since that is a caller error; ParseBounded
// rejects out-of-range wire values with a descriptive error instead.
type Bounded struct {
	v        int
	min, max int
}

// NewBounded constructs a value within [min,max], panicking otherwise.
func NewBounded(v, min, max int) Bounded {
	if v < min || v > max {
		panic("values: Bounded value out of range")
	}
	return Bounded{v: v, min: min, max: max}
}

// DefaultBounded constructs a Bounded holding def, used where the default
// itself is the only value needed. Like NewBounded, it panics if def is
// outside [min,max].
func DefaultBounded(def, min, max int) Bounded {
	return NewBounded(def, min, max)
}

func (b Bounded) Value() int { return b.v }

func (b Bounded) String() string { return strconv.Itoa(b.v) }

// ParseBounded parses a decimal wire value into [min,max].
func ParseBounded(s string, min, max int) (Bounded, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return Bounded{}, &ParseIntError{Input: s, Cause: err}
	}
	if i < min {
		return Bounded{}, &UnderflowError{Value: i, Limit: min}
	}
	if i > max {
		return Bounded{}, &OverflowError{Value: i, Limit: max}
	}
	return Bounded{v: i, min: min, max: max}, nil
}

// Clamp saturates v into [min,max], used by smart constructors that the
// spec documents as "clamped on construction" (Transpose, FineTranspose,
// TimeStretchAmount, UnisonDetune, voice/octave counts, ClippingAmount)
// rather than erroring.
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// TableIndex is a 0..=50 index into a sidechain lookup table.
type TableIndex struct{ idx uint8 }

func NewTableIndex(i int) TableIndex {
	if i < 0 || i > 50 {
		panic("values: TableIndex out of range")
	}
	return TableIndex{idx: uint8(i)}
}

func (t TableIndex) Value() int { return int(t.idx) }

func AttackSidechainFromIndex(t TableIndex) AttackSidechain {
	return AttackSidechain{idx: t.idx}
}

func ReleaseSidechainFromIndex(t TableIndex) ReleaseSidechain {
	return ReleaseSidechain{idx: t.idx}
}
