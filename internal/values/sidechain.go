package values

// attackTable and releaseTable are the 51-entry, strictly monotonically
// decreasing lookup tables used to encode sidechain attack/release as a
// table index.
var attackTable = [51]uint32{
	1048576, 887876, 751804, 636588, 539028, 456420, 386472, 327244, 277092, 234624,
	198668, 168220, 142440, 120612, 102128, 86476, 73224, 62000, 52500, 44452,
	37640, 31872, 26988, 22852, 19348, 16384, 13876, 11748, 9948, 8428,
	7132, 6040, 5112, 4328, 3668, 3104, 2628, 2224, 1884, 1596,
	1352, 1144, 968, 820, 696, 558, 496, 420, 356, 304,
	256,
}

var releaseTable = [51]uint32{
	261528, 38632, 19552, 13184, 9872, 7840, 6472, 5480, 4736, 4152,
	3680, 3296, 2976, 2704, 2472, 2264, 2088, 1928, 1792, 1664,
	1552, 1448, 1352, 1272, 1192, 1120, 1056, 992, 936, 880,
	832, 784, 744, 704, 664, 624, 592, 560, 528, 496,
	472, 448, 424, 400, 376, 352, 328, 312, 288, 272,
	256,
}

// AttackSidechain is an index 0..=50 into the attack micro-sample table.
type AttackSidechain struct{ idx uint8 }

func (a AttackSidechain) Index() int    { return int(a.idx) }
func (a AttackSidechain) MicroSamples() uint32 { return attackTable[a.idx] }

// AttackSidechainFromMicroSamples binary searches the table for v, exploiting
// its strict monotonic descent.
func AttackSidechainFromMicroSamples(v uint32) (AttackSidechain, error) {
	idx, ok := searchDescending(attackTable[:], v)
	if !ok {
		return AttackSidechain{}, &NotFoundInTableError{Value: v}
	}
	return AttackSidechain{idx: uint8(idx)}, nil
}

func (a AttackSidechain) String() string {
	return formatUint32(a.MicroSamples())
}

func ParseAttackSidechain(s string) (AttackSidechain, error) {
	v, err := parseUint32Dec(s)
	if err != nil {
		return AttackSidechain{}, err
	}
	return AttackSidechainFromMicroSamples(v)
}

// ReleaseSidechain is an index 0..=50 into the release micro-sample table.
type ReleaseSidechain struct{ idx uint8 }

func (r ReleaseSidechain) Index() int     { return int(r.idx) }
func (r ReleaseSidechain) MicroSamples() uint32 { return releaseTable[r.idx] }

func ReleaseSidechainFromMicroSamples(v uint32) (ReleaseSidechain, error) {
	idx, ok := searchDescending(releaseTable[:], v)
	if !ok {
		return ReleaseSidechain{}, &NotFoundInTableError{Value: v}
	}
	return ReleaseSidechain{idx: uint8(idx)}, nil
}

func (r ReleaseSidechain) String() string {
	return formatUint32(r.MicroSamples())
}

func ParseReleaseSidechain(s string) (ReleaseSidechain, error) {
	v, err := parseUint32Dec(s)
	if err != nil {
		return ReleaseSidechain{}, err
	}
	return ReleaseSidechainFromMicroSamples(v)
}

// searchDescending finds the index of v in a strictly-descending table.
func searchDescending(table []uint32, v uint32) (int, bool) {
	lo, hi := 0, len(table)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case table[mid] == v:
			return mid, true
		case table[mid] > v:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}
