package values

import "strconv"

func formatUint32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func parseUint32Dec(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &ParseIntError{Input: s, Cause: err}
	}
	return uint32(v), nil
}
