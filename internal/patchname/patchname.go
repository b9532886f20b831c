// Package patchname parses and formats the standard patch filename grammar:
// a leading letter run, an optional numeric run, and an optional trailing
// letter suffix, e.g. "KIT042b" -> {"KIT", 42, "b"}.
package patchname

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Name is a parsed patch filename stem (no extension).
type Name struct {
	Base   string
	Number *int
	Suffix string
}

// Parse reads ALPHA (DIGIT+)? (ALPHA)?, greedily left to right. It does not
// require the whole input to be consumed by any one run, but it does require
// at least one leading letter.
func Parse(s string) (Name, error) {
	runes := []rune(s)
	i := 0

	start := i
	for i < len(runes) && unicode.IsLetter(runes[i]) {
		i++
	}
	if i == start {
		return Name{}, fmt.Errorf("patchname: %q does not start with a letter", s)
	}
	base := string(runes[start:i])

	var number *int
	digitStart := i
	for i < len(runes) && unicode.IsDigit(runes[i]) {
		i++
	}
	if i > digitStart {
		n, err := strconv.Atoi(string(runes[digitStart:i]))
		if err != nil {
			return Name{}, fmt.Errorf("patchname: %q has an unparseable number: %w", s, err)
		}
		number = &n
	}

	suffixStart := i
	for i < len(runes) && unicode.IsLetter(runes[i]) {
		i++
	}
	suffix := string(runes[suffixStart:i])

	return Name{Base: base, Number: number, Suffix: suffix}, nil
}

// Format reassembles a Name, zero-padding the number to 3 digits when
// present.
func (n Name) Format() string {
	var b strings.Builder
	b.WriteString(n.Base)
	if n.Number != nil {
		fmt.Fprintf(&b, "%03d", *n.Number)
	}
	b.WriteString(n.Suffix)
	return b.String()
}
