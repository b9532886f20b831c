package patchname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBaseNumberSuffix(t *testing.T) {
	n, err := Parse("KIT042b")
	assert.NoError(t, err)
	assert.Equal(t, "KIT", n.Base)
	assert.NotNil(t, n.Number)
	assert.Equal(t, 42, *n.Number)
	assert.Equal(t, "b", n.Suffix)
}

func TestParseBaseOnly(t *testing.T) {
	n, err := Parse("SYNTHS")
	assert.NoError(t, err)
	assert.Equal(t, "SYNTHS", n.Base)
	assert.Nil(t, n.Number)
	assert.Equal(t, "", n.Suffix)
}

func TestParseRejectsLeadingDigit(t *testing.T) {
	_, err := Parse("042KIT")
	assert.Error(t, err)
}

func TestFormatZeroPads(t *testing.T) {
	n := 7
	name := Name{Base: "SYNT", Number: &n}
	assert.Equal(t, "SYNT007", name.Format())
}

func TestFormatNoNumber(t *testing.T) {
	name := Name{Base: "README"}
	assert.Equal(t, "README", name.Format())
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"KIT001", "SYNT184", "KIT057b", "foo"} {
		n, err := Parse(s)
		assert.NoError(t, err)
		assert.Equal(t, s, n.Format())
	}
}
