package samplepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteReplacesMatchingFileName(t *testing.T) {
	src := []byte(`<sample fileName="unused"><fileName>SAMPLES/kick.wav</fileName></sample>`)
	out, err := Rewrite(src, map[string]string{"SAMPLES/kick.wav": "SAMPLES/kick2.wav"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<fileName>SAMPLES/kick2.wav</fileName>")
	assert.Contains(t, string(out), `fileName="unused"`)
}

func TestRewriteLeavesUnmappedTextAlone(t *testing.T) {
	src := []byte(`<sample><fileName>SAMPLES/snare.wav</fileName></sample>`)
	out, err := Rewrite(src, map[string]string{"SAMPLES/kick.wav": "SAMPLES/kick2.wav"})
	require.NoError(t, err)
	assert.Equal(t, string(src), string(out))
}

func TestRewriteIgnoresTextOutsideFileNameElements(t *testing.T) {
	src := []byte(`<sample><other>SAMPLES/kick.wav</other></sample>`)
	out, err := Rewrite(src, map[string]string{"SAMPLES/kick.wav": "SAMPLES/kick2.wav"})
	require.NoError(t, err)
	assert.Equal(t, string(src), string(out))
}

func TestRewriteMultipleOccurrences(t *testing.T) {
	src := []byte(`<a><fileName>x.wav</fileName></a><b><fileName>x.wav</fileName></b>`)
	out, err := Rewrite(src, map[string]string{"x.wav": "y.wav"})
	require.NoError(t, err)
	assert.Equal(t, `<a><fileName>y.wav</fileName></a><b><fileName>y.wav</fileName></b>`, string(out))
}
