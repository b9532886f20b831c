package wavmeta

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPCMWav assembles a minimal mono 16-bit PCM WAV file in memory, with
// numFrames silent frames and an optional cue chunk.
func buildPCMWav(t *testing.T, sampleRate uint32, numFrames int, cues []CuePoint) []byte {
	t.Helper()
	const bitsPerSample = 16
	const numChans = 1
	byteRate := sampleRate * numChans * bitsPerSample / 8
	blockAlign := uint16(numChans * bitsPerSample / 8)
	dataSize := uint32(numFrames) * uint32(blockAlign)

	var buf []byte
	put := func(b []byte) { buf = append(buf, b...) }
	putU32 := func(v uint32) {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, v)
		put(b)
	}
	putU16 := func(v uint16) {
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, v)
		put(b)
	}

	var cueChunkBuf []byte
	if len(cues) > 0 {
		cb := make([]byte, 4)
		binary.LittleEndian.PutUint32(cb, uint32(len(cues)))
		for _, c := range cues {
			entry := make([]byte, 24)
			binary.LittleEndian.PutUint32(entry[0:4], c.ID)
			binary.LittleEndian.PutUint32(entry[4:8], 0)
			copy(entry[8:12], "data")
			binary.LittleEndian.PutUint32(entry[12:16], 0)
			binary.LittleEndian.PutUint32(entry[16:20], 0)
			binary.LittleEndian.PutUint32(entry[20:24], c.SampleOffset)
			cb = append(cb, entry...)
		}
		cueChunkBuf = cb
	}

	riffSize := 4 + (8 + 16) + (8 + dataSize)
	if len(cueChunkBuf) > 0 {
		riffSize += uint32(8 + len(cueChunkBuf))
	}

	put([]byte("RIFF"))
	putU32(riffSize)
	put([]byte("WAVE"))

	put([]byte("fmt "))
	putU32(16)
	putU16(1) // PCM
	putU16(numChans)
	putU32(sampleRate)
	putU32(byteRate)
	putU16(blockAlign)
	putU16(bitsPerSample)

	if len(cueChunkBuf) > 0 {
		put([]byte("cue "))
		putU32(uint32(len(cueChunkBuf)))
		put(cueChunkBuf)
	}

	put([]byte("data"))
	putU32(dataSize)
	put(make([]byte, dataSize))

	return buf
}

func writeTempWav(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.wav")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestProbePCM(t *testing.T) {
	data := buildPCMWav(t, 44100, 1000, nil)
	path := writeTempWav(t, data)

	info, err := Probe(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), info.FrameCount)
	assert.Equal(t, int64(44100), info.SampleRate)
	assert.Equal(t, 16, info.BitDepth)
	assert.Equal(t, 1, info.Channels)
	assert.Equal(t, "pcm", info.Format)
	assert.Nil(t, info.CuePoints)
}

func TestProbeCuePoints(t *testing.T) {
	cues := []CuePoint{{ID: 1, SampleOffset: 0}, {ID: 2, SampleOffset: 500}}
	data := buildPCMWav(t, 44100, 1000, cues)
	path := writeTempWav(t, data)

	info, err := Probe(path)
	require.NoError(t, err)
	require.Len(t, info.CuePoints, 2)
	assert.Equal(t, uint32(1), info.CuePoints[0].ID)
	assert.Equal(t, uint32(500), info.CuePoints[1].SampleOffset)
}

func TestProbeInvalidFile(t *testing.T) {
	path := writeTempWav(t, []byte("not a wav file"))
	_, err := Probe(path)
	assert.Error(t, err)
}

func TestProbeMissingFile(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}
