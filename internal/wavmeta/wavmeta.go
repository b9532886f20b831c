// Package wavmeta probes WAV files for the metadata a patch's sample
// references need: frame count, sample rate, bit depth, channel layout,
// duration, and any embedded cue points.
package wavmeta

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-audio/wav"
)

// CuePoint is one marker from a WAV file's "cue " chunk.
type CuePoint struct {
	ID           uint32
	SampleOffset uint32
}

// Info is everything a patch's sample zone needs to know about a WAV file
// on disk.
type Info struct {
	FrameCount int64
	SampleRate int64
	BitDepth   int
	Channels   int
	Format     string
	Duration   time.Duration
	CuePoints  []CuePoint
}

var cueChunkID = [4]byte{'c', 'u', 'e', ' '}

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 65534
)

// Probe opens path and reads its format header, PCM length, and any cue
// points. For non-PCM (compressed) formats, frame count is 0 and cue points
// are not read; sample rate and duration still come from the header.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return Info{}, fmt.Errorf("invalid WAV file")
	}
	d.ReadInfo()

	info := Info{
		BitDepth: int(d.BitDepth),
		Channels: int(d.NumChans),
		Format:   formatName(int(d.WavAudioFormat)),
	}

	if int(d.WavAudioFormat) != wavFormatPCM && int(d.WavAudioFormat) != wavFormatExtensible {
		dur, err := d.Duration()
		if err != nil {
			return Info{}, fmt.Errorf("duration (non-PCM): %w", err)
		}
		info.Duration = dur
		info.SampleRate = int64(d.SampleRate)
		return info, nil
	}

	if d.SampleRate == 0 {
		return Info{}, fmt.Errorf("invalid sample rate: 0")
	}
	bytesPerSample := int64(d.BitDepth) / 8
	if bytesPerSample <= 0 {
		return Info{}, fmt.Errorf("invalid bit depth: %d", d.BitDepth)
	}
	chans := int64(d.NumChans)
	if chans <= 0 {
		return Info{}, fmt.Errorf("invalid channel count: %d", d.NumChans)
	}

	if !d.WasPCMAccessed() && d.PCMChunk == nil {
		if err := d.FwdToPCM(); err != nil {
			return Info{}, fmt.Errorf("locate PCM: %w", err)
		}
	}

	totalBytes := d.PCMLen()
	if totalBytes <= 0 {
		return Info{}, fmt.Errorf("no PCM data")
	}

	frameSize := bytesPerSample * chans
	if frameSize == 0 {
		return Info{}, fmt.Errorf("invalid frame size")
	}

	info.FrameCount = totalBytes / frameSize
	info.SampleRate = int64(d.SampleRate)
	info.Duration = time.Duration(float64(info.FrameCount) / float64(d.SampleRate) * float64(time.Second))
	info.CuePoints = readCuePoints(d)

	return info, nil
}

func formatName(code int) string {
	switch code {
	case wavFormatPCM:
		return "pcm"
	case wavFormatExtensible:
		return "extensible"
	default:
		return fmt.Sprintf("compressed(%d)", code)
	}
}

// readCuePoints walks any remaining RIFF chunks looking for "cue ",
// ignoring (and draining) everything else. A missing cue chunk, or any
// parse failure, yields a nil slice rather than an error: cue points are
// best-effort metadata, not required for a sample to load.
func readCuePoints(d *wav.Decoder) []CuePoint {
	for {
		chunk, err := d.NextChunk()
		if err != nil {
			return nil
		}
		if chunk.ID != cueChunkID {
			chunk.Done()
			continue
		}
		data, err := io.ReadAll(chunk)
		if err != nil {
			return nil
		}
		return parseCueChunk(data)
	}
}

func parseCueChunk(data []byte) []CuePoint {
	if len(data) < 4 {
		return nil
	}
	count := binary.LittleEndian.Uint32(data[0:4])
	const entrySize = 24
	points := make([]CuePoint, 0, count)
	offset := 4
	for i := uint32(0); i < count && offset+entrySize <= len(data); i++ {
		id := binary.LittleEndian.Uint32(data[offset : offset+4])
		sampleOffset := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		points = append(points, CuePoint{ID: id, SampleOffset: sampleOffset})
		offset += entrySize
	}
	return points
}
