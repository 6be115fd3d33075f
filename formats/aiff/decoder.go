// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wav2h/audio"
)

// aiffReader is the part of aiff.Decoder the source reads from.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// defaultChunk is the sample count reported before the first read.
const defaultChunk = 4096

// source streams big-endian integer samples out of an AIFF SSND chunk.
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64
	ints       *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Frames() int64   { return s.frames }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.ints == nil {
		return defaultChunk
	}
	return cap(s.ints.Data)
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	s.grow(len(dst))

	n, err := s.dec.PCMBuffer(s.ints)
	switch {
	case n == 0 && err == nil:
		return 0, io.EOF
	case n == 0:
		return 0, err
	}

	scale := fullScale(s.bitDepth)
	for i, v := range s.ints.Data[:n] {
		dst[i] = float32(float64(v) / scale)
	}

	// a short read without an error marks the end of the chunk
	if err == nil && n < len(dst) {
		err = io.EOF
	}
	return n, err
}

// grow sizes the integer scratch buffer to exactly size samples.
func (s *source) grow(size int) {
	if s.ints != nil && cap(s.ints.Data) >= size {
		s.ints.Data = s.ints.Data[:size]
		return
	}
	s.ints = &goaudio.IntBuffer{
		Data:   make([]int, size),
		Format: s.dec.Format(),
	}
}

// fullScale is the magnitude of the most negative sample at bitDepth.
// Unknown depths are treated as 16-bit.
func fullScale(bitDepth int) float64 {
	switch bitDepth {
	case 8, 24, 32:
		return float64(uint64(1) << (bitDepth - 1))
	default:
		return 1 << 15
	}
}

// Decoder decodes AIFF files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
		frames:     int64(dec.NumSampleFrames),
	}, nil
}
