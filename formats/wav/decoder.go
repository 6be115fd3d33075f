// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	"github.com/go-audio/wav"
	"github.com/ik5/wav2h/audio"
)

const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE

	// extensibleFmtSize is the fmt chunk size of WAVE_FORMAT_EXTENSIBLE,
	// with the SubFormat GUID in its last 16 bytes.
	extensibleFmtSize = 40
)

// subFormatTail is what every KSDATAFORMAT_SUBTYPE GUID shares after its
// leading format code.
var subFormatTail = []byte{
	0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
	0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
}

// sampleFunc turns one little-endian sample into a float32 in [-1,1].
type sampleFunc func(b []byte) float32

type source struct {
	r              io.Reader
	sampleRate     int
	channels       int
	bytesPerSample int
	frames         int64
	decode         sampleFunc
	buf            []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Frames() int64   { return s.frames }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / s.bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Only whole frames are handed out
	frameBytes := s.channels * s.bytesPerSample
	want := (len(dst) / s.channels) * frameBytes
	if want == 0 {
		return 0, audio.ErrPartialFrame
	}
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("reading wav samples: %w", err)
	}

	// a trailing partial frame is dropped
	n -= n % frameBytes
	samples := n / s.bytesPerSample
	for i := range samples {
		off := i * s.bytesPerSample
		dst[i] = s.decode(s.buf[off : off+s.bytesPerSample])
	}

	if err != nil {
		return samples, io.EOF
	}

	return samples, nil
}

// Decoder decodes PCM and IEEE-float WAV files, including their
// WAVE_FORMAT_EXTENSIBLE variants.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.NumChans < 1 {
		return nil, ErrNotWavFile
	}

	format := dec.WavAudioFormat
	if format == formatExtensible {
		var err error
		if format, err = extensibleFormat(rs); err != nil {
			return nil, err
		}
	}

	decode, err := sampleDecoder(format, int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrNoPCMData
	}

	channels := int(dec.NumChans)
	bytesPerSample := int(dec.BitDepth) / 8
	frames := dec.PCMLen() / int64(channels*bytesPerSample)

	return &source{
		r:              pcmReader(dec.PCMChunk, dec.PCMLen()),
		sampleRate:     int(dec.SampleRate),
		channels:       channels,
		bytesPerSample: bytesPerSample,
		frames:         frames,
		decode:         decode,
		buf:            make([]byte, 0, 4096*bytesPerSample),
	}, nil
}

// pcmReader bounds reads to the data chunk so trailing chunks are never
// mistaken for samples.
func pcmReader(chunk *riff.Chunk, size int64) io.Reader {
	return io.LimitReader(chunk.R, size)
}

// extensibleFormat reads the SubFormat GUID that go-audio skips over and
// returns the format code it carries. The read position of rs is restored.
func extensibleFormat(rs io.ReadSeeker) (uint16, error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("locating fmt chunk: %w", err)
	}
	defer rs.Seek(pos, io.SeekStart)

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("locating fmt chunk: %w", err)
	}

	p := riff.New(rs)
	if _, _, err := p.IDnSize(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	// form type, already checked by go-audio
	if _, err := io.CopyN(io.Discard, rs, 4); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	for {
		chunk, err := p.NextChunk()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		if chunk.ID != riff.FmtID {
			chunk.Drain()
			continue
		}

		if chunk.Size < extensibleFmtSize {
			return 0, fmt.Errorf("%w: extensible fmt chunk of %d bytes",
				ErrUnsupportedEncoding, chunk.Size)
		}

		header := make([]byte, extensibleFmtSize)
		if _, err := io.ReadFull(chunk, header); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}

		guid := header[24:]
		if !bytes.Equal(guid[2:], subFormatTail) {
			return 0, fmt.Errorf("%w: unknown subformat % x", ErrUnsupportedEncoding, guid)
		}
		return binary.LittleEndian.Uint16(guid[:2]), nil
	}
}

func sampleDecoder(format uint16, bitDepth int) (sampleFunc, error) {
	switch format {
	case formatPCM:
		switch bitDepth {
		case 8:
			// 8-bit WAV samples are unsigned
			return func(b []byte) float32 {
				return (float32(b[0]) - 128) / 128
			}, nil
		case 16:
			return func(b []byte) float32 {
				return float32(int16(binary.LittleEndian.Uint16(b))) / 32768
			}, nil
		case 24:
			return func(b []byte) float32 {
				return float32(goaudio.Int24LETo32(b)) / 8388608
			}, nil
		case 32:
			return func(b []byte) float32 {
				return float32(float64(int32(binary.LittleEndian.Uint32(b))) / 2147483648)
			}, nil
		}
	case formatIEEEFloat:
		switch bitDepth {
		case 32:
			return func(b []byte) float32 {
				return math.Float32frombits(binary.LittleEndian.Uint32(b))
			}, nil
		case 64:
			return func(b []byte) float32 {
				return float32(math.Float64frombits(binary.LittleEndian.Uint64(b)))
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: format %d, %d bits", ErrUnsupportedEncoding, format, bitDepth)
}
