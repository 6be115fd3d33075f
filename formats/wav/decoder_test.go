// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/wav2h/audio"
	"github.com/ik5/wav2h/internal/audiotest"
)

func pcm16(samples ...int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return data
}

func decodeAll(t *testing.T, r io.Reader) *audio.Buffer {
	t.Helper()

	src, err := Decoder{}.Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v, want nil", err)
	}
	return buf
}

func assertSamples(t *testing.T, got, want []float32) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if diff := math.Abs(float64(got[i] - want[i])); diff > 1e-6 {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_PCM16Mono(t *testing.T) {
	t.Parallel()

	data := pcm16(16384, -8192, 0, 32767, -32768)
	wavData := audiotest.RawWAV(audiotest.FormatPCM, 8000, 1, 16, data, uint32(len(data)))

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
	if src.Frames() != 5 {
		t.Errorf("Frames() = %d, want 5", src.Frames())
	}

	buf, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	assertSamples(t, buf.Samples, []float32{0.5, -0.25, 0, 32767.0 / 32768.0, -1})
}

func TestDecoder_StereoKeepsInterleaving(t *testing.T) {
	t.Parallel()

	// L R L R L R
	data := pcm16(4096, -4096, 8192, -8192, 16384, -16384)
	wavData := audiotest.RawWAV(audiotest.FormatPCM, 44100, 2, 16, data, uint32(len(data)))

	buf := decodeAll(t, bytes.NewReader(wavData))

	if buf.Channels != 2 {
		t.Errorf("Channels = %d, want 2", buf.Channels)
	}
	if buf.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", buf.Frames())
	}
	assertSamples(t, buf.Samples, []float32{0.125, -0.125, 0.25, -0.25, 0.5, -0.5})
}

func TestDecoder_PCM8Unsigned(t *testing.T) {
	t.Parallel()

	wavData := audiotest.PCM8WAV(8000, 1, []uint8{128, 192, 64, 0})

	buf := decodeAll(t, bytes.NewReader(wavData))
	assertSamples(t, buf.Samples, []float32{0, 0.5, -0.5, -1})
}

func TestDecoder_EncodedBitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		samples  []int
		want     []float32
	}{
		{"16-bit", 16, []int{16384, -16384}, []float32{0.5, -0.5}},
		{"24-bit", 24, []int{4194304, -2097152}, []float32{0.5, -0.25}},
		{"32-bit", 32, []int{1 << 30, -(1 << 29)}, []float32{0.5, -0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "tone.wav")
			if err := audiotest.WriteWAV(path, 22050, tt.bitDepth, 1, tt.samples); err != nil {
				t.Fatalf("WriteWAV() error = %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer f.Close()

			buf := decodeAll(t, f)
			if buf.SampleRate != 22050 {
				t.Errorf("SampleRate = %d, want 22050", buf.SampleRate)
			}
			assertSamples(t, buf.Samples, tt.want)
		})
	}
}

func TestDecoder_Float32(t *testing.T) {
	t.Parallel()

	want := []float32{0.1, -0.2, 0.3, -0.4}
	wavData := audiotest.Float32WAV(48000, 2, want)

	buf := decodeAll(t, bytes.NewReader(wavData))

	if buf.Channels != 2 {
		t.Errorf("Channels = %d, want 2", buf.Channels)
	}
	for i := range want {
		if buf.Samples[i] != want[i] {
			t.Errorf("sample[%d] = %v, want exactly %v", i, buf.Samples[i], want[i])
		}
	}
}

func TestDecoder_Float64(t *testing.T) {
	t.Parallel()

	values := []float64{0.75, -0.5}
	data := make([]byte, 16)
	for i, v := range values {
		binary.LittleEndian.PutUint64(data[8*i:], math.Float64bits(v))
	}
	wavData := audiotest.RawWAV(audiotest.FormatIEEEFloat, 8000, 1, 64, data, uint32(len(data)))

	buf := decodeAll(t, bytes.NewReader(wavData))
	assertSamples(t, buf.Samples, []float32{0.75, -0.5})
}

func TestDecoder_Extensible(t *testing.T) {
	t.Parallel()

	floats := make([]byte, 8)
	binary.LittleEndian.PutUint32(floats[0:], math.Float32bits(0.5))
	binary.LittleEndian.PutUint32(floats[4:], math.Float32bits(-0.25))

	tests := []struct {
		name      string
		subFormat uint16
		bitDepth  int
		data      []byte
		want      []float32
	}{
		{"float 32", formatIEEEFloat, 32, floats, []float32{0.5, -0.25}},
		{"pcm 16", formatPCM, 16, pcm16(16384, -8192), []float32{0.5, -0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wavData := audiotest.ExtensibleWAV(tt.subFormat, 8000, 1, tt.bitDepth, tt.data)
			buf := decodeAll(t, bytes.NewReader(wavData))
			assertSamples(t, buf.Samples, tt.want)
		})
	}
}

func TestDecoder_ExtensibleUnsupportedSubFormat(t *testing.T) {
	t.Parallel()

	wavData := audiotest.ExtensibleWAV(audiotest.FormatALaw, 8000, 1, 8, []byte{1, 2, 3, 4})

	_, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestDecoder_ExtensibleNonSeekingReader(t *testing.T) {
	t.Parallel()

	wavData := audiotest.ExtensibleWAV(formatPCM, 8000, 1, 16, pcm16(8192, -8192))

	buf := decodeAll(t, io.MultiReader(bytes.NewReader(wavData)))
	assertSamples(t, buf.Samples, []float32{0.25, -0.25})
}

func TestDecoder_TruncatedData(t *testing.T) {
	t.Parallel()

	wavData := audiotest.TruncatedWAV(8000, 1, []int16{100, 200, 300, 400}, 10)

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.Frames() != 10 {
		t.Errorf("Frames() = %d, want declared 10", src.Frames())
	}

	_, err = audio.ReadAll(src)
	if !errors.Is(err, audio.ErrFrameCountMismatch) {
		t.Errorf("ReadAll() error = %v, want ErrFrameCountMismatch", err)
	}
}

func TestDecoder_IgnoresTrailingChunks(t *testing.T) {
	t.Parallel()

	data := pcm16(16384, -16384)
	wavData := audiotest.RawWAV(audiotest.FormatPCM, 8000, 1, 16, data, uint32(len(data)))

	trailer := new(bytes.Buffer)
	trailer.WriteString("LIST")
	binary.Write(trailer, binary.LittleEndian, uint32(8))
	trailer.WriteString("INFOabcd")
	wavData = append(wavData, trailer.Bytes()...)

	buf := decodeAll(t, bytes.NewReader(wavData))
	assertSamples(t, buf.Samples, []float32{0.5, -0.5})
}

func TestDecoder_NonSeekingReader(t *testing.T) {
	t.Parallel()

	data := pcm16(8192, 8192, 8192)
	wavData := audiotest.RawWAV(audiotest.FormatPCM, 8000, 1, 16, data, uint32(len(data)))

	// io.MultiReader hides Seek
	buf := decodeAll(t, io.MultiReader(bytes.NewReader(wavData)))
	assertSamples(t, buf.Samples, []float32{0.25, 0.25, 0.25})
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("This is not WAV data at all, just some text bytes")},
		{"empty", []byte{}},
		{"riff without wave", append([]byte("RIFF\x04\x00\x00\x00AVI "), make([]byte, 32)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestDecoder_UnsupportedEncoding(t *testing.T) {
	t.Parallel()

	wavData := audiotest.RawWAV(audiotest.FormatALaw, 8000, 1, 8, []byte{1, 2, 3, 4}, 4)

	_, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err == nil {
		t.Error("Decode() error = nil, want error for A-law data")
	}
}

// failingReader returns err once its data runs out
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	errDisk := errors.New("disk gone")
	src := &source{
		r:              &failingReader{err: errDisk},
		channels:       1,
		bytesPerSample: 2,
		decode:         func([]byte) float32 { return 0 },
	}

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, errDisk) {
		t.Fatalf("ReadSamples() error = %v, want %v", err, errDisk)
	}
	if !strings.HasPrefix(err.Error(), "reading wav samples: ") {
		t.Errorf("ReadSamples() error = %q, want reading context", err)
	}
}

func TestSampleDecoder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   uint16
		bitDepth int
		wantErr  bool
	}{
		{"pcm 8", formatPCM, 8, false},
		{"pcm 16", formatPCM, 16, false},
		{"pcm 24", formatPCM, 24, false},
		{"pcm 32", formatPCM, 32, false},
		{"unresolved extensible", formatExtensible, 24, true},
		{"float 32", formatIEEEFloat, 32, false},
		{"float 64", formatIEEEFloat, 64, false},
		{"pcm 12", formatPCM, 12, true},
		{"float 16", formatIEEEFloat, 16, true},
		{"a-law", audiotest.FormatALaw, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fn, err := sampleDecoder(tt.format, tt.bitDepth)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedEncoding) {
					t.Errorf("sampleDecoder() error = %v, want ErrUnsupportedEncoding", err)
				}
				return
			}
			if err != nil || fn == nil {
				t.Errorf("sampleDecoder() = %v, %v; want decoder", fn, err)
			}
		})
	}
}

func TestSource_ReadSamplesSmallerThanFrame(t *testing.T) {
	t.Parallel()

	data := pcm16(1, 2, 3, 4)
	wavData := audiotest.RawWAV(audiotest.FormatPCM, 8000, 2, 16, data, uint32(len(data)))

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	n, err := src.ReadSamples(make([]float32, 1))
	if n != 0 || !errors.Is(err, audio.ErrPartialFrame) {
		t.Errorf("ReadSamples(1) = %d, %v; want 0, ErrPartialFrame", n, err)
	}

	n, err = src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func BenchmarkDecoder_PCM16(b *testing.B) {
	samples := make([]int16, 44100)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	data := pcm16(samples...)
	wavData := audiotest.RawWAV(audiotest.FormatPCM, 44100, 1, 16, data, uint32(len(data)))

	b.ReportAllocs()

	for b.Loop() {
		src, _ := Decoder{}.Decode(bytes.NewReader(wavData))
		_, _ = audio.ReadAll(src)
	}
}
