// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	FormatPCM        = 1
	FormatIEEEFloat  = 3
	FormatALaw       = 6
	FormatExtensible = 0xFFFE
)

// WriteWAV encodes integer PCM samples (interleaved) into a WAV file at path
// using the go-audio encoder.
func WriteWAV(path string, sampleRate, bitDepth, channels int, samples []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, FormatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing %s: %w", path, err)
	}

	return nil
}

// RawWAV builds a canonical 44-byte header WAV around data. declaredSize is
// written as the data chunk size; pass a value larger than len(data) to build
// a truncated file.
func RawWAV(format, sampleRate, channels, bitsPerSample int, data []byte, declaredSize uint32) []byte {
	byteRate := uint32(sampleRate) * uint32(channels) * uint32(bitsPerSample/8)
	blockAlign := uint16(channels) * uint16(bitsPerSample/8)

	header := make([]byte, 44)

	// RIFF header
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+declaredSize)
	copy(header[8:12], "WAVE")

	// fmt chunk
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], uint16(format))
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(bitsPerSample))

	// data chunk
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], declaredSize)

	return append(header, data...)
}

// ExtensibleWAV builds a WAVE_FORMAT_EXTENSIBLE file whose SubFormat GUID
// carries subFormat in its first two bytes.
func ExtensibleWAV(subFormat uint16, sampleRate, channels, bitsPerSample int, data []byte) []byte {
	blockAlign := channels * bitsPerSample / 8

	fmtChunk := make([]byte, 40)
	binary.LittleEndian.PutUint16(fmtChunk[0:2], FormatExtensible)
	binary.LittleEndian.PutUint16(fmtChunk[2:4], uint16(channels))
	binary.LittleEndian.PutUint32(fmtChunk[4:8], uint32(sampleRate))
	binary.LittleEndian.PutUint32(fmtChunk[8:12], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(fmtChunk[12:14], uint16(blockAlign))
	binary.LittleEndian.PutUint16(fmtChunk[14:16], uint16(bitsPerSample))
	binary.LittleEndian.PutUint16(fmtChunk[16:18], 22)
	binary.LittleEndian.PutUint16(fmtChunk[18:20], uint16(bitsPerSample))
	binary.LittleEndian.PutUint16(fmtChunk[24:26], subFormat)
	copy(fmtChunk[26:], []byte{
		0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
		0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
	})

	out := make([]byte, 0, 12+8+len(fmtChunk)+8+len(data))
	out = append(out, "RIFF"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(4+8+len(fmtChunk)+8+len(data)))
	out = append(out, "WAVE"...)
	out = append(out, "fmt "...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(fmtChunk)))
	out = append(out, fmtChunk...)
	out = append(out, "data"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(data)))
	return append(out, data...)
}

// Float32WAV builds an IEEE-float WAV holding samples.
func Float32WAV(sampleRate, channels int, samples []float32) []byte {
	data := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(data[4*i:], math.Float32bits(s))
	}
	return RawWAV(FormatIEEEFloat, sampleRate, channels, 32, data, uint32(len(data)))
}

// PCM8WAV builds an unsigned 8-bit PCM WAV holding raw samples.
func PCM8WAV(sampleRate, channels int, samples []uint8) []byte {
	return RawWAV(FormatPCM, sampleRate, channels, 8, samples, uint32(len(samples)))
}

// TruncatedWAV builds a 16-bit PCM WAV whose data chunk declares
// declaredFrames frames but holds only the given samples.
func TruncatedWAV(sampleRate, channels int, samples []int16, declaredFrames int) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return RawWAV(FormatPCM, sampleRate, channels, 16, data, uint32(declaredFrames*channels*2))
}

// WriteFile writes data to path, failing the caller through the returned error.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
