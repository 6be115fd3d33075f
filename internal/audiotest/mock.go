// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate     int
	channels       int
	totalFrames    int // frames actually produced
	declaredFrames int64
	generated      int
	failAfter      int // frames after which ReadSamples fails, -1 disables
	closed         bool
	waveform       func(frame int, channel int) float32
}

// ErrMockRead is returned by a MockSource configured with FailAfter.
var ErrMockRead = errors.New("mock read failure")

// NewMockSource creates a new mock audio source producing totalFrames frames.
// waveform generates sample values given frame index and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:     sampleRate,
		channels:       channels,
		totalFrames:    totalFrames,
		declaredFrames: int64(totalFrames),
		failAfter:      -1,
		waveform:       waveform,
	}
}

// NewRampSource creates a mock source whose samples count up from 0 in
// steps of 1/1024, in interleaved order.
func NewRampSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return float32(frame*channels+channel) / 1024
	})
}

// DeclareFrames overrides the frame count reported by Frames.
func (m *MockSource) DeclareFrames(n int64) *MockSource {
	m.declaredFrames = n
	return m
}

// FailAfter makes ReadSamples return ErrMockRead once n frames were produced.
func (m *MockSource) FailAfter(n int) *MockSource {
	m.failAfter = n
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Frames() int64   { return m.declaredFrames }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Closed() bool    { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrMockRead
	}
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalFrames-m.generated)
	if m.failAfter >= 0 {
		framesToWrite = min(framesToWrite, m.failAfter-m.generated)
	}

	for frame := range framesToWrite {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += framesToWrite
	written := framesToWrite * m.channels

	if m.generated >= m.totalFrames {
		return written, io.EOF
	}

	return written, nil
}
