// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Buffer holds a fully decoded stream as interleaved float32 samples.
// len(Samples) is always a multiple of Channels.
type Buffer struct {
	Samples    []float32
	Channels   int
	SampleRate int
}

// Frames returns the number of frames held by b.
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// ReadAll drains src into a Buffer. When src declares a frame count, the
// number of frames read must match it exactly, otherwise
// ErrFrameCountMismatch is returned.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrInvalidChannels
	}

	declared := src.Frames()

	var samples []float32
	if declared > 0 {
		samples = make([]float32, 0, declared*int64(channels))
	}

	chunk := src.BufSize()
	if chunk < channels {
		chunk = 4096
	}
	// keep reads frame aligned
	chunk -= chunk % channels
	buf := make([]float32, chunk)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	if len(samples)%channels != 0 {
		return nil, ErrPartialFrame
	}

	b := &Buffer{
		Samples:    samples,
		Channels:   channels,
		SampleRate: src.SampleRate(),
	}

	if declared >= 0 && int64(b.Frames()) != declared {
		return nil, fmt.Errorf("%w: read %d of %d", ErrFrameCountMismatch, b.Frames(), declared)
	}

	return b, nil
}
