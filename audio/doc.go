// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding primitives shared by the format packages.
//
// # Source Interface
//
// Every format decoder produces a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    Frames() int64
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples streams interleaved float32 samples in the range [-1.0, 1.0]
// regardless of the bit depth stored in the file.
//
// # Whole-file Buffers
//
// ReadAll drains a Source into a Buffer and verifies that the number of
// frames actually read equals the count declared by the container:
//
//	buf, err := audio.ReadAll(src)
//	if errors.Is(err, audio.ErrFrameCountMismatch) {
//	    // truncated or corrupt file
//	}
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.SetFallback(wav.Decoder{})
//	decoder, _ := registry.Lookup("kick.wav")
package audio
