// SPDX-License-Identifier: EPL-2.0

package wav2h

import (
	"fmt"
	"os"

	"github.com/ik5/wav2h/audio"
	"github.com/ik5/wav2h/formats/aiff"
	"github.com/ik5/wav2h/formats/wav"
)

// DefaultRegistry resolves decoders by extension. Anything that is not an
// AIFF file is treated as WAV, so the container is judged by its content.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.SetFallback(wav.Decoder{})
	return reg
}

// Load decodes the whole file at path into memory using DefaultRegistry.
func Load(path string) (*audio.Buffer, error) {
	return LoadWith(DefaultRegistry, path)
}

// LoadWith decodes the whole file at path using a decoder from reg.
//
// Failing to open or recognize the file yields ErrOpen. A frame count that
// differs from the declared one, or any failure mid-stream, yields ErrRead.
// The file is closed before returning.
func LoadWith(reg *audio.Registry, path string) (*audio.Buffer, error) {
	dec, ok := reg.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w %s: no decoder registered", ErrOpen, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}

	return buf, nil
}
