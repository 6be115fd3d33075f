// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// Frames is the frame count declared by the container, or -1 when unknown.
	Frames() int64
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	BufSize() int
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by file extension (e.g., "wav", "aiff").
type Registry struct {
	codecs   map[string]Decoder
	fallback Decoder
	mtx      *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// Register binds d to format. The key is matched case-insensitively and
// without a leading dot.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.codecs[normalizeFormat(format)] = d
}

// SetFallback sets the decoder returned by Lookup for unregistered extensions.
func (r *Registry) SetFallback(d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.fallback = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	d, ok := r.codecs[normalizeFormat(format)]
	return d, ok
}

// Lookup picks a decoder for path by its extension, falling back to the
// fallback decoder when none is registered.
func (r *Registry) Lookup(path string) (Decoder, bool) {
	if d, ok := r.Get(filepath.Ext(path)); ok {
		return d, true
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.fallback, r.fallback != nil
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
