// SPDX-License-Identifier: EPL-2.0

package wav2h

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/wav2h/internal/audiotest"
)

type write struct {
	path string
	text string
}

// recordSink keeps every write and optionally fails for one path.
type recordSink struct {
	writes []write
	failOn string
}

func (s *recordSink) Write(path, text string) error {
	if path == s.failOn {
		return ErrWrite
	}
	s.writes = append(s.writes, write{path: path, text: text})
	return nil
}

func (s *recordSink) paths() []string {
	out := make([]string, len(s.writes))
	for i, w := range s.writes {
		out[i] = filepath.Base(w.path)
	}
	return out
}

func writeFloatWAV(t *testing.T, dir, name string, channels int, samples ...float32) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := audiotest.WriteFile(path, audiotest.Float32WAV(8000, channels, samples)); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func writeGarbage(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("definitely not audio data, just some bytes"), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}
