// SPDX-License-Identifier: EPL-2.0

package wav2h

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ik5/wav2h/codegen"
)

// WaveExt is the extension, matched case-insensitively, of the files picked
// up in directory mode.
const WaveExt = ".wav"

// PathKind tells how an input path is processed.
type PathKind int

const (
	KindFile PathKind = iota + 1
	KindDirectory
)

// Classify reports whether path is a regular file or a directory.
func Classify(path string) (PathKind, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w at %s", ErrPathNotFound, path)
		}
		return 0, fmt.Errorf("%w at %s: %w", ErrPathNotFound, path, err)
	}

	switch {
	case info.Mode().IsRegular():
		return KindFile, nil
	case info.IsDir():
		return KindDirectory, nil
	default:
		return 0, fmt.Errorf("%w (%s)", ErrUnsupportedPathType, path)
	}
}

// Index is the outcome of converting a directory.
type Index struct {
	// Entries lists converted files in processing order.
	Entries []codegen.Entry
	// Skipped lists the files that failed to decode.
	Skipped []string
	// Text is the rendered index header.
	Text string
}

// ListWaveFiles returns the direct children of dir with a .wav extension in
// any case, sorted by path. Entries are matched by name only, so a
// subdirectory called x.wav is listed and later fails to decode.
func ListWaveFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, dir, err)
	}

	var paths []string
	for _, e := range entries {
		if !strings.EqualFold(codegen.Ext(e.Name()), WaveExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	slices.Sort(paths)

	return paths, nil
}

// ConvertDirectory converts every WAV file in dir, handing each array to
// sink as <identifier>.h and finally the index as samples.h, both inside dir.
//
// A file that fails to decode is logged and left out of the index. A sink
// error aborts the whole run and is returned.
func ConvertDirectory(dir string, sink Sink, opts ...Option) (*Index, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	paths, err := ListWaveFiles(dir)
	if err != nil {
		return nil, err
	}

	idx := &Index{}
	for _, path := range paths {
		res, err := Convert(path)
		if err != nil {
			o.logger.Error("failed to read", "path", path, "error", err)
			idx.Skipped = append(idx.Skipped, path)
			continue
		}

		target := filepath.Join(dir, res.HeaderName())
		if err := sink.Write(target, res.Text); err != nil {
			return nil, fmt.Errorf("writing %s: %w", target, err)
		}

		idx.Entries = append(idx.Entries, codegen.Entry{
			Name:     res.Name,
			Filename: res.Filename,
		})
	}

	idx.Text = codegen.Index(idx.Entries, o.includes)

	target := filepath.Join(dir, IndexFilename)
	if err := sink.Write(target, idx.Text); err != nil {
		return nil, fmt.Errorf("writing %s: %w", target, err)
	}

	return idx, nil
}
