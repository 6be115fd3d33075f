// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/wav2h"
	"github.com/ik5/wav2h/internal/logging"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the exit code. Generated
// text goes to stdout, diagnostics to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	prog := "wav2h"
	if len(args) > 0 {
		prog = filepath.Base(args[0])
		args = args[1:]
	}

	cfg, err := parseArgs(args)
	if err != nil {
		printUsage(stdout, prog)
		return 1
	}

	logger := logging.New(stderr, "info")

	kind, err := wav2h.Classify(cfg.path)
	if err != nil {
		logger.Error(diagnostic(err), "path", cfg.path, "error", err)
		return 1
	}

	var sink wav2h.Sink = wav2h.Console{W: stdout}
	if cfg.writeFiles {
		sink = wav2h.Files{Logger: logger}
	}

	switch kind {
	case wav2h.KindFile:
		if _, err := wav2h.ConvertFile(cfg.path, sink); err != nil {
			logger.Error(diagnostic(err), "path", cfg.path, "error", err)
			return 1
		}
	case wav2h.KindDirectory:
		idx, err := wav2h.ConvertDirectory(cfg.path, sink,
			wav2h.WithIncludes(cfg.writeFiles),
			wav2h.WithLogger(logger),
		)
		if err != nil {
			logger.Error(diagnostic(err), "path", cfg.path, "error", err)
			return 1
		}
		logger.Debug("converted directory",
			slog.Int("files", len(idx.Entries)),
			slog.Int("skipped", len(idx.Skipped)),
		)
	}

	return 0
}

// diagnostic names the failure in the words a user expects.
func diagnostic(err error) string {
	switch {
	case errors.Is(err, wav2h.ErrPathNotFound):
		return "no file exists"
	case errors.Is(err, wav2h.ErrUnsupportedPathType):
		return "don't know how to deal with that kind of path"
	case errors.Is(err, wav2h.ErrWrite):
		return "failed to write"
	case errors.Is(err, wav2h.ErrOpen), errors.Is(err, wav2h.ErrRead):
		return "failed to read"
	default:
		return "conversion failed"
	}
}
