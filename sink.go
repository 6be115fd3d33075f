// SPDX-License-Identifier: EPL-2.0

package wav2h

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Sink receives generated text together with the file it belongs to.
type Sink interface {
	Write(path, text string) error
}

// Console prints every text followed by a newline and ignores the path.
type Console struct {
	W io.Writer
}

func (c Console) Write(_, text string) error {
	// console output has no error channel
	_, _ = fmt.Fprintln(c.W, text)
	return nil
}

// Files writes every text to its path, replacing existing files.
type Files struct {
	Logger *slog.Logger
}

func (s Files) Write(path, text string) error {
	if err := writeFile(path, text); err != nil {
		return err
	}

	if s.Logger != nil {
		s.Logger.Info("wrote", "path", path)
	}
	return nil
}

// writeFile reports open, write and close failures as ErrWrite carrying the
// OS reason.
func writeFile(path, text string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWrite, cerr)
		}
	}()

	if _, err := io.WriteString(f, text); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}
