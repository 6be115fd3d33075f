// SPDX-License-Identifier: EPL-2.0

package wav2h

import "log/slog"

// IndexFilename is the name of the aggregate header written in directory mode.
const IndexFilename = "samples.h"

type options struct {
	includes bool
	logger   *slog.Logger
}

type Option func(*options)

// WithIncludes prefixes the index with an #include for every generated header.
func WithIncludes(includes bool) Option {
	return func(o *options) {
		o.includes = includes
	}
}

// WithLogger sets the logger used to report skipped files.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
	}
}
