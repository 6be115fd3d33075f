// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/ik5/wav2h"
)

const writeFlag = "-f"

type config struct {
	path       string
	writeFiles bool
}

// parseArgs accepts "<path>", "<path> -f" or "-f <path>".
func parseArgs(args []string) (config, error) {
	switch len(args) {
	case 1:
		return config{path: args[0]}, nil
	case 2:
		switch {
		case args[0] == writeFlag:
			return config{path: args[1], writeFiles: true}, nil
		case args[1] == writeFlag:
			return config{path: args[0], writeFiles: true}, nil
		}
	}

	return config{}, fmt.Errorf("%w: %q", wav2h.ErrUsage, args)
}

func printUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, "\nUsage\n\n\t%s <path> [-f]\n\n", prog)
	fmt.Fprintf(w, "\t-f \t write files instead of std::out\n\n")
}
