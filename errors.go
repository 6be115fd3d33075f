// SPDX-License-Identifier: EPL-2.0

package wav2h

import "errors"

var (
	// ErrUsage indicates malformed command line arguments
	ErrUsage = errors.New("invalid arguments")

	// ErrPathNotFound indicates the input path does not exist
	ErrPathNotFound = errors.New("no file exists")

	// ErrUnsupportedPathType indicates a path that is neither a regular file nor a directory
	ErrUnsupportedPathType = errors.New("unsupported kind of path")

	// ErrOpen indicates the input could not be opened or is not a recognized container
	ErrOpen = errors.New("can't open file for reading")

	// ErrRead indicates fewer or more frames were read than the file declares
	ErrRead = errors.New("failed to read all frames")

	// ErrWrite indicates generated text could not be written
	ErrWrite = errors.New("failed to write")
)
