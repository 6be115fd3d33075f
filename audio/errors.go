// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidChannels    = errors.New("channel count must be at least 1")
	ErrFrameCountMismatch = errors.New("frames read differ from frames declared")
	ErrPartialFrame       = errors.New("sample count is not a multiple of channels")
)
