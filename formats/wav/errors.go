// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrNoPCMData           = errors.New("WAV file has no data chunk")
	ErrUnsupportedEncoding = errors.New("unsupported WAV sample encoding")
)
