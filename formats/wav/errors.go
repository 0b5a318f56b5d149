// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrOnlyPCMSupported    = errors.New("only uncompressed PCM supported")
	ErrUnsupportedBitDepth = errors.New("only 16-bit PCM supported")
	ErrEmptyOutput         = errors.New("refusing to write empty output")
)
