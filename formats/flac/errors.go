// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrNotFlacFile         = errors.New("not a FLAC file")
	ErrUnsupportedBitDepth = errors.New("only 16-bit FLAC supported")
	ErrCorruptStream       = errors.New("corrupt FLAC stream")
)
