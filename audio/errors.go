// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidRate     = errors.New("sample rate must be positive")
	ErrInvalidChannels = errors.New("channel count must be positive")
	ErrEmptyBuffer     = errors.New("sample buffer is empty")
	ErrUnalignedBuffer = errors.New("buffer length must be multiple of channels")
)
