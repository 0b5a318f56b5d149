// SPDX-License-Identifier: EPL-2.0

package transcode

import "errors"

// Error taxonomy surfaced to callers. Every error returned by the dispatcher
// wraps exactly one of these, so callers can map outcomes (e.g. to process
// exit codes) with errors.Is without inspecting pipeline internals.
var (
	ErrUnsupportedFormat   = errors.New("unsupported audio format")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrCorruptInput        = errors.New("corrupt input")
	ErrIO                  = errors.New("i/o failure")
	ErrResample            = errors.New("invalid resampling parameters")
	ErrExternalToolMissing = errors.New("external tool not found")
	ErrExternalToolFailure = errors.New("external tool failed")
)
