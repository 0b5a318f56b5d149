// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nvik/transaudio/transcode"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unsupported format", err: transcode.ErrUnsupportedFormat, want: exitUnsupportedFormat},
		{name: "unsupported bit depth", err: transcode.ErrUnsupportedBitDepth, want: exitUnsupportedBitDepth},
		{name: "corrupt input", err: transcode.ErrCorruptInput, want: exitCorruptInput},
		{name: "io failure", err: transcode.ErrIO, want: exitIO},
		{name: "tool missing", err: transcode.ErrExternalToolMissing, want: exitExternalToolMissing},
		{name: "tool failure", err: transcode.ErrExternalToolFailure, want: exitExternalToolFailure},
		{name: "wrapped taxonomy error", err: fmt.Errorf("decode: %w", transcode.ErrCorruptInput), want: exitCorruptInput},
		{name: "resample parameters", err: transcode.ErrResample, want: exitGeneric},
		{name: "unrelated error", err: errors.New("boom"), want: exitGeneric},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
