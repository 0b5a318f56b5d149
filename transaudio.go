// SPDX-License-Identifier: EPL-2.0

package transaudio

import (
	"context"
	"log/slog"

	"github.com/nvik/transaudio/transcode"
)

// Request is the root-level alias for a transcode request.
type Request = transcode.Request

// Transcode runs one transcode operation with default wiring: ffmpeg as the
// external tool and no logging. For control over the logger or the external
// runner, use transcode.NewDispatcher directly.
func Transcode(ctx context.Context, req Request) error {
	return TranscodeWithLogger(ctx, nil, req)
}

// TranscodeWithLogger is Transcode with an explicit logger.
func TranscodeWithLogger(ctx context.Context, log *slog.Logger, req Request) error {
	d := transcode.NewDispatcher(log, nil)
	return d.Transcode(ctx, req)
}
