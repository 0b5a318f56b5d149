// SPDX-License-Identifier: EPL-2.0

// Package transcode routes and executes audio transcode requests.
//
// The Dispatcher consults a static capability matrix to choose between two
// routes, resolved exactly once per request:
//
//   - Native: WAV or 16-bit FLAC input to WAV output, processed in-process
//     (decode, optional resample, optional channel remix, encode).
//   - External: every other combination, delegated to ffmpeg through an
//     injectable Runner.
//
// Typical use:
//
//	d := transcode.NewDispatcher(logger, nil)
//	err := d.Transcode(ctx, transcode.Request{
//	    Input:      "in.flac",
//	    Output:     "out.wav",
//	    SampleRate: 48000,
//	})
//
// Errors wrap the package's sentinel taxonomy (ErrUnsupportedFormat,
// ErrUnsupportedBitDepth, ErrCorruptInput, ErrIO, ErrResample,
// ErrExternalToolMissing, ErrExternalToolFailure) so callers can map them
// with errors.Is.
package transcode
