// SPDX-License-Identifier: EPL-2.0

// Package transaudio transcodes audio files between formats.
//
// A constrained set of conversions runs through a native, sample-precise
// pipeline; everything else is delegated to ffmpeg. The native pipeline
// covers WAV and 16-bit FLAC input to 16-bit PCM WAV output, with optional
// sample rate and channel count conversion.
//
// # Quick Start
//
// The root package offers a one-call entry point:
//
//	err := transaudio.Transcode(ctx, transaudio.Request{
//	    Input:      "in.flac",
//	    Output:     "out.wav",
//	    SampleRate: 48000,
//	    Channels:   1,
//	})
//
// # Routing
//
// The input format is detected from the file's content, not its extension.
// WAV/FLAC to WAV requests run natively; adding a --codec override or any
// other format pair goes through ffmpeg. See the transcode subpackage for
// the routing rules and error taxonomy.
//
// # Native Pipeline
//
// The native route decodes to normalized float32, resamples with a
// windowed-sinc kernel, remixes channels by averaging/duplication, and
// writes the output atomically. The compute phases run on a worker pool
// whose output is byte-identical for any worker count. See the audio
// subpackage for the processing primitives.
//
// # Determinism
//
// For a fixed request, output files are byte-identical across runs and
// across thread counts. Transcoding a WAV to WAV with no conversion
// parameters reproduces the input samples exactly.
package transaudio
