// SPDX-License-Identifier: EPL-2.0

// Package audio provides the native transcoding pipeline's processing
// primitives.
//
// This package contains the building blocks the dispatcher assembles into a
// pipeline:
//   - Source interface for streaming decoded audio
//   - Buffer and StreamDescriptor for fully decoded material
//   - Resample for band-limited sample rate conversion
//   - MixChannels for channel count conversion
//   - Pool, Chunk and Partition for deterministic parallel transforms
//   - Registry for decoder registration by format key
//
// # Source Interface
//
// Decoders expose audio as a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitDepth() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadAll drains a Source into a Buffer plus its StreamDescriptor, which is
// the form the transform stages operate on.
//
// # Sample Format
//
// Samples are interleaved float32 in [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// The normalized format keeps intermediate processing independent of
// container bit depths and free of clipping.
//
// # Resampling
//
// Resample performs windowed-sinc interpolation per channel:
//
//	pool := audio.NewPool(0) // all CPUs
//	out, err := audio.Resample(ctx, pool, buf, 44100, 48000)
//
// The output frame count follows OutputFrames (floor rounding), and the
// result is bit-identical regardless of the pool's worker count.
//
// # Channel Mixing
//
// MixChannels converts between channel counts:
//
//	mono, err := audio.MixChannels(ctx, pool, stereo, 1)
//
// Downmixing averages with equal weight; upmixing duplicates.
//
// # Deterministic Parallelism
//
// Pool.Map partitions a frame range into contiguous, non-overlapping chunks
// (Partition) and applies a transform to each concurrently. Transforms write
// only to their chunk's output range and read only shared immutable input,
// so no synchronization is needed and the merged output does not depend on
// worker count or completion order.
//
// # Error Handling
//
// Sources return io.EOF when the stream ends. The transform functions return
// sentinel errors (ErrInvalidRate, ErrInvalidChannels, ErrEmptyBuffer) for
// invalid parameters, detected before any work is scheduled.
package audio
