// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"math"

	"github.com/nvik/transaudio/utils"
)

// ResampleTaps is the number of sinc zero-crossings kept on each side of an
// output position. Higher values sharpen the transition band at the cost of
// more multiplies per output sample.
const ResampleTaps = 16

// OutputFrames is the frame count a resample from srcRate to dstRate
// produces for the given input frame count: floor(frames * dstRate /
// srcRate), computed in integer arithmetic. This rounding rule is fixed and
// relied upon by callers sizing output buffers.
func OutputFrames(frames, srcRate, dstRate int) int {
	return int(int64(frames) * int64(dstRate) / int64(srcRate))
}

// Resample converts buf from srcRate to dstRate using band-limited
// windowed-sinc interpolation (Blackman window). Each output channel is
// computed only from that channel's own samples, never cross-mixed, so
// multi-channel material keeps its inter-channel phase.
//
// When downsampling, the sinc cutoff is scaled to the destination Nyquist
// frequency for anti-aliasing. Kernel weights are renormalized per output
// sample, which preserves DC and avoids amplitude droop at the buffer edges,
// where the kernel is truncated against zero padding.
//
// The work is split over pool by output frame range. Workers read the shared
// deinterleaved input, which is immutable during the pass, and write
// disjoint ranges of the output, so the result is bit-identical for any
// worker count.
//
// Returns a new buffer; buf is unchanged. Identity when the rates are equal.
func Resample(ctx context.Context, pool *Pool, buf *Buffer, srcRate, dstRate int) (*Buffer, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, ErrEmptyBuffer
	}
	if buf.Channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(buf.Data)%buf.Channels != 0 {
		return nil, ErrUnalignedBuffer
	}

	channels := buf.Channels
	if srcRate == dstRate {
		out := make([]float32, len(buf.Data))
		copy(out, buf.Data)
		return &Buffer{Data: out, Channels: channels}, nil
	}

	inFrames := buf.Frames()
	outFrames := OutputFrames(inFrames, srcRate, dstRate)
	out := make([]float32, outFrames*channels)
	if outFrames == 0 {
		return &Buffer{Data: out, Channels: channels}, nil
	}

	input := buf.Deinterleave()

	ratio := float64(srcRate) / float64(dstRate)

	// Scale the cutoff down to the destination Nyquist when decimating.
	scale := 1.0
	if dstRate < srcRate {
		scale = float64(dstRate) / float64(srcRate)
	}
	half := float64(ResampleTaps) / scale

	err := pool.Map(ctx, outFrames, func(c Chunk) error {
		acc := make([]float64, channels)

		for i := c.Start; i < c.End; i++ {
			pos := float64(i) * ratio

			lo := int(math.Ceil(pos - half))
			hi := int(math.Floor(pos + half))
			if lo < 0 {
				lo = 0
			}
			if hi > inFrames-1 {
				hi = inFrames - 1
			}

			for ch := range acc {
				acc[ch] = 0
			}
			wsum := 0.0

			for j := lo; j <= hi; j++ {
				d := pos - float64(j)
				w := utils.Sinc(scale*d) * utils.Blackman(d/half)
				wsum += w
				for ch := 0; ch < channels; ch++ {
					acc[ch] += float64(input[ch][j]) * w
				}
			}

			if wsum != 0 {
				for ch := 0; ch < channels; ch++ {
					out[i*channels+ch] = float32(acc[ch] / wsum)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Buffer{Data: out, Channels: channels}, nil
}
