// SPDX-License-Identifier: EPL-2.0

package audio

import "context"

// MixChannels converts buf to the target channel count and returns a new
// buffer; buf is unchanged.
//
// Policy:
//   - N -> 1 averages all N channels per frame with equal weight, which
//     cannot clip the way naive summation does.
//   - 1 -> N duplicates the single channel into every output channel.
//   - N -> M with both above 1: when shrinking, output channel m is the mean
//     of the input channels c with c % M == m (round-robin grouping); when
//     growing, output channel m copies input channel m % N. This generic
//     path is rarely exercised and intentionally unoptimized.
//
// A 1 -> 2 -> 1 round trip reproduces the original samples exactly: the
// duplicated channels are bit-equal and their float32 mean is the value
// itself.
//
// Frames are independent, so the pass is split over pool by frame range with
// workers writing disjoint output ranges.
func MixChannels(ctx context.Context, pool *Pool, buf *Buffer, target int) (*Buffer, error) {
	if target <= 0 {
		return nil, ErrInvalidChannels
	}
	if buf == nil || buf.Channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(buf.Data)%buf.Channels != 0 {
		return nil, ErrUnalignedBuffer
	}

	source := buf.Channels
	frames := buf.Frames()

	if source == target {
		out := make([]float32, len(buf.Data))
		copy(out, buf.Data)
		return &Buffer{Data: out, Channels: source}, nil
	}

	out := make([]float32, frames*target)
	in := buf.Data

	err := pool.Map(ctx, frames, func(c Chunk) error {
		switch {
		case target == 1:
			inv := float32(1.0) / float32(source)
			for f := c.Start; f < c.End; f++ {
				sum := float32(0)
				base := f * source
				for ch := 0; ch < source; ch++ {
					sum += in[base+ch]
				}
				out[f] = sum * inv
			}

		case source == 1:
			for f := c.Start; f < c.End; f++ {
				v := in[f]
				base := f * target
				for ch := 0; ch < target; ch++ {
					out[base+ch] = v
				}
			}

		case source > target:
			for f := c.Start; f < c.End; f++ {
				inBase := f * source
				outBase := f * target
				for m := 0; m < target; m++ {
					sum := float32(0)
					count := 0
					for ch := m; ch < source; ch += target {
						sum += in[inBase+ch]
						count++
					}
					out[outBase+m] = sum / float32(count)
				}
			}

		default: // source < target
			for f := c.Start; f < c.End; f++ {
				inBase := f * source
				outBase := f * target
				for m := 0; m < target; m++ {
					out[outBase+m] = in[inBase+m%source]
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Buffer{Data: out, Channels: target}, nil
}
