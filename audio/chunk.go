// SPDX-License-Identifier: EPL-2.0

package audio

// Chunk is a contiguous, disjoint frame range [Start, End) of a buffer,
// identified by its position in the partition.
type Chunk struct {
	Index int
	Start int
	End   int
}

// Frames is the number of frames covered by the chunk.
func (c Chunk) Frames() int { return c.End - c.Start }

// Partition splits the frame range [0, frames) into at most n contiguous,
// non-overlapping chunks that together cover the range exactly once. Small
// ranges produce fewer chunks so no chunk is ever empty. Frames that don't
// divide evenly are spread one extra frame per leading chunk, which keeps
// chunk sizes within one frame of each other.
func Partition(frames, n int) []Chunk {
	if frames <= 0 || n <= 0 {
		return nil
	}
	if n > frames {
		n = frames
	}

	base := frames / n
	extra := frames % n

	chunks := make([]Chunk, n)
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < extra {
			size++
		}
		chunks[i] = Chunk{Index: i, Start: start, End: start + size}
		start += size
	}
	return chunks
}
