// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs per-chunk transforms over a fixed number of workers.
//
// A transform receives one Chunk and must depend only on that chunk's own
// frame range (plus any shared read-only input), writing only to output
// indices derived from the chunk. Because chunks never overlap, workers need
// no locking, and because the output layout is positional the merged result
// is identical for any worker count and any scheduling order.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given worker count. A count below 1
// selects the number of logical CPUs.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

// Workers reports the configured worker count.
func (p *Pool) Workers() int { return p.workers }

// Map partitions [0, frames) into at most Workers() chunks and runs fn on
// each concurrently. It returns the first error, after all in-flight
// transforms have finished. Context cancellation aborts chunks that have not
// started; any partially written output must be discarded by the caller.
func (p *Pool) Map(ctx context.Context, frames int, fn func(Chunk) error) error {
	if frames <= 0 {
		return nil
	}

	chunks := Partition(frames, p.workers)

	g, ctx := errgroup.WithContext(ctx)
	for _, c := range chunks {
		c := c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%w", err)
			}
			return fn(c)
		})
	}
	return g.Wait()
}
