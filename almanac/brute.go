package almanac

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// checkEvery bounds how many seeds a worker walks between context checks.
const checkEvery = 1 << 16

// LowestRangeLocationBrute walks every seed of every range and returns the
// lowest location. The seeds are cut into one chunk per worker and the chunks
// run on an errgroup; cancelling ctx stops all of them.
// workers < 1 runs a single worker.
func (a *Almanac) LowestRangeLocationBrute(ctx context.Context, workers int) (int, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	if workers < 1 {
		workers = 1
	}

	chunks := split(ranges, workers)
	lows := make([]int, len(chunks))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range chunks {
		g.Go(func() error {
			low, err := a.scan(ctx, c)
			lows[i] = low
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	low := math.MaxInt
	for _, l := range lows {
		low = min(low, l)
	}
	return low, nil
}

// scan returns the lowest location among the seeds of r.
func (a *Almanac) scan(ctx context.Context, r Range) (int, error) {
	low := math.MaxInt
	for s := r.Start; s <= r.End; s++ {
		if (s-r.Start)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		low = min(low, a.Location(s))
	}
	return low, nil
}

// split cuts ranges into at most n chunks of near-equal seed counts.
func split(ranges []Range, n int) []Range {
	total := 0
	for _, r := range ranges {
		total += r.End - r.Start + 1
	}
	size := (total + n - 1) / n

	var out []Range
	for _, r := range ranges {
		for s := r.Start; s <= r.End; s += size {
			out = append(out, Range{Start: s, End: min(s+size-1, r.End)})
		}
	}
	return out
}
