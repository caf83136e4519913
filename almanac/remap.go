package almanac

import (
	"fmt"
)

// MapRanges converts whole intervals through m. Each input interval is cut
// at the offset boundaries; covered pieces are shifted, the rest pass through.
// The output is unsorted and may hold adjacent pieces.
// Complexity: O(R·k) for R intervals and k offsets.
func (m Map) MapRanges(in []Range) []Range {
	out := make([]Range, 0, len(in))
	for _, r := range in {
		cur := r.Start
		for _, o := range m.Offsets {
			if o.End < cur {
				continue
			}
			if o.Start > r.End {
				break
			}
			if o.Start > cur {
				out = append(out, Range{Start: cur, End: o.Start - 1})
				cur = o.Start
			}
			hi := min(o.End, r.End)
			out = append(out, Range{Start: cur + o.Shift, End: hi + o.Shift})
			cur = hi + 1
			if cur > r.End {
				break
			}
		}
		if cur <= r.End {
			out = append(out, Range{Start: cur, End: r.End})
		}
	}
	return out
}

// LocationRanges pushes the seed ranges through the whole chain.
func (a *Almanac) LocationRanges() ([]Range, error) {
	rs, err := a.SeedRanges()
	if err != nil {
		return nil, err
	}
	for _, m := range a.chain {
		rs = m.MapRanges(rs)
	}
	return rs, nil
}

// LowestRangeLocation answers the range question without visiting every seed.
func (a *Almanac) LowestRangeLocation() (int, error) {
	rs, err := a.LocationRanges()
	if err != nil {
		return 0, err
	}
	if len(rs) == 0 {
		return 0, fmt.Errorf("%w: no location intervals", ErrSeedPairs)
	}
	low := rs[0].Start
	for _, r := range rs[1:] {
		low = min(low, r.Start)
	}
	return low, nil
}
