package almanac

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/aoc/internal/input"
)

// Parse reads a whole almanac: the seeds line and every map block.
// The maps must chain from Seed to Location.
func Parse(s string) (*Almanac, error) {
	blocks := input.Blocks(s)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: empty almanac", ErrSyntax)
	}

	// 1) Seeds line.
	seedText, ok := strings.CutPrefix(strings.TrimSpace(blocks[0][0]), "seeds:")
	if !ok || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("%w: first block must be a single 'seeds:' line", ErrSyntax)
	}
	seeds, err := input.Ints(seedText)
	if err != nil {
		return nil, fmt.Errorf("%w: seeds: %v", ErrSyntax, err)
	}

	// 2) One map per remaining block.
	a := &Almanac{Seeds: seeds, Maps: make(map[Category]Map, len(blocks)-1)}
	for _, b := range blocks[1:] {
		m, err := parseMap(b)
		if err != nil {
			return nil, err
		}
		if _, dup := a.Maps[m.From]; dup {
			return nil, fmt.Errorf("%w: second map from %s", ErrSyntax, m.From)
		}
		a.Maps[m.From] = m
	}

	// 3) Resolve the chain once so walks never touch the map table.
	for c := Seed; c != Location; {
		m, ok := a.Maps[c]
		if !ok || len(a.chain) > int(Location) {
			return nil, fmt.Errorf("%w: stuck at %s", ErrBrokenChain, c)
		}
		a.chain = append(a.chain, m)
		c = m.To
	}
	return a, nil
}

// parseMap reads one "a-to-b map:" block.
func parseMap(lines []string) (Map, error) {
	header, ok := strings.CutSuffix(strings.TrimSpace(lines[0]), " map:")
	if !ok {
		return Map{}, fmt.Errorf("%w: map header %q", ErrSyntax, lines[0])
	}
	names := strings.Split(header, "-to-")
	if len(names) != 2 {
		return Map{}, fmt.Errorf("%w: map header %q", ErrSyntax, lines[0])
	}
	from, err := ParseCategory(names[0])
	if err != nil {
		return Map{}, err
	}
	to, err := ParseCategory(names[1])
	if err != nil {
		return Map{}, err
	}

	m := Map{From: from, To: to, Offsets: make([]Offset, 0, len(lines)-1)}
	for _, l := range lines[1:] {
		v, err := input.Ints(l)
		if err != nil || len(v) != 3 || v[2] < 1 {
			return Map{}, fmt.Errorf("%w: %s map line %q", ErrSyntax, header, l)
		}
		dest, src, n := v[0], v[1], v[2]
		m.Offsets = append(m.Offsets, Offset{Start: src, End: src + n - 1, Shift: dest - src})
	}
	sort.Slice(m.Offsets, func(i, j int) bool { return m.Offsets[i].Start < m.Offsets[j].Start })
	for i := 1; i < len(m.Offsets); i++ {
		if m.Offsets[i].Start <= m.Offsets[i-1].End {
			return Map{}, fmt.Errorf("%w: %s map at %d", ErrOverlap, header, m.Offsets[i].Start)
		}
	}
	return m, nil
}

// Convert maps n through m. Numbers no offset covers map to themselves.
// Complexity: O(log k).
func (m Map) Convert(n int) int {
	i := sort.Search(len(m.Offsets), func(i int) bool { return m.Offsets[i].End >= n })
	if i < len(m.Offsets) && m.Offsets[i].Contains(n) {
		return n + m.Offsets[i].Shift
	}
	return n
}

// Location walks seed through every map of the chain.
func (a *Almanac) Location(seed int) int {
	n := seed
	for _, m := range a.chain {
		n = m.Convert(n)
	}
	return n
}

// LowestLocation treats every seed value as one seed.
func (a *Almanac) LowestLocation() (int, error) {
	if len(a.Seeds) == 0 {
		return 0, fmt.Errorf("%w: no seeds", ErrSyntax)
	}
	low := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		low = min(low, a.Location(s))
	}
	return low, nil
}

// SeedRanges reads the seed values as (start, length) pairs.
// Zero-length pairs are dropped.
func (a *Almanac) SeedRanges() ([]Range, error) {
	if len(a.Seeds) == 0 || len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrSeedPairs, len(a.Seeds))
	}
	out := make([]Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] > 0 {
			out = append(out, Range{Start: a.Seeds[i], End: a.Seeds[i] + a.Seeds[i+1] - 1})
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: every pair is empty", ErrSeedPairs)
	}
	return out, nil
}
