package almanac

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func mustParse(t *testing.T, s string) *Almanac {
	t.Helper()
	a, err := Parse(s)
	require.NoError(t, err)
	return a
}

func TestParse(t *testing.T) {
	a := mustParse(t, sample)
	assert.Equal(t, []int{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.chain, 7)
	assert.Equal(t, Seed, a.chain[0].From)
	assert.Equal(t, Location, a.chain[6].To)

	want := Map{From: Seed, To: Soil, Offsets: []Offset{
		{Start: 50, End: 97, Shift: 2},
		{Start: 98, End: 99, Shift: -48},
	}}
	if diff := cmp.Diff(want, a.Maps[Seed]); diff != "" {
		t.Errorf("seed-to-soil mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"empty", "", ErrSyntax},
		{"no seeds", "plants: 1 2\n", ErrSyntax},
		{"category", "seeds: 1\n\nseed-to-moon map:\n1 2 3\n", ErrCategory},
		{"header", "seeds: 1\n\nseed to soil:\n1 2 3\n", ErrSyntax},
		{"line", "seeds: 1\n\nseed-to-location map:\n1 2\n", ErrSyntax},
		{"overlap", "seeds: 1\n\nseed-to-location map:\n0 0 5\n10 3 5\n", ErrOverlap},
		{"chain", "seeds: 1\n\nseed-to-soil map:\n1 2 3\n", ErrBrokenChain},
		{"loop", "seeds: 1\n\nseed-to-soil map:\n1 2 3\n\nsoil-to-seed map:\n1 2 3\n", ErrBrokenChain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.in)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestConvert(t *testing.T) {
	a := mustParse(t, sample)
	soil := a.Maps[Seed]
	for seed, want := range map[int]int{0: 0, 49: 49, 50: 52, 79: 81, 97: 99, 98: 50, 99: 51, 100: 100} {
		assert.Equal(t, want, soil.Convert(seed), "seed %d", seed)
	}

	locations := map[int]int{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, want := range locations {
		assert.Equal(t, want, a.Location(seed), "seed %d", seed)
	}
}

func TestSample(t *testing.T) {
	a := mustParse(t, sample)

	low, err := a.LowestLocation()
	require.NoError(t, err)
	assert.Equal(t, 35, low)

	for _, workers := range []int{0, 1, 3, 64} {
		low, err = a.LowestRangeLocationBrute(context.Background(), workers)
		require.NoError(t, err)
		assert.Equal(t, 46, low, "workers=%d", workers)
	}

	low, err = a.LowestRangeLocation()
	require.NoError(t, err)
	assert.Equal(t, 46, low)
}

func TestMapRanges(t *testing.T) {
	m := Map{Offsets: []Offset{
		{Start: 10, End: 19, Shift: 100},
		{Start: 30, End: 39, Shift: -30},
	}}
	got := m.MapRanges([]Range{{Start: 5, End: 35}, {Start: 40, End: 45}, {Start: 12, End: 13}})
	want := []Range{
		{Start: 5, End: 9},
		{Start: 110, End: 119},
		{Start: 20, End: 29},
		{Start: 0, End: 5},
		{Start: 40, End: 45},
		{Start: 112, End: 113},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MapRanges mismatch (-want +got):\n%s", diff)
	}
}

func TestSeedRanges_Errors(t *testing.T) {
	a := mustParse(t, "seeds: 1 2 3\n\nseed-to-location map:\n0 0 1\n")
	_, err := a.SeedRanges()
	assert.ErrorIs(t, err, ErrSeedPairs)
	_, err = a.LowestRangeLocation()
	assert.ErrorIs(t, err, ErrSeedPairs)

	a = mustParse(t, "seeds: 1 0\n\nseed-to-location map:\n0 0 1\n")
	_, err = a.LowestRangeLocationBrute(context.Background(), 2)
	assert.ErrorIs(t, err, ErrSeedPairs)
}

func TestLowestRangeLocationBrute_Cancelled(t *testing.T) {
	a := mustParse(t, sample)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.LowestRangeLocationBrute(ctx, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCategory(t *testing.T) {
	c, err := ParseCategory("humidity")
	require.NoError(t, err)
	assert.Equal(t, Humidity, c)
	assert.Equal(t, "humidity", c.String())
	assert.Equal(t, "Category(42)", Category(42).String())
}
