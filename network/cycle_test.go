package network

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCycle(t *testing.T) {
	n, err := Parse("LR\n\n11A = (11B, XXX)\n11B = (XXX, 11Z)\n11Z = (11B, XXX)\n" +
		"22A = (22B, XXX)\n22B = (22C, 22C)\n22C = (22Z, 22Z)\n22Z = (22B, 22B)\nXXX = (XXX, XXX)\n")
	require.NoError(t, err)

	cases := []struct {
		start string
		want  Trace
	}{
		{"11A", Trace{Start: "11A", Phase: 2, Length: 2, Transient: []int{2}, Offsets: []int{4}}},
		{"22A", Trace{Start: "22A", Phase: 2, Length: 6, Offsets: []int{3, 6}}},
		{"XXX", Trace{Start: "XXX", Phase: 0, Length: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.start, func(t *testing.T) {
			got, err := n.FindCycle(tc.start, EndsWith('Z'))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("FindCycle(%s) mismatch (-want +got):\n%s", tc.start, diff)
			}
		})
	}

	_, err = n.FindCycle("11A", EndsWith('Z'), WithMaxSteps(3))
	assert.ErrorIs(t, err, ErrNoCycle)
	assert.ErrorIs(t, err, ErrStepLimit)
}

func TestTraceAccepts(t *testing.T) {
	tr := Trace{Phase: 2, Length: 6, Transient: []int{1}, Offsets: []int{3, 6}}
	var got []int
	for s := 0; s <= 20; s++ {
		if tr.Accepts(s) {
			got = append(got, s)
		}
	}
	assert.Equal(t, []int{1, 3, 6, 9, 12, 15, 18}, got)
	assert.Equal(t, []Cycle{{Offset: 3, Length: 6}, {Offset: 6, Length: 6}}, tr.Cycles())
}

func TestCombine(t *testing.T) {
	cases := []struct {
		name string
		a, b Cycle
		want Cycle
	}{
		{"coprime", Cycle{2, 3}, Cycle{3, 5}, Cycle{8, 15}},
		{"swapped", Cycle{3, 5}, Cycle{2, 3}, Cycle{8, 15}},
		{"same", Cycle{5, 7}, Cycle{5, 7}, Cycle{5, 7}},
		{"late offset", Cycle{10, 3}, Cycle{1, 3}, Cycle{10, 3}},
		{"shared factor", Cycle{6, 6}, Cycle{4, 2}, Cycle{6, 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Combine(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := Combine(Cycle{0, 4}, Cycle{1, 2})
	assert.ErrorIs(t, err, ErrNoCommonStep)
	_, err = Combine(Cycle{0, 0}, Cycle{1, 2})
	assert.ErrorIs(t, err, ErrNoCommonStep)
}

// TestCombine_MatchesSearch checks Combine against a direct scan for the
// smallest step congruent to both offsets.
func TestCombine_MatchesSearch(t *testing.T) {
	for la := 1; la <= 6; la++ {
		for lb := 1; lb <= 6; lb++ {
			for oa := 0; oa <= 7; oa++ {
				for ob := 0; ob <= 7; ob++ {
					a, b := Cycle{oa, la}, Cycle{ob, lb}
					want, found := -1, false
					for s := max(oa, ob); s <= max(oa, ob)+la*lb; s++ {
						if (s-oa)%la == 0 && (s-ob)%lb == 0 {
							want, found = s, true
							break
						}
					}
					got, err := Combine(a, b)
					if !found {
						require.ErrorIs(t, err, ErrNoCommonStep, "%+v %+v", a, b)
						continue
					}
					require.NoError(t, err, "%+v %+v", a, b)
					require.Equal(t, Cycle{want, Lcm(la, lb)}, got, "%+v %+v", a, b)
				}
			}
		}
	}
}

func TestGcdLcm(t *testing.T) {
	assert.Equal(t, 6, Gcd(12, 18))
	assert.Equal(t, 2, Gcd(-4, 6))
	assert.Equal(t, 5, Gcd(0, 5))
	assert.Equal(t, uint64(4), Gcd[uint64](8, 12))
	assert.Equal(t, 12, Lcm(4, 6))
	assert.Equal(t, 12, Lcm(-4, 6))
	assert.Equal(t, 0, Lcm(0, 5))
	assert.Equal(t, int64(20523), Lcm[int64](20523, 20523))
}
