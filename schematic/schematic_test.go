package schematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{
	"467..114..",
	"...*......",
	"..35..633.",
	"......#...",
	"617*......",
	".....+.58.",
	"..592.....",
	"......755.",
	"...$.*....",
	".664.598..",
}

func TestParse_Numbers(t *testing.T) {
	s, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, s.Numbers, 10)
	assert.Equal(t, Number{Value: 467, X: 0, Y: 0, Len: 3}, s.Numbers[0])
	assert.Equal(t, Number{Value: 598, X: 5, Y: 9, Len: 3}, s.Numbers[9])
	assert.Equal(t, 0, s.owner[s.grid.Index(2, 0)])
	assert.Equal(t, -1, s.owner[s.grid.Index(3, 0)])
}

func TestSample(t *testing.T) {
	s, err := Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, 4361, s.SumPartNumbers())
	assert.Equal(t, []int{16345, 451490}, s.GearRatios())
	assert.Equal(t, 467835, s.SumGearRatios())
}

func TestEdges(t *testing.T) {
	// Numbers at the grid border touch symbols; neither star is a gear.
	s, err := Parse([]string{
		"..12",
		"*..#",
		"5.*.",
	})
	require.NoError(t, err)
	assert.Equal(t, 12+5, s.SumPartNumbers())
	assert.Empty(t, s.GearRatios())

	_, err = Parse(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestIsSymbol(t *testing.T) {
	for _, b := range []byte("*#$+/@=%&-") {
		assert.True(t, IsSymbol(b), "%q", b)
	}
	for _, b := range []byte(".0123456789") {
		assert.False(t, IsSymbol(b), "%q", b)
	}
}
