package cubes_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/cubes"
)

var sample = []string{
	"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
	"Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue",
	"Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red",
	"Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red",
	"Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green",
}

func TestParseGame(t *testing.T) {
	g, err := cubes.ParseGame(sample[0])
	require.NoError(t, err)

	want := cubes.Game{ID: 1, Draws: []cubes.Draw{
		{Red: 4, Blue: 3},
		{Red: 1, Green: 2, Blue: 6},
		{Green: 2},
	}}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("ParseGame mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, cubes.Draw{Red: 4, Green: 2, Blue: 6}, g.MinimalBag())
}

func TestParseGame_Errors(t *testing.T) {
	cases := []struct {
		name string
		line string
		err  error
	}{
		{"no colon", "Game 1 3 blue", cubes.ErrSyntax},
		{"no game", "Round 1: 3 blue", cubes.ErrSyntax},
		{"bad id", "Game x: 3 blue", cubes.ErrSyntax},
		{"bad count", "Game 1: three blue", cubes.ErrSyntax},
		{"colour", "Game 1: 3 purple", cubes.ErrColour},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cubes.ParseGame(tc.line)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestSample(t *testing.T) {
	games, err := cubes.Parse(sample)
	require.NoError(t, err)
	require.Len(t, games, 5)

	assert.Equal(t, 8, cubes.SumPossible(games, cubes.DefaultBag))
	assert.Equal(t, 2286, cubes.SumPower(games))
}
