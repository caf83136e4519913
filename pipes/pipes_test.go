package pipes_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/gridgraph"
	"github.com/katalvlaran/aoc/pipes"
)

func field(t *testing.T, s string) *pipes.Field {
	t.Helper()
	f, err := pipes.Parse(strings.Split(strings.TrimSpace(s), "\n"))
	require.NoError(t, err)
	return f
}

const square = `
.....
.S-7.
.|.|.
.L-J.
.....`

// TestFindLoops_Square traces the 4×4 square with S in the north-west corner.
// East and south both close the same 8-tile loop, walked in opposite order.
func TestFindLoops_Square(t *testing.T) {
	f := field(t, square)
	attempts := f.FindLoops()
	require.Len(t, attempts, 4)

	assert.ErrorIs(t, attempts[0].Err, pipes.ErrMismatch)
	assert.ErrorIs(t, attempts[3].Err, pipes.ErrMismatch)
	for _, a := range attempts[1:3] {
		require.NoError(t, a.Err, "heading %s", a.Heading)
		require.NotNil(t, a.Loop)
		assert.Equal(t, 8, a.Loop.Length(), "heading %s", a.Heading)
	}
	assert.Equal(t, pipes.Point{X: 2, Y: 1}, attempts[1].Loop.Path[1])
	assert.Equal(t, pipes.Point{X: 1, Y: 2}, attempts[2].Loop.Path[1])

	loops := f.DistinctLoops()
	require.Len(t, loops, 1)
	assert.Equal(t, pipes.East, loops[0].Heading)

	p, d, err := f.Farthest()
	require.NoError(t, err)
	assert.Equal(t, 4, d)
	assert.Equal(t, pipes.Point{X: 3, Y: 3}, p)
}

func TestFarthest(t *testing.T) {
	cases := []struct {
		name string
		maze string
		want int
	}{
		{"simple", "-L|F7\n7S-7|\nL|7||\n-L-J|\nL|-JF", 4},
		{"complex", "7-F7-\n.FJ|7\nSJLL7\n|F--J\nLJ.LJ", 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, d, err := field(t, tc.maze).Farthest()
			require.NoError(t, err)
			assert.Equal(t, tc.want, d)
		})
	}
}

func TestTrace_Edge(t *testing.T) {
	f := field(t, "7-F7-\n.FJ|7\nSJLL7\n|F--J\nLJ.LJ")
	_, err := f.Trace(pipes.West)
	assert.ErrorIs(t, err, pipes.ErrEdge)
	_, err = f.Trace(pipes.North)
	assert.ErrorIs(t, err, pipes.ErrMismatch)
}

func TestEnclosedTiles(t *testing.T) {
	cases := []struct {
		name string
		maze string
		want int
	}{
		{"square", square, 1},
		{"open", `
...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........`, 4},
		{"squeezed", `
..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........`, 4},
		{"larger", `
.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...`, 8},
		{"junk", `
FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L`, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := field(t, tc.maze).EnclosedTiles()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExpand(t *testing.T) {
	f := field(t, square)
	l, err := f.MainLoop()
	require.NoError(t, err)
	g, err := f.Expand(l)
	require.NoError(t, err)
	assert.Equal(t, 11, g.Width)
	assert.Equal(t, 11, g.Height)
	assert.Len(t, g.FindAll('#'), 16)
	assert.Equal(t, byte('#'), g.At(3, 3))
	assert.Equal(t, byte('#'), g.At(4, 3))
	assert.Equal(t, byte('.'), g.At(5, 5))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"empty", nil, gridgraph.ErrEmptyGrid},
		{"symbol", []string{"S-X"}, pipes.ErrSymbol},
		{"no start", []string{"F7", "LJ"}, pipes.ErrNoStart},
		{"two starts", []string{"S7", "LS"}, pipes.ErrManyStarts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipes.Parse(tc.lines)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := field(t, "S-.").MainLoop()
	assert.ErrorIs(t, err, pipes.ErrNoLoop)
	_, err = field(t, "S-.").EnclosedTiles()
	assert.ErrorIs(t, err, pipes.ErrNoLoop)
}

func TestPipeExit(t *testing.T) {
	cases := []struct {
		pipe    pipes.Pipe
		heading pipes.Direction
		want    pipes.Direction
		ok      bool
	}{
		{pipes.Vertical, pipes.North, pipes.North, true},
		{pipes.Vertical, pipes.East, 0, false},
		{pipes.NorthEast, pipes.South, pipes.East, true},
		{pipes.NorthEast, pipes.West, pipes.North, true},
		{pipes.SouthWest, pipes.East, pipes.South, true},
		{pipes.SouthWest, pipes.North, pipes.West, true},
		{pipes.Ground, pipes.North, 0, false},
		{pipes.Start, pipes.North, 0, false},
	}
	for _, tc := range cases {
		got, ok := tc.pipe.Exit(tc.heading)
		assert.Equal(t, tc.ok, ok, "%q heading %s", tc.pipe, tc.heading)
		if ok {
			assert.Equal(t, tc.want, got, "%q heading %s", tc.pipe, tc.heading)
		}
	}
	assert.Equal(t, pipes.South, pipes.North.Opposite())
	assert.Equal(t, "W", pipes.West.String())
}
