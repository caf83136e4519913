package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aoc/gridgraph"
)

type GridSuite struct {
	suite.Suite
	g *gridgraph.Grid
}

func (s *GridSuite) SetupTest() {
	// 4-connected by default; individual tests may override
	g, err := gridgraph.FromLines([]string{
		"#..#",
		"#.##",
		"..#.",
	}, gridgraph.DefaultGridOptions())
	s.Require().NoError(err)
	s.g = g
}

func (s *GridSuite) TestFindAndIndex() {
	require := require.New(s.T())
	x, y, ok := s.g.Find('#')
	require.True(ok)
	require.Equal([2]int{0, 0}, [2]int{x, y})

	all := s.g.FindAll('#')
	require.Equal([]int{0, 3, 4, 6, 7, 10}, all)
	for _, idx := range all {
		cx, cy := s.g.Coordinate(idx)
		require.Equal(idx, s.g.Index(cx, cy), "index round trip")
	}

	_, _, ok = s.g.Find('S')
	require.False(ok)
}

func (s *GridSuite) TestSetDoesNotAliasInput() {
	require := require.New(s.T())
	rows := [][]byte{[]byte("ab"), []byte("cd")}
	g, err := gridgraph.NewGrid(rows, gridgraph.DefaultGridOptions())
	require.NoError(err)

	g.Set(0, 0, 'z')
	require.Equal(byte('z'), g.At(0, 0))
	require.Equal(byte('a'), rows[0][0], "caller rows untouched")
	require.Equal("zb\ncd", g.String())
}

func (s *GridSuite) TestComponentsByConnectivity() {
	require := require.New(s.T())
	wall := func(b byte) bool { return b == '#' }
	// Conn4: {(0,0),(0,1)}, {(3,0),(3,1),(2,1),(2,2)}
	require.Len(s.g.ConnectedComponents(wall), 2)

	// Conn8 joins nothing new here; the two groups are two columns apart.
	g8, err := gridgraph.FromLines([]string{"#..#", "#.##", "..#."}, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	require.NoError(err)
	require.Len(g8.ConnectedComponents(wall), 2)
	require.Len(g8.NeighborOffsets(), 8)
	require.Len(s.g.NeighborOffsets(), 4)
}

func (s *GridSuite) TestFlood() {
	require := require.New(s.T())
	open := func(b byte) bool { return b == '.' }

	mask, err := s.g.Flood(1, 0, open)
	require.NoError(err)
	reached := 0
	for _, m := range mask {
		if m {
			reached++
		}
	}
	// (1,0) (2,0) (1,1) (1,2) (0,2)
	require.Equal(5, reached)
	require.False(mask[s.g.Index(3, 2)], "(3,2) is walled off")

	mask, err = s.g.Flood(0, 0, open)
	require.NoError(err)
	require.NotContains(mask, true, "a wall seed reaches nothing")

	_, err = s.g.Flood(4, 0, open)
	require.ErrorIs(err, gridgraph.ErrOutOfBounds)
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}
