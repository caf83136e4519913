package pipes

import (
	"github.com/katalvlaran/aoc/gridgraph"
)

// Symbols on the expanded grid.
const (
	open    = '.'
	wall    = '#'
	outside = 'O'
)

// Expand draws l onto a (2W+1)×(2H+1) grid. Tile (x,y) maps to
// (2x+1, 2y+1); the cell between two consecutive tiles is drawn as well.
func (f *Field) Expand(l Loop) (*gridgraph.Grid, error) {
	g, err := gridgraph.Blank(2*f.grid.Width+1, 2*f.grid.Height+1, open, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	n := len(l.Path)
	for i, p := range l.Path {
		q := l.Path[(i+1)%n]
		g.Set(2*p.X+1, 2*p.Y+1, wall)
		g.Set(p.X+q.X+1, p.Y+q.Y+1, wall)
	}
	return g, nil
}

// EnclosedTiles counts the tiles inside the main loop.
func (f *Field) EnclosedTiles() (int, error) {
	l, err := f.MainLoop()
	if err != nil {
		return 0, err
	}
	g, err := f.Expand(l)
	if err != nil {
		return 0, err
	}

	// 1) Flood the outside from the corner, which the loop never covers.
	mask, err := g.Flood(0, 0, func(b byte) bool { return b == open })
	if err != nil {
		return 0, err
	}
	for i, out := range mask {
		if out {
			x, y := g.Coordinate(i)
			g.Set(x, y, outside)
		}
	}

	// 2) Count untouched tile cells.
	count := 0
	for y := 1; y < g.Height; y += 2 {
		for x := 1; x < g.Width; x += 2 {
			if g.At(x, y) == open {
				count++
			}
		}
	}
	return count, nil
}
