package pipes

import (
	"fmt"

	"github.com/katalvlaran/aoc/gridgraph"
)

// Parse builds a Field from maze rows. Exactly one S tile is required.
func Parse(lines []string) (*Field, error) {
	g, err := gridgraph.FromLines(lines, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("pipes: %w", err)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !Pipe(g.At(x, y)).Valid() {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrSymbol, g.At(x, y), x, y)
			}
		}
	}
	starts := g.FindAll(byte(Start))
	switch len(starts) {
	case 0:
		return nil, ErrNoStart
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d found", ErrManyStarts, len(starts))
	}
	x, y := g.Coordinate(starts[0])
	return &Field{grid: g, Start: Point{X: x, Y: y}}, nil
}

// Width is the maze width in tiles.
func (f *Field) Width() int { return f.grid.Width }

// Height is the maze height in tiles.
func (f *Field) Height() int { return f.grid.Height }

// Trace walks from the start in heading until it closes a loop or fails
// with ErrEdge or ErrMismatch.
func (f *Field) Trace(heading Direction) (Loop, error) {
	path := []Point{f.Start}
	p, d := f.Start, heading
	limit := f.grid.Width * f.grid.Height
	for len(path) <= limit {
		dx, dy := d.Delta()
		p = Point{X: p.X + dx, Y: p.Y + dy}
		if !f.grid.InBounds(p.X, p.Y) {
			return Loop{}, fmt.Errorf("%w: heading %s from %v", ErrEdge, d, path[len(path)-1])
		}
		if p == f.Start {
			return Loop{Heading: heading, Path: path}, nil
		}
		tile := Pipe(f.grid.At(p.X, p.Y))
		next, ok := tile.Exit(d)
		if !ok {
			return Loop{}, fmt.Errorf("%w: %q at %v entered heading %s", ErrMismatch, tile, p, d)
		}
		path = append(path, p)
		d = next
	}
	return Loop{}, fmt.Errorf("%w: trace %s exceeded %d tiles", ErrNoLoop, heading, limit)
}

// FindLoops traces every heading from the start, in N, E, S, W order.
func (f *Field) FindLoops() []Attempt {
	out := make([]Attempt, 0, len(Directions))
	for _, d := range Directions {
		l, err := f.Trace(d)
		a := Attempt{Heading: d, Err: err}
		if err == nil {
			a.Loop = &l
		}
		out = append(out, a)
	}
	return out
}

// DistinctLoops returns the closed loops, dropping any loop that only
// walks an earlier one in reverse.
func (f *Field) DistinctLoops() []Loop {
	var out []Loop
	for _, a := range f.FindLoops() {
		if a.Loop == nil {
			continue
		}
		dup := false
		for _, l := range out {
			if sameCycle(l, *a.Loop) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, *a.Loop)
		}
	}
	return out
}

// sameCycle reports whether b visits the tiles of a in the same or the
// reverse order, both starting at the start tile.
func sameCycle(a, b Loop) bool {
	n := len(a.Path)
	if n != len(b.Path) {
		return false
	}
	fwd, rev := true, true
	for i := 0; i < n && (fwd || rev); i++ {
		if a.Path[i] != b.Path[i] {
			fwd = false
		}
		if a.Path[i] != b.Path[(n-i)%n] {
			rev = false
		}
	}
	return fwd || rev
}

// MainLoop returns the first loop through the start, or ErrNoLoop.
func (f *Field) MainLoop() (Loop, error) {
	loops := f.DistinctLoops()
	if len(loops) == 0 {
		return Loop{}, ErrNoLoop
	}
	return loops[0], nil
}

// Farthest returns the loop tile farthest from the start along the loop and
// its distance, Length/2.
func (f *Field) Farthest() (Point, int, error) {
	l, err := f.MainLoop()
	if err != nil {
		return Point{}, 0, err
	}
	half := l.Length() / 2
	return l.Path[half], half, nil
}
