package gridgraph

import (
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later Set calls never alias the caller's rows.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(rows [][]byte, opts GridOptions) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]byte, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]byte, w)
		copy(cells[y], rows[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		Width:   w,
		Height:  h,
		Cells:   cells,
		Conn:    opts.Conn,
		offsets: offsets,
	}, nil
}

// FromLines builds a Grid from text lines, one row per line.
func FromLines(lines []string, opts GridOptions) (*Grid, error) {
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}
	return NewGrid(rows, opts)
}

// Blank returns a w×h grid filled with fill.
func Blank(w, h int, fill byte, opts GridOptions) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(string(fill), w))
	}
	return NewGrid(rows, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the symbol at (x,y). The caller must check InBounds first.
func (g *Grid) At(x, y int) byte {
	return g.Cells[y][x]
}

// Set overwrites the symbol at (x,y).
func (g *Grid) Set(x, y int, b byte) {
	g.Cells[y][x] = b
}

// NeighborOffsets returns the precomputed neighbor offsets for g.Conn.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.offsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Find returns the first cell holding b in row-major order.
func (g *Grid) Find(b byte) (x, y int, ok bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] == b {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// FindAll returns the row-major indices of every cell holding b.
func (g *Grid) FindAll(b byte) []int {
	var out []int
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] == b {
				out = append(out, g.Index(x, y))
			}
		}
	}
	return out
}

// String renders the grid one row per line, without a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for y, row := range g.Cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}
