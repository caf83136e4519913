package schematic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc/gridgraph"
)

// ErrEmpty is returned for a schematic without rows.
var ErrEmpty = errors.New("schematic: empty schematic")

// Number is a run of digits on row Y spanning columns X..X+Len-1.
type Number struct {
	Value, X, Y, Len int
}

// Schematic indexes the numbers of an engine grid.
type Schematic struct {
	grid    *gridgraph.Grid
	Numbers []Number
	// owner maps a cell index to the Numbers entry covering it, or -1.
	owner []int
}

// Parse builds a Schematic from its text rows.
func Parse(lines []string) (*Schematic, error) {
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	g, err := gridgraph.FromLines(lines, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	if err != nil {
		return nil, fmt.Errorf("schematic: %w", err)
	}

	s := &Schematic{grid: g, owner: make([]int, g.Width*g.Height)}
	for i := range s.owner {
		s.owner[i] = -1
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; {
			if !isDigit(g.At(x, y)) {
				x++
				continue
			}
			n := Number{X: x, Y: y}
			for ; x < g.Width && isDigit(g.At(x, y)); x++ {
				n.Value = n.Value*10 + int(g.At(x, y)-'0')
				n.Len++
				s.owner[g.Index(x, y)] = len(s.Numbers)
			}
			s.Numbers = append(s.Numbers, n)
		}
	}
	return s, nil
}

// IsSymbol reports whether b marks a part: anything but a digit or '.'.
func IsSymbol(b byte) bool {
	return b != '.' && !isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// PartNumbers returns the numbers adjacent to at least one symbol.
func (s *Schematic) PartNumbers() []Number {
	var parts []Number
	for _, n := range s.Numbers {
		if s.touchesSymbol(n) {
			parts = append(parts, n)
		}
	}
	return parts
}

func (s *Schematic) touchesSymbol(n Number) bool {
	for x := n.X; x < n.X+n.Len; x++ {
		for _, d := range s.grid.NeighborOffsets() {
			vx, vy := x+d[0], n.Y+d[1]
			if s.grid.InBounds(vx, vy) && IsSymbol(s.grid.At(vx, vy)) {
				return true
			}
		}
	}
	return false
}

// SumPartNumbers adds up every part number.
func (s *Schematic) SumPartNumbers() int {
	sum := 0
	for _, n := range s.PartNumbers() {
		sum += n.Value
	}
	return sum
}

// GearRatios returns the ratio of each '*' touching exactly two numbers,
// in row-major order of the gears.
func (s *Schematic) GearRatios() []int {
	var ratios []int
	for _, idx := range s.grid.FindAll('*') {
		adj := s.adjacentNumbers(idx)
		if len(adj) == 2 {
			ratios = append(ratios, s.Numbers[adj[0]].Value*s.Numbers[adj[1]].Value)
		}
	}
	return ratios
}

// adjacentNumbers lists the distinct numbers around cell idx.
func (s *Schematic) adjacentNumbers(idx int) []int {
	x, y := s.grid.Coordinate(idx)
	var out []int
	for _, d := range s.grid.NeighborOffsets() {
		vx, vy := x+d[0], y+d[1]
		if !s.grid.InBounds(vx, vy) {
			continue
		}
		o := s.owner[s.grid.Index(vx, vy)]
		if o < 0 || contains(out, o) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// SumGearRatios adds up every gear ratio.
func (s *Schematic) SumGearRatios() int {
	sum := 0
	for _, r := range s.GearRatios() {
		sum += r
	}
	return sum
}
