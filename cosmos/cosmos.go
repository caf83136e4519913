// Package cosmos measures distances between galaxies in an expanding image.
//
// Every row and every column without a galaxy ('#') grows by a factor while
// light travels; the answer is the sum of manhattan distances over all
// galaxy pairs after the growth.
package cosmos

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/aoc/gridgraph"
)

// Sentinel errors for image parsing and expansion.
var (
	// ErrSymbol indicates a pixel other than '.' or '#'.
	ErrSymbol = errors.New("cosmos: unknown pixel")
	// ErrFactor indicates an expansion factor below 1.
	ErrFactor = errors.New("cosmos: expansion factor must be at least 1")
)

const galaxy = '#'

// Galaxy is a galaxy position.
type Galaxy struct {
	X, Y int
}

// Image is a parsed observation.
type Image struct {
	grid     *gridgraph.Grid
	Galaxies []Galaxy
}

// Parse reads an image and locates every galaxy in row-major order.
func Parse(lines []string) (*Image, error) {
	g, err := gridgraph.FromLines(lines, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("cosmos: %w", err)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if b := g.At(x, y); b != '.' && b != galaxy {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrSymbol, b, x, y)
			}
		}
	}
	im := &Image{grid: g}
	for _, idx := range g.FindAll(galaxy) {
		x, y := g.Coordinate(idx)
		im.Galaxies = append(im.Galaxies, Galaxy{X: x, Y: y})
	}
	return im, nil
}

// EmptyRows lists the rows without a galaxy.
func (im *Image) EmptyRows() []int {
	used := make([]bool, im.grid.Height)
	for _, g := range im.Galaxies {
		used[g.Y] = true
	}
	return unused(used)
}

// EmptyCols lists the columns without a galaxy.
func (im *Image) EmptyCols() []int {
	used := make([]bool, im.grid.Width)
	for _, g := range im.Galaxies {
		used[g.X] = true
	}
	return unused(used)
}

func unused(used []bool) []int {
	var out []int
	for i, u := range used {
		if !u {
			out = append(out, i)
		}
	}
	return out
}

// Expanded returns the galaxy positions after every empty row and column has
// grown to factor rows or columns.
func (im *Image) Expanded(factor int) ([]Galaxy, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrFactor, factor)
	}
	dx := shifts(im.grid.Width, im.EmptyCols(), factor)
	dy := shifts(im.grid.Height, im.EmptyRows(), factor)

	out := make([]Galaxy, len(im.Galaxies))
	for i, g := range im.Galaxies {
		out[i] = Galaxy{X: g.X + dx[g.X], Y: g.Y + dy[g.Y]}
	}
	return out, nil
}

// shifts returns, per index, how far it moves once every empty index
// before it has grown by factor-1.
func shifts(n int, empties []int, factor int) []int {
	out := make([]int, n)
	grown, e := 0, 0
	for i := 0; i < n; i++ {
		for e < len(empties) && empties[e] < i {
			grown += factor - 1
			e++
		}
		out[i] = grown
	}
	return out
}

// SumDistances adds up the manhattan distance of every galaxy pair after
// expansion by factor.
// Complexity: O(G²) for G galaxies.
func (im *Image) SumDistances(factor int) (int, error) {
	gs, err := im.Expanded(factor)
	if err != nil {
		return 0, err
	}
	sum := 0
	for i := range gs {
		for j := i + 1; j < len(gs); j++ {
			sum += Manhattan(gs[i], gs[j])
		}
	}
	return sum, nil
}

// Manhattan is |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Galaxy) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
