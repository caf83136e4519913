package pipes

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc/gridgraph"
)

// Sentinel errors for maze parsing and tracing.
var (
	// ErrSymbol indicates a tile that is not a known shape.
	ErrSymbol = errors.New("pipes: unknown tile")
	// ErrNoStart indicates a maze without an S tile.
	ErrNoStart = errors.New("pipes: no start tile")
	// ErrManyStarts indicates a maze with more than one S tile.
	ErrManyStarts = errors.New("pipes: more than one start tile")
	// ErrEdge ends a trace that stepped off the grid.
	ErrEdge = errors.New("pipes: trace left the grid")
	// ErrMismatch ends a trace that entered a tile not open towards it.
	ErrMismatch = errors.New("pipes: tile does not connect")
	// ErrNoLoop indicates that no heading from the start closes a loop.
	ErrNoLoop = errors.New("pipes: no loop through start")
)

// Direction is a compass heading.
type Direction int

// Headings in the order traces are tried.
const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every heading in trial order.
var Directions = [4]Direction{North, East, South, West}

var directionNames = [...]string{"N", "E", "S", "W"}

func (d Direction) String() string {
	if d < North || d > West {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the grid offset of one step; y grows southwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Pipe is a tile shape, stored as its map symbol.
type Pipe byte

// Tile shapes.
const (
	Ground     Pipe = '.'
	Vertical   Pipe = '|'
	Horizontal Pipe = '-'
	NorthEast  Pipe = 'L'
	SouthEast  Pipe = 'F'
	SouthWest  Pipe = '7'
	NorthWest  Pipe = 'J'
	Start      Pipe = 'S'
)

// openings lists the two sides each connector opens to.
var openings = map[Pipe][2]Direction{
	Vertical:   {North, South},
	Horizontal: {East, West},
	NorthEast:  {North, East},
	SouthEast:  {East, South},
	SouthWest:  {South, West},
	NorthWest:  {West, North},
}

// Valid reports whether p is a known tile.
func (p Pipe) Valid() bool {
	_, ok := openings[p]
	return ok || p == Ground || p == Start
}

// Exit returns the heading out of p for a trace moving in heading.
// The tile must open on the side the trace arrives from.
func (p Pipe) Exit(heading Direction) (Direction, bool) {
	o, ok := openings[p]
	if !ok {
		return 0, false
	}
	from := heading.Opposite()
	switch from {
	case o[0]:
		return o[1], true
	case o[1]:
		return o[0], true
	}
	return 0, false
}

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Loop is a closed trace. Path starts at the start tile and lists every tile
// in walking order; the tile after the last one is the start again.
type Loop struct {
	Heading Direction
	Path    []Point
}

// Length is the number of steps around the loop.
func (l Loop) Length() int {
	return len(l.Path)
}

// Attempt is the outcome of tracing from the start in one heading:
// either a Loop or the error that ended the trace.
type Attempt struct {
	Heading Direction
	Loop    *Loop
	Err     error
}

// Field is a parsed maze.
type Field struct {
	grid  *gridgraph.Grid
	Start Point
}
