package almanac

import (
	"errors"
	"fmt"
)

// Sentinel errors for almanac parsing and evaluation.
var (
	// ErrSyntax indicates a malformed seeds line or map block.
	ErrSyntax = errors.New("almanac: malformed input")
	// ErrCategory indicates an unknown category name.
	ErrCategory = errors.New("almanac: unknown category")
	// ErrOverlap indicates two lines of one map covering the same source.
	ErrOverlap = errors.New("almanac: overlapping map lines")
	// ErrBrokenChain indicates no map chain leads from seed to location.
	ErrBrokenChain = errors.New("almanac: no map chain from seed to location")
	// ErrSeedPairs indicates an odd number of seed values in range mode.
	ErrSeedPairs = errors.New("almanac: seed values do not form (start, length) pairs")
)

// Category tags the numbers a map converts between.
type Category int

// Categories in chain order.
const (
	Seed Category = iota
	Soil
	Fertilizer
	Water
	Light
	Temperature
	Humidity
	Location
)

var categoryNames = [...]string{"seed", "soil", "fertilizer", "water", "light", "temperature", "humidity", "location"}

// String returns the name used in map headers.
func (c Category) String() string {
	if c < Seed || c > Location {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory maps a header word to its Category.
func ParseCategory(s string) (Category, error) {
	for i, n := range categoryNames {
		if n == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrCategory, s)
}

// Offset shifts every number in [Start, End] by Shift.
type Offset struct {
	Start, End int // inclusive
	Shift      int
}

// Contains reports whether n lies inside the offset's source interval.
func (o Offset) Contains(n int) bool {
	return o.Start <= n && n <= o.End
}

// Map converts From numbers into To numbers.
// Offsets are sorted by Start and never overlap.
type Map struct {
	From, To Category
	Offsets  []Offset
}

// Range is an inclusive interval of numbers.
type Range struct {
	Start, End int
}

// Almanac is a parsed input: the seed values and the map chain.
type Almanac struct {
	Seeds []int
	Maps  map[Category]Map
	// chain lists the maps from Seed to Location in walking order.
	chain []Map
}
