// Package boatrace counts the ways to beat a toy boat race record.
//
// Holding the button for h of T milliseconds travels h·(T−h) millimetres.
// The winning holds are the integers strictly between the roots of
// h² − T·h + D = 0, found with the quadratic formula and then corrected in
// integer arithmetic so float rounding never miscounts a boundary.
package boatrace

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/aoc/internal/input"
)

// ErrSyntax indicates a race sheet that does not parse.
var ErrSyntax = errors.New("boatrace: malformed race sheet")

// Race is one race: its duration and the distance to beat.
type Race struct {
	Time, Record int
}

// Parse reads the "Time:" and "Distance:" lines as separate races.
func Parse(lines []string) ([]Race, error) {
	times, dists, err := columns(lines)
	if err != nil {
		return nil, err
	}
	tv, err := input.Ints(times)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	dv, err := input.Ints(dists)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if len(tv) != len(dv) || len(tv) == 0 {
		return nil, fmt.Errorf("%w: %d times but %d distances", ErrSyntax, len(tv), len(dv))
	}
	races := make([]Race, len(tv))
	for i := range tv {
		races[i] = Race{Time: tv[i], Record: dv[i]}
	}
	return races, nil
}

// ParseJoined reads both lines as one race, ignoring the spaces between digits.
func ParseJoined(lines []string) (Race, error) {
	times, dists, err := columns(lines)
	if err != nil {
		return Race{}, err
	}
	races, err := Parse([]string{
		"Time: " + strings.Join(strings.Fields(times), ""),
		"Distance: " + strings.Join(strings.Fields(dists), ""),
	})
	if err != nil {
		return Race{}, err
	}
	return races[0], nil
}

func columns(lines []string) (times, dists string, err error) {
	if len(lines) < 2 {
		return "", "", fmt.Errorf("%w: want Time and Distance lines", ErrSyntax)
	}
	times, ok := strings.CutPrefix(strings.TrimSpace(lines[0]), "Time:")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrSyntax, lines[0])
	}
	dists, ok = strings.CutPrefix(strings.TrimSpace(lines[1]), "Distance:")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrSyntax, lines[1])
	}
	return times, dists, nil
}

// beats reports whether holding for h beats the record.
func (r Race) beats(h int) bool {
	return h*(r.Time-h) > r.Record
}

// Wins counts the hold times that beat the record.
// Complexity: O(1).
func (r Race) Wins() int {
	disc := float64(r.Time)*float64(r.Time) - 4*float64(r.Record)
	if disc < 0 {
		return 0
	}
	lo := int(math.Floor((float64(r.Time)-math.Sqrt(disc))/2)) + 1
	lo = max(lo, 0)
	for lo > 0 && r.beats(lo-1) {
		lo--
	}
	for lo <= r.Time/2 && !r.beats(lo) {
		lo++
	}
	if lo > r.Time/2 && !r.beats(lo) {
		return 0
	}
	// h·(T−h) is symmetric around T/2.
	hi := r.Time - lo
	return hi - lo + 1
}

// Product multiplies the win counts of all races.
func Product(races []Race) int {
	p := 1
	for _, r := range races {
		p *= r.Wins()
	}
	return p
}
