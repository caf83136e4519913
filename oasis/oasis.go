// Package oasis extrapolates value histories with a difference pyramid.
//
// Each row of the pyramid holds the differences of the row above until a row
// is all zeroes. The next value of a history is the sum of the last entries
// of every row; the previous value alternates the signs of the first entries.
package oasis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc/internal/input"
)

// ErrEmptyHistory is returned for a history without values.
var ErrEmptyHistory = errors.New("oasis: empty history")

// Pyramid returns the history followed by its difference rows, ending with
// the first all-zero row (or a single-value row).
func Pyramid(history []int) ([][]int, error) {
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}
	rows := [][]int{history}
	for cur := history; !allZero(cur) && len(cur) > 1; {
		next := make([]int, len(cur)-1)
		for i := range next {
			next[i] = cur[i+1] - cur[i]
		}
		rows = append(rows, next)
		cur = next
	}
	return rows, nil
}

func allZero(xs []int) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}

// Next extrapolates the value after the history.
func Next(history []int) (int, error) {
	rows, err := Pyramid(history)
	if err != nil {
		return 0, err
	}
	v := 0
	for i := len(rows) - 1; i >= 0; i-- {
		v += rows[i][len(rows[i])-1]
	}
	return v, nil
}

// Previous extrapolates the value before the history, folding the first
// entries from the bottom row up.
func Previous(history []int) (int, error) {
	rows, err := Pyramid(history)
	if err != nil {
		return 0, err
	}
	v := 0
	for i := len(rows) - 1; i >= 0; i-- {
		v = rows[i][0] - v
	}
	return v, nil
}

// Parse reads one whitespace-separated history per non-empty line.
func Parse(lines []string) ([][]int, error) {
	var out [][]int
	for n, l := range lines {
		h, err := input.Ints(l)
		if err != nil {
			return nil, fmt.Errorf("oasis: line %d: %w", n+1, err)
		}
		if len(h) > 0 {
			out = append(out, h)
		}
	}
	return out, nil
}

// SumNext adds up the next value of every history.
func SumNext(histories [][]int) (int, error) {
	return sum(histories, Next)
}

// SumPrevious adds up the previous value of every history.
func SumPrevious(histories [][]int) (int, error) {
	return sum(histories, Previous)
}

func sum(histories [][]int, f func([]int) (int, error)) (int, error) {
	total := 0
	for _, h := range histories {
		v, err := f(h)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}
