// Package scratchcards scores scratchcards and plays out their copy cascade.
//
// A card reads "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
// The numbers left of '|' are winning numbers, the ones right of it are
// the numbers the card holds.
package scratchcards

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/internal/input"
)

// ErrSyntax indicates a card line that does not parse.
var ErrSyntax = errors.New("scratchcards: malformed card")

// Card is one scratchcard.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// ParseCard parses one card line.
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing ':' in %q", ErrSyntax, line)
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Card")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing 'Card' in %q", ErrSyntax, line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Card{}, fmt.Errorf("%w: card id %q", ErrSyntax, idText)
	}
	left, right, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing '|' on card %d", ErrSyntax, id)
	}
	c := Card{ID: id}
	if c.Winning, err = input.Ints(left); err != nil {
		return Card{}, fmt.Errorf("%w: card %d: %v", ErrSyntax, id, err)
	}
	if c.Have, err = input.Ints(right); err != nil {
		return Card{}, fmt.Errorf("%w: card %d: %v", ErrSyntax, id, err)
	}
	return c, nil
}

// Parse parses one card per non-empty line.
func Parse(lines []string) ([]Card, error) {
	cards := make([]Card, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		c, err := ParseCard(l)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Matches counts the held numbers that are also winning numbers.
// Duplicates on either side count once.
func (c Card) Matches() int {
	win := make(map[int]struct{}, len(c.Winning))
	for _, w := range c.Winning {
		win[w] = struct{}{}
	}
	n := 0
	for _, h := range c.Have {
		if _, ok := win[h]; ok {
			n++
			delete(win, h)
		}
	}
	return n
}

// Points is 1 for the first match, doubled for each further match.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// TotalPoints adds up the points of all cards.
func TotalPoints(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return sum
}

// CountCopies plays the cascade: a card with m matches wins one copy of each
// of the next m cards, for every copy of itself held. Copies never extend
// past the last card. Returns the total number of cards held.
func CountCopies(cards []Card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, c := range cards {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return total
}
