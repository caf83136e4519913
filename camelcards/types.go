package camelcards

import (
	"errors"
	"fmt"
)

// Sentinel errors for hand parsing.
var (
	// ErrSyntax indicates a line that is not "CARDS BID".
	ErrSyntax = errors.New("camelcards: malformed hand")
	// ErrCard indicates an unknown card label.
	ErrCard = errors.New("camelcards: unknown card")
)

// Card is a card's strength; higher beats lower.
type Card int

// Card strengths. Joker only appears under joker rules.
const (
	Joker Card = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// HandType classifies a hand; higher beats lower.
type HandType int

// Hand types from weakest to strongest.
const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeKind
	FullHouse
	FourKind
	FiveKind
)

var handTypeNames = [...]string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}

func (t HandType) String() string {
	if t < HighCard || t > FiveKind {
		return fmt.Sprintf("HandType(%d)", int(t))
	}
	return handTypeNames[t]
}

// Hand is five cards, the bid placed on them, and their type.
type Hand struct {
	Cards [5]Card
	Bid   int
	Type  HandType
}

// Option configures parsing rules.
type Option func(*Options)

// Options holds the rule switches.
type Options struct {
	// Jokers reads J as a joker instead of a jack.
	Jokers bool
}

// DefaultOptions returns the standard rules.
func DefaultOptions() Options {
	return Options{}
}

// WithJokers switches J to a wild, weakest joker.
func WithJokers() Option {
	return func(o *Options) {
		o.Jokers = true
	}
}
