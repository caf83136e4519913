package camelcards

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseCard maps a label to its strength under the given rules.
func ParseCard(label byte, jokers bool) (Card, error) {
	switch label {
	case 'A':
		return Ace, nil
	case 'K':
		return King, nil
	case 'Q':
		return Queen, nil
	case 'J':
		if jokers {
			return Joker, nil
		}
		return Jack, nil
	case 'T':
		return Ten, nil
	}
	if label >= '2' && label <= '9' {
		return Two + Card(label-'2'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrCard, label)
}

// ParseHand parses one "CARDS BID" line and classifies the cards.
func ParseHand(line string, opts ...Option) (Hand, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[0]) != 5 {
		return Hand{}, fmt.Errorf("%w: %q", ErrSyntax, line)
	}
	var h Hand
	for i := 0; i < 5; i++ {
		c, err := ParseCard(fields[0][i], o.Jokers)
		if err != nil {
			return Hand{}, fmt.Errorf("hand %q: %w", fields[0], err)
		}
		h.Cards[i] = c
	}
	bid, err := strconv.Atoi(fields[1])
	if err != nil {
		return Hand{}, fmt.Errorf("%w: bid %q", ErrSyntax, fields[1])
	}
	h.Bid = bid
	h.Type = Classify(h.Cards)
	return h, nil
}

// Parse parses one hand per non-empty line.
func Parse(lines []string, opts ...Option) ([]Hand, error) {
	hands := make([]Hand, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		h, err := ParseHand(l, opts...)
		if err != nil {
			return nil, err
		}
		hands = append(hands, h)
	}
	return hands, nil
}

// Classify derives the hand type from the counting vector of cards.
// Jokers are added to the largest count.
func Classify(cards [5]Card) HandType {
	var (
		tally  = make(map[Card]int, 5)
		jokers int
	)
	for _, c := range cards {
		if c == Joker {
			jokers++
			continue
		}
		tally[c]++
	}
	counts := make([]int, 0, 5)
	for _, n := range tally {
		counts = append(counts, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	if len(counts) == 0 {
		counts = append(counts, 0)
	}
	counts[0] += jokers

	switch {
	case counts[0] == 5:
		return FiveKind
	case counts[0] == 4:
		return FourKind
	case counts[0] == 3 && counts[1] == 2:
		return FullHouse
	case counts[0] == 3:
		return ThreeKind
	case counts[0] == 2 && counts[1] == 2:
		return TwoPair
	case counts[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Compare orders a against b: negative if a is weaker, positive if stronger.
func Compare(a, b Hand) int {
	if a.Type != b.Type {
		return int(a.Type) - int(b.Type)
	}
	for i := range a.Cards {
		if a.Cards[i] != b.Cards[i] {
			return int(a.Cards[i]) - int(b.Cards[i])
		}
	}
	return 0
}

// Winnings ranks the hands weakest first and sums rank·bid.
// The input slice is left untouched.
func Winnings(hands []Hand) int {
	ranked := make([]Hand, len(hands))
	copy(ranked, hands)
	sort.SliceStable(ranked, func(i, j int) bool { return Compare(ranked[i], ranked[j]) < 0 })

	total := 0
	for i, h := range ranked {
		total += (i + 1) * h.Bid
	}
	return total
}
