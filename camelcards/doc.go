// Package camelcards ranks hands of Camel Cards and totals their winnings.
//
// A hand is five cards and a bid: "32T3K 765". Hands order first by type,
// five of a kind down to high card, then card by card from the left.
// The type is read off the sorted counting vector of the hand: [3 2] is a
// full house, [2 2 1] two pair, and so on.
//
// Under joker rules J is the weakest card and joins whichever card the hand
// holds most of, so "T55J5" plays as four of a kind.
package camelcards
