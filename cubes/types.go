package cubes

import "errors"

// Sentinel errors for record parsing.
var (
	// ErrSyntax indicates a record that does not follow "Game N: draws".
	ErrSyntax = errors.New("cubes: malformed record")
	// ErrColour indicates a colour other than red, green or blue.
	ErrColour = errors.New("cubes: unknown colour")
)

// Draw counts the cubes revealed in one handful.
type Draw struct {
	Red, Green, Blue int
}

// Game is one record: its id and every draw in order.
type Game struct {
	ID    int
	Draws []Draw
}

// DefaultBag holds 12 red, 13 green and 14 blue cubes.
var DefaultBag = Draw{Red: 12, Green: 13, Blue: 14}
