// Package pipes traces the loop of a pipe maze and measures what it encloses.
//
// A maze is a grid of connector shapes:
//
//	| north-south   - east-west   L north-east   F east-south
//	7 south-west    J west-north  . ground       S start
//
// From S each compass heading is tried in turn (N, E, S, W). A trace steps
// forward, checks that the entered shape opens back towards where it came
// from, and leaves through the shape's other opening. Stepping off the grid
// ends the trace with ErrEdge, entering a shape that does not open towards
// the arrival side ends it with ErrMismatch, and stepping back onto S closes
// a loop.
//
// Enclosed tiles are counted on a doubled grid: every tile becomes the odd
// cell (2x+1, 2y+1), the loop is drawn including the gaps between its tiles,
// and a flood from the corner marks the outside. Tiles the flood misses and
// the loop does not cover lie inside, even where two pipes squeeze together.
//
// Complexity:
//
//   - FindLoops:     O(4·W·H), Memory: O(W·H).
//   - EnclosedTiles: O(W·H),   Memory: O(4·W·H).
package pipes
