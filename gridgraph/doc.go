// Package gridgraph treats a 2D grid of byte symbols as a graph, enabling
// neighbourhood queries, flood fills and component analysis over puzzle maps.
//
// What:
//
//   - Grid wraps a rectangular [][]byte with 4- or 8-connectivity.
//   - Locates symbols (Find, FindAll) and walks neighbours (NeighborOffsets).
//   - Flood marks every cell reachable from a seed through passable cells.
//   - ConnectedComponents groups cells accepted by a predicate.
//
// Why:
//
//   - Pipe mazes: locate the start, flood the outside of a loop.
//   - Engine schematics: test digits against their 8-neighbourhood.
//   - Star maps: collect galaxies and empty rows or columns.
//
// Complexity:
//
//   - NewGrid, FromLines:   O(W×H), Memory: O(W×H).
//   - Flood:                O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ConnectedComponents:  O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a seed coordinate lies outside the grid.
package gridgraph
