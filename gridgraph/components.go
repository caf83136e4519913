package gridgraph

// Flood marks every cell reachable from (x,y) through cells accepted by pass,
// according to g.Conn connectivity. The seed itself must be passable.
// Returns a row-major mask of reached cells, or ErrOutOfBounds.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for the mask and queue.
func (g *Grid) Flood(x, y int, pass func(b byte) bool) ([]bool, error) {
	if !g.InBounds(x, y) {
		return nil, ErrOutOfBounds
	}
	seen := make([]bool, g.Width*g.Height)
	if !pass(g.Cells[y][x]) {
		return seen, nil
	}
	g.bfs(g.Index(x, y), pass, seen)
	return seen, nil
}

// ConnectedComponents finds all contiguous regions of cells accepted by keep,
// according to g.Conn connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order from its first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(keep func(b byte) bool) [][]int {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]int

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i0 := g.Index(x, y)
			if seen[i0] || !keep(g.Cells[y][x]) {
				continue
			}
			comps = append(comps, g.bfs(i0, keep, seen))
		}
	}
	return comps
}

// bfs collects the region of start, marking seen as it goes.
func (g *Grid) bfs(start int, pass func(b byte) bool, seen []bool) []int {
	queue := []int{start}
	seen[start] = true

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := g.Coordinate(queue[qi])
		for _, d := range g.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) || !pass(g.Cells[vy][vx]) {
				continue
			}
			vi := g.Index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
