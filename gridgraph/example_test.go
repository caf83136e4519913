// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/aoc/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents demonstrates how to identify
// contiguous regions of '#' cells in a symbol map.
// Scenario:
//
//   - '#' = rock, '.' = open ground
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect two regions, listed in BFS order from their first cell.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGrid_ConnectedComponents() {
	g, _ := gridgraph.FromLines([]string{
		".##.#",
		"##.##",
		"#.##.",
	}, gridgraph.DefaultGridOptions())

	comps := g.ConnectedComponents(func(b byte) bool { return b == '#' })
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := g.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}
