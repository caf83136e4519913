package network

import "fmt"

// GhostWalk steps every walk from a start node in lock step until all of them
// stand on accepting nodes, and returns that step. When every walk is back on
// its own start with the instruction pointer at zero, the walks repeat and
// ErrInfiniteLoop is returned.
func (n *Network) GhostWalk(isStart, isAccept func(string) bool, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	starts := n.Starts(isStart)
	if len(starts) == 0 {
		return 0, ErrNoStart
	}
	walkers := make([]*walker, len(starts))
	for i, s := range starts {
		if walkers[i], err = n.newWalker(s, o); err != nil {
			return 0, err
		}
	}

	for {
		if allOn(walkers, isAccept) {
			return walkers[0].steps, nil
		}
		if walkers[0].steps > 0 && walkers[0].ip == 0 && allHome(walkers, starts) {
			return 0, fmt.Errorf("%w: every walk returned to its start after %d steps", ErrInfiniteLoop, walkers[0].steps)
		}
		for _, w := range walkers {
			if err := w.step(); err != nil {
				return 0, err
			}
		}
	}
}

func allOn(walkers []*walker, isAccept func(string) bool) bool {
	for _, w := range walkers {
		if !isAccept(w.node) {
			return false
		}
	}
	return true
}

func allHome(walkers []*walker, starts []string) bool {
	for i, w := range walkers {
		if w.node != starts[i] {
			return false
		}
	}
	return true
}
