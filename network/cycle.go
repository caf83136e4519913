package network

import (
	"errors"
	"fmt"
)

// FindCycle walks from from until the walk becomes periodic, recording every
// step at which isAccept holds. Each time the instruction pointer is zero the
// current node is remembered; the first node seen twice there closes the cycle.
// Returns ErrNoCycle (wrapping the cause) when MaxSteps runs out first.
func (n *Network) FindCycle(from string, isAccept func(string) bool, opts ...Option) (Trace, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Trace{}, err
	}
	w, err := n.newWalker(from, o)
	if err != nil {
		return Trace{}, err
	}

	firstAt := make(map[string]int)
	var accepts []int
	for {
		if isAccept(w.node) {
			accepts = append(accepts, w.steps)
		}
		if w.ip == 0 {
			if p, ok := firstAt[w.node]; ok {
				return newTrace(from, p, w.steps-p, accepts), nil
			}
			firstAt[w.node] = w.steps
		}
		if err := w.step(); err != nil {
			if errors.Is(err, ErrStepLimit) {
				return Trace{}, fmt.Errorf("%w from %s: %w", ErrNoCycle, from, err)
			}
			return Trace{}, err
		}
	}
}

func newTrace(start string, phase, length int, accepts []int) Trace {
	tr := Trace{Start: start, Phase: phase, Length: length}
	for _, a := range accepts {
		if a <= phase {
			tr.Transient = append(tr.Transient, a)
		} else {
			tr.Offsets = append(tr.Offsets, a)
		}
	}
	return tr
}

// Accepts reports whether the traced walk is on an accepting node at step t.
func (tr Trace) Accepts(t int) bool {
	for _, a := range tr.Transient {
		if a == t {
			return true
		}
	}
	for _, c := range tr.Offsets {
		if t >= c && (t-c)%tr.Length == 0 {
			return true
		}
	}
	return false
}

// Cycles returns one progression per periodic accepting step.
func (tr Trace) Cycles() []Cycle {
	out := make([]Cycle, len(tr.Offsets))
	for i, c := range tr.Offsets {
		out[i] = Cycle{Offset: c, Length: tr.Length}
	}
	return out
}

// Combine returns the progression of steps accepted by both a and b.
// Its Offset is the smallest t ≥ max(a.Offset, b.Offset) with
// t ≡ a.Offset (mod a.Length) and t ≡ b.Offset (mod b.Length), found by
// stepping along the longer progression; its Length is lcm(a.Length, b.Length).
// Returns ErrNoCommonStep when the congruences have no solution.
func Combine(a, b Cycle) (Cycle, error) {
	if a.Length < 1 || b.Length < 1 {
		return Cycle{}, fmt.Errorf("%w: non-positive length in %+v, %+v", ErrNoCommonStep, a, b)
	}
	if a.Length < b.Length {
		a, b = b, a
	}

	t := a.Offset
	if t < b.Offset {
		t += (b.Offset - t + a.Length - 1) / a.Length * a.Length
	}
	// Residues of t modulo b.Length repeat after b.Length/g steps.
	tries := b.Length / Gcd(a.Length, b.Length)
	for i := 0; i < tries; i++ {
		if (t-b.Offset)%b.Length == 0 {
			return Cycle{Offset: t, Length: Lcm(a.Length, b.Length)}, nil
		}
		t += a.Length
	}
	return Cycle{}, fmt.Errorf("%w: %+v and %+v", ErrNoCommonStep, a, b)
}

// traceAll runs FindCycle from every start.
func (n *Network) traceAll(isStart, isAccept func(string) bool, opts []Option) ([]Trace, error) {
	starts := n.Starts(isStart)
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	traces := make([]Trace, len(starts))
	for i, s := range starts {
		tr, err := n.FindCycle(s, isAccept, opts...)
		if err != nil {
			return nil, err
		}
		traces[i] = tr
	}
	return traces, nil
}

// LcmSteps returns the first step at which every walk from a start node is on
// an accepting node at once. Steps up to the longest phase are checked
// directly; beyond it every pairing of periodic accepting steps is combined
// with Combine and the smallest surviving offset wins.
func (n *Network) LcmSteps(isStart, isAccept func(string) bool, opts ...Option) (int, error) {
	traces, err := n.traceAll(isStart, isAccept, opts)
	if err != nil {
		return 0, err
	}

	// 1) Before every walk is periodic.
	horizon := 0
	for _, tr := range traces {
		horizon = max(horizon, tr.Phase)
	}
	for t := 0; t <= horizon; t++ {
		if allAccept(traces, t) {
			return t, nil
		}
	}

	// 2) Periodic part.
	combined := traces[0].Cycles()
	for _, tr := range traces[1:] {
		var next []Cycle
		for _, a := range combined {
			for _, b := range tr.Cycles() {
				c, err := Combine(a, b)
				if err == nil {
					next = append(next, c)
				}
			}
		}
		combined = next
	}
	if len(combined) == 0 {
		return 0, fmt.Errorf("%w across %d walks", ErrNoCommonStep, len(traces))
	}
	best := combined[0].Offset
	for _, c := range combined[1:] {
		best = min(best, c.Offset)
	}
	return best, nil
}

func allAccept(traces []Trace, t int) bool {
	for _, tr := range traces {
		if !tr.Accepts(t) {
			return false
		}
	}
	return true
}

// CycleLcm returns the least common multiple of the period lengths of every
// walk. It equals the simultaneous arrival step only for maps where each walk
// first accepts exactly one period in and accepts nowhere else.
func (n *Network) CycleLcm(isStart, isAccept func(string) bool, opts ...Option) (int, error) {
	traces, err := n.traceAll(isStart, isAccept, opts)
	if err != nil {
		return 0, err
	}
	l := 1
	for _, tr := range traces {
		l = Lcm(l, tr.Length)
	}
	return l, nil
}
