package network

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/aoc/internal/input"
)

// checkEvery bounds how many steps a walker takes between context checks.
const checkEvery = 1 << 12

var nodeLine = regexp.MustCompile(`^(\w+)\s*=\s*\(\s*(\w+)\s*,\s*(\w+)\s*\)$`)

// Parse reads the instruction line, a blank line, and the node table.
// Every successor must itself be declared.
func Parse(s string) (*Network, error) {
	lines := input.Lines(s)
	if len(lines) < 3 {
		return nil, fmt.Errorf("%w: want instructions, a blank line and nodes", ErrSyntax)
	}

	// 1) Instructions.
	head := strings.TrimSpace(lines[0])
	if head == "" {
		return nil, fmt.Errorf("%w: empty instruction line", ErrSyntax)
	}
	n := &Network{
		Instructions: make([]Instruction, len(head)),
		Nodes:        make(map[string]Node, len(lines)-2),
	}
	for i := 0; i < len(head); i++ {
		switch ins := Instruction(head[i]); ins {
		case Left, Right:
			n.Instructions[i] = ins
		default:
			return nil, fmt.Errorf("%w: %q at %d", ErrInstruction, head[i], i)
		}
	}
	if strings.TrimSpace(lines[1]) != "" {
		return nil, fmt.Errorf("%w: line 2 must be blank", ErrSyntax)
	}

	// 2) Node table.
	for i, l := range lines[2:] {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		m := nodeLine.FindStringSubmatch(l)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrSyntax, i+3, l)
		}
		if _, dup := n.Nodes[m[1]]; dup {
			return nil, fmt.Errorf("%w: node %s declared twice", ErrSyntax, m[1])
		}
		n.Nodes[m[1]] = Node{Left: m[2], Right: m[3]}
		n.Names = append(n.Names, m[1])
	}

	// 3) Dangling successors.
	for _, name := range n.Names {
		nd := n.Nodes[name]
		for _, succ := range []string{nd.Left, nd.Right} {
			if _, ok := n.Nodes[succ]; !ok {
				return nil, fmt.Errorf("%w: %s (successor of %s)", ErrUnknownNode, succ, name)
			}
		}
	}
	return n, nil
}

// Is returns a predicate matching exactly name.
func Is(name string) func(string) bool {
	return func(s string) bool { return s == name }
}

// EndsWith returns a predicate matching names whose last byte is b.
func EndsWith(b byte) func(string) bool {
	return func(s string) bool { return len(s) > 0 && s[len(s)-1] == b }
}

// Starts returns the nodes matching isStart in declaration order.
func (n *Network) Starts(isStart func(string) bool) []string {
	var out []string
	for _, name := range n.Names {
		if isStart(name) {
			out = append(out, name)
		}
	}
	return out
}

// walker holds the mutable state of one walk.
type walker struct {
	net   *Network
	ctx   context.Context
	max   int
	node  string
	ip    int
	steps int
}

func (n *Network) newWalker(from string, o Options) (*walker, error) {
	if _, ok := n.Nodes[from]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, from)
	}
	return &walker{net: n, ctx: o.Ctx, max: o.MaxSteps, node: from}, nil
}

// step follows the current instruction and advances the pointer.
func (w *walker) step() error {
	if w.steps >= w.max {
		return fmt.Errorf("%w: %d", ErrStepLimit, w.max)
	}
	if w.steps%checkEvery == 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
	}
	nd := w.net.Nodes[w.node]
	if w.net.Instructions[w.ip] == Left {
		w.node = nd.Left
	} else {
		w.node = nd.Right
	}
	w.ip = (w.ip + 1) % len(w.net.Instructions)
	w.steps++
	return nil
}

// Steps walks from from until isTarget holds and returns the step count.
// A start that already satisfies isTarget takes 0 steps.
// If a node recurs with the instruction pointer at zero before the target is
// reached, the walk can never finish and ErrInfiniteLoop is returned.
func (n *Network) Steps(from string, isTarget func(string) bool, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	w, err := n.newWalker(from, o)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]struct{})
	for !isTarget(w.node) {
		if w.ip == 0 {
			if _, ok := seen[w.node]; ok {
				return 0, fmt.Errorf("%w: from %s, repeated %s after %d steps", ErrInfiniteLoop, from, w.node, w.steps)
			}
			seen[w.node] = struct{}{}
		}
		if err := w.step(); err != nil {
			return 0, err
		}
	}
	return w.steps, nil
}
