package network

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for parsing and walking.
var (
	// ErrSyntax indicates a malformed instruction line or node line.
	ErrSyntax = errors.New("network: malformed map")
	// ErrInstruction indicates an instruction other than L or R.
	ErrInstruction = errors.New("network: unknown instruction")
	// ErrUnknownNode indicates a reference to an undeclared node.
	ErrUnknownNode = errors.New("network: unknown node")
	// ErrNoStart indicates that no node matched the start predicate.
	ErrNoStart = errors.New("network: no start node")
	// ErrInfiniteLoop indicates a walk that returned to a state it had
	// already been in without reaching its target.
	ErrInfiniteLoop = errors.New("network: walk loops without reaching target")
	// ErrStepLimit indicates a walk exceeded Options.MaxSteps.
	ErrStepLimit = errors.New("network: step limit exceeded")
	// ErrNoCycle indicates no period was found within the step limit.
	ErrNoCycle = errors.New("network: no cycle found")
	// ErrNoCommonStep indicates periodic walks that never accept together.
	ErrNoCommonStep = errors.New("network: no common accepting step")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("network: invalid option supplied")
)

// Instruction selects the left or the right successor.
type Instruction byte

// Instructions as they appear on the first line.
const (
	Left  Instruction = 'L'
	Right Instruction = 'R'
)

// Node holds the two successors of a node.
type Node struct {
	Left, Right string
}

// Network is a parsed map.
type Network struct {
	Instructions []Instruction
	Nodes        map[string]Node
	// Names lists node names in declaration order.
	Names []string
}

// Cycle describes an arithmetic progression of accepting steps:
// Offset, Offset+Length, Offset+2·Length, ...
type Cycle struct {
	Offset, Length int
}

// Trace is the result of FindCycle for one start node.
// The walk state at step Phase recurs at step Phase+Length.
type Trace struct {
	Start  string
	Phase  int
	Length int
	// Transient holds the accepting steps in [0, Phase].
	Transient []int
	// Offsets holds the accepting steps in (Phase, Phase+Length];
	// each one repeats every Length steps.
	Offsets []int
}

// Option configures walks via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds walk parameters.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
	// MaxSteps bounds the number of steps of any single walk.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with a background context and a
// one-billion step bound.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 1_000_000_000,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds every walk to n steps. n must be positive.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
