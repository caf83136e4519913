// Package solutions registers one solver per puzzle part and adapts each
// day package to a common signature for the command line.
package solutions

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc/internal/config"
)

// ErrUnknown is returned by Lookup for a name that is not registered.
var ErrUnknown = errors.New("solutions: unknown puzzle")

// Env carries what a solver may use besides its input.
type Env struct {
	Log    *zap.Logger
	Config *config.Config
}

// SolveFunc computes the answer for the raw puzzle input.
type SolveFunc func(ctx context.Context, env Env, in string) (int, error)

// Solution describes one subcommand.
type Solution struct {
	Name    string // e.g. "day8b-lcm"
	Day     int    // puzzle number; inputs are shared by every part of a day
	Title   string
	Summary string
	Solve   SolveFunc
}

// Label is the answer prefix, "Day1a" for "day1a".
func (s Solution) Label() string {
	return "D" + s.Name[1:]
}

var registry []Solution

func register(s Solution) {
	for _, r := range registry {
		if r.Name == s.Name {
			panic(fmt.Sprintf("solutions: %s registered twice", s.Name))
		}
	}
	registry = append(registry, s)
}

// All returns every solution ordered by day and then by name.
func All() []Solution {
	out := make([]Solution, len(registry))
	copy(out, registry)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Lookup finds a solution by subcommand name.
func Lookup(name string) (Solution, error) {
	for _, s := range registry {
		if s.Name == name {
			return s, nil
		}
	}
	return Solution{}, fmt.Errorf("%w: %s", ErrUnknown, name)
}

// logger never returns nil.
func (e Env) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// config never returns nil.
func (e Env) config() *config.Config {
	if e.Config == nil {
		return config.DefaultConfig()
	}
	return e.Config
}
