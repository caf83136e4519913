package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc/internal/input"
	"github.com/katalvlaran/aoc/internal/solutions"
)

// newDayCmd wraps one solution as "aoc <name> --input <path>".
func newDayCmd(a *app, s solutions.Solution) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   s.Name,
		Short: fmt.Sprintf("Day %d: %s (%s)", s.Day, s.Title, s.Summary),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input.ReadFile(path)
			if err != nil {
				return err
			}
			answer, err := solve(cmd.Context(), a, s, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", s.Label(), answer)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "input", "i", "", "Puzzle input file (required)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// solve runs s and logs how long it took.
func solve(ctx context.Context, a *app, s solutions.Solution, in string) (int, error) {
	env := a.env()
	env.Log = env.Log.With(zap.String("puzzle", s.Name))
	log := env.Log

	start := time.Now()
	answer, err := s.Solve(ctx, env, in)
	if err != nil {
		log.Debug("failed", zap.Error(err))
		return 0, fmt.Errorf("%s: %w", s.Name, err)
	}
	log.Debug("solved", zap.Int("answer", answer), zap.Duration("elapsed", time.Since(start)))
	return answer, nil
}
