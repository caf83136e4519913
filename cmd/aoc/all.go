package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc/internal/input"
	"github.com/katalvlaran/aoc/internal/solutions"
)

// ErrNoInputs is returned by "aoc all" when dir holds no dayN.txt file.
var ErrNoInputs = errors.New("no puzzle inputs found")

// inputName is the file all parts of a day read, e.g. day8.txt.
func inputName(day int) string {
	return fmt.Sprintf("day%d.txt", day)
}

func newAllCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every puzzle whose dayN.txt exists in --dir",
		Long: `Runs every registered puzzle part concurrently. Each part reads
<dir>/dayN.txt for its day number; days without a file are skipped.
Answers are printed in day order once all parts are done.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(cmd, a, dir)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory holding dayN.txt inputs")
	return cmd
}

func runAll(cmd *cobra.Command, a *app, dir string) error {
	// 1) Pick the parts with an input, reading every file once.
	var (
		picked []solutions.Solution
		inputs = make(map[int]string)
	)
	for _, s := range solutions.All() {
		if _, ok := inputs[s.Day]; !ok {
			path := filepath.Join(dir, inputName(s.Day))
			in, err := input.ReadFile(path)
			switch {
			case errors.Is(err, os.ErrNotExist):
				a.logger.Debug("skipping day", zap.Int("day", s.Day), zap.String("path", path))
				continue
			case err != nil:
				return err
			}
			inputs[s.Day] = in
		}
		picked = append(picked, s)
	}
	if len(picked) == 0 {
		return fmt.Errorf("%w in %s", ErrNoInputs, dir)
	}

	// 2) Solve concurrently; the first failure cancels the rest.
	answers := make([]int, len(picked))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, s := range picked {
		g.Go(func() error {
			ans, err := solve(ctx, a, s, inputs[s.Day])
			answers[i] = ans
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// 3) Report in registry order.
	out := cmd.OutOrStdout()
	for i, s := range picked {
		fmt.Fprintf(out, "%s: %d\n", s.Label(), answers[i])
	}
	return nil
}
