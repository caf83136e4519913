// Command aoc prints Advent of Code 2023 answers, one subcommand per puzzle.
//
//	aoc day1a --input day1.txt
//	aoc all --dir inputs/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc/internal/config"
	"github.com/katalvlaran/aoc/internal/logging"
	"github.com/katalvlaran/aoc/internal/solutions"
)

// app holds the state the root command prepares for its subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func (a *app) env() solutions.Env {
	return solutions.Env{Log: a.logger, Config: a.cfg}
}

// newRootCmd builds the command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2023 solutions",
		Long: `aoc solves Advent of Code 2023 puzzles.

Every puzzle part is a subcommand reading its input from --input and
printing a single line such as "Day1a: 142".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			a.cfg = cfg

			a.logger, err = logging.New(cfg.Logging, a.verbose)
			if err != nil {
				return err
			}
			a.logger.Debug("config loaded",
				zap.String("path", a.configPath),
				zap.Int("max_steps", cfg.Network.MaxSteps),
				zap.Int("workers", cfg.Workers()),
				zap.Int("expansion", cfg.Cosmos.Expansion))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "aoc.yaml", "YAML config file (missing file means defaults)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	for _, s := range solutions.All() {
		root.AddCommand(newDayCmd(a, s))
	}
	root.AddCommand(newAllCmd(a))
	root.AddCommand(newListCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
