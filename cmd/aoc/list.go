package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc/internal/solutions"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every puzzle subcommand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range solutions.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Title, s.Summary)
			}
			return w.Flush()
		},
	}
}
