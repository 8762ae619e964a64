// Package cli implements the aoc command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/aoc/internal/version"
)

// NewRootCmd creates the top-level "aoc" command with all subcommands
// registered. Errors returned by subcommands are printed by main with
// an "error: " prefix, so cobra's own reporting is silenced.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "aoc",
		Short:   "aoc - Advent of Code 2021 workspace tool",
		Version: version.String(),
		Long: `aoc scaffolds Advent of Code solution stubs, keeps the day registry in
sync, and runs the solutions it has scaffolded.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("root", "", "project root (default: current directory)")

	root.AddCommand(NewCmd())
	root.AddCommand(RunCmd())
	root.AddCommand(LogCmd())

	return root
}
