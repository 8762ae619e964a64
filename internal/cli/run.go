package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/aoc/internal/config"
	"github.com/example/aoc/internal/puzzle"
	"github.com/example/aoc/internal/puzzles"
	"github.com/example/aoc/internal/runlog"
	"github.com/example/aoc/internal/scaffold"
)

// RunCmd creates the "run" command, which executes scaffolded puzzles.
func RunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [DAY]",
		Short: "Run one scaffolded day, or all of them",
		Long: `Run the solution for DAY, or every scaffolded day when DAY is omitted.
Each executed part is recorded in the run log.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := puzzles.All()
			days := puzzles.Days

			if len(args) > 0 {
				day, err := scaffold.ParseDay(args)
				if err != nil {
					return err
				}
				if day < 1 || day > len(all) {
					return fmt.Errorf("day %d is not scaffolded", day)
				}
				all = all[day-1 : day]
				days = days[day-1 : day]
			}

			root, err := resolveRoot(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}

			store, err := runlog.Open(filepath.Join(root, filepath.FromSlash(cfg.DBPath)))
			if err != nil {
				return fmt.Errorf("failed to open run log: %w", err)
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			for i, p := range all {
				if err := runPart(cmd.Context(), out, store, days[i], 1, p.Part1); err != nil {
					return err
				}
				if err := runPart(cmd.Context(), out, store, days[i], 2, p.Part2); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// runPart executes one puzzle part, prints its outcome, and records it
// in the run log. Puzzle failures are reported inline, not returned; the
// run continues to the next part.
func runPart(ctx context.Context, out io.Writer, store *runlog.Store, day, part int, solve func() (puzzle.Solution, error)) error {
	start := time.Now()
	solution, err := solve()
	elapsed := time.Since(start)

	run := &runlog.Run{
		ID:       runlog.NewRunID(),
		Day:      day,
		Part:     part,
		Duration: elapsed,
	}

	switch {
	case errors.Is(err, puzzle.ErrNoSolution):
		run.Outcome = runlog.OutcomeUnsolved
		fmt.Fprintf(out, "day %02d part %d: %s\n", day, part, color.New(color.FgYellow).Sprint(err))
	case err != nil:
		run.Outcome = runlog.OutcomeError
		fmt.Fprintf(out, "day %02d part %d: %s\n", day, part, color.New(color.FgRed).Sprint(err))
	default:
		run.Outcome = runlog.OutcomeSolved
		run.Answer = solution.String()
		fmt.Fprintf(out, "day %02d part %d: %s\n", day, part, solution)
	}

	if err := store.Record(ctx, run); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}
