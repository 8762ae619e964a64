package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/aoc/internal/config"
	"github.com/example/aoc/internal/runlog"
	"github.com/example/aoc/internal/scaffold"
)

// LogCmd creates the "log" command, which lists recorded puzzle runs.
func LogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log [DAY]",
		Short: "List recorded puzzle runs",
		Long:  "List runs recorded by 'aoc run', newest first, optionally filtered to DAY.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := 0
			if len(args) > 0 {
				var err error
				day, err = scaffold.ParseDay(args)
				if err != nil {
					return err
				}
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

			runs, err := store.List(cmd.Context(), day)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded.")
				return nil
			}

			for _, r := range runs {
				outcome := outcomeColor(r.Outcome).Sprintf("%-8s", r.Outcome)
				fmt.Fprintf(out, "%s  day %02d part %d  %s %10s  %s\n",
					r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					r.Day, r.Part, outcome, r.Duration, r.Answer)
			}
			return nil
		},
	}
}

func outcomeColor(outcome string) *color.Color {
	switch outcome {
	case runlog.OutcomeSolved:
		return color.New(color.FgHiGreen)
	case runlog.OutcomeUnsolved:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
