package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/aoc/internal/config"
	"github.com/example/aoc/internal/scaffold"
)

// NewCmd creates the "new" command, which scaffolds one day.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new DAY",
		Short: "Scaffold a solution stub for the given day",
		Long: `Scaffold the solution stub for DAY, regenerate the day registry to cover
days 1..DAY, and touch the input fixture.

The stub and the registry are overwritten unconditionally. The input
fixture is created empty only if it does not exist yet.

Examples:
  aoc new 3
  aoc new 3 --dry-run`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate the argument before any filesystem access.
			day, err := scaffold.ParseDay(args)
			if err != nil {
				return err
			}

			root, err := resolveRoot(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			spec := scaffold.NewDaySpec(day, cfg.Year, cfg.PuzzleDir, cfg.InputDir)
			result, err := scaffold.NewGenerator().GenerateDay(spec)
			if err != nil {
				return fmt.Errorf("failed to generate day %d: %w", day, err)
			}

			if dryRun {
				for _, f := range result.Files {
					if f.Operation != scaffold.OpCreate {
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "--- %s ---\n%s\n", f.Path, f.Content)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "(dry-run mode - no files written)")
				return nil
			}

			check := color.New(color.FgGreen).Sprint("✓")
			for _, f := range result.Files {
				if err := writeGeneratedFile(root, f); err != nil {
					return fmt.Errorf("failed to write %s: %w", f.Path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", check, f.Path)
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "print generated files without writing them")

	return cmd
}
