package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/aoc/internal/scaffold"
)

// resolveRoot returns the project root from the global --root flag,
// falling back to the current working directory.
func resolveRoot(cmd *cobra.Command) (string, error) {
	root, err := cmd.Root().PersistentFlags().GetString("root")
	if err != nil || root == "" {
		return os.Getwd()
	}
	return root, nil
}

// writeGeneratedFile writes one artifact under root. Create operations
// overwrite unconditionally; touch operations create an empty file only
// when none exists, leaving any present content alone.
func writeGeneratedFile(root string, f scaffold.GeneratedFile) error {
	target := filepath.Join(root, filepath.FromSlash(f.Path))

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	if f.Operation == scaffold.OpTouch {
		if _, err := os.Stat(target); err == nil {
			return nil
		}
		return os.WriteFile(target, nil, 0644)
	}

	return os.WriteFile(target, []byte(f.Content), 0644)
}
