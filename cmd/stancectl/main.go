// Package main is the entry point for the stancectl CLI: version-control
// operations over a persisted stance store.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// #region main
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// #endregion main

// #region root
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stancectl",
		Short:         "Semantic version control for stance records",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().String("db", envOr("STANCE_DB", "stance.db"), "path to the store database")
	root.PersistentFlags().String("config", os.Getenv("STANCE_CONFIG"), "path to a thresholds YAML file")

	root.AddCommand(
		newInitCmd(),
		newCommitCmd(),
		newLogCmd(),
		newBranchCmd(),
		newBranchesCmd(),
		newCheckoutCmd(),
		newDiffCmd(),
		newMergeCmd(),
		newCherryPickCmd(),
		newRollbackCmd(),
		newTagCmd(),
		newOpsCmd(),
	)
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion root
