package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/stance-vcs/internal/logging"
	"github.com/danielpatrickdp/stance-vcs/internal/replay"
)

// newCherryPickCmd creates the "stancectl cherry-pick" subcommand.
func newCherryPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cherry-pick <version>",
		Short: "Replay one version's changes onto the current head",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			result := replay.CherryPick(env.graph, env.cfg.Impact, args[0])
			w := cmd.OutOrStdout()

			if !result.Success {
				fmt.Fprintf(w, "cherry-pick failed: %s\n", result.Message)
				for _, path := range result.Skipped {
					fmt.Fprintf(w, "  skipped %s\n", path)
				}
				return fmt.Errorf("cherry-pick not committed")
			}

			if err := env.saveAndLog(logging.OperationEntry{
				Op:        "cherry-pick",
				VersionID: result.Version.ID,
				Branch:    result.Version.Branch,
				Detail:    result.Version.Message,
			}); err != nil {
				return err
			}

			fmt.Fprintf(w, "%s (%s)\n", result.Version.Message, result.Message)
			return nil
		},
	}
}

// newRollbackCmd creates the "stancectl rollback" subcommand.
func newRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback <version>",
		Short: "Commit a past version's snapshot as the new head",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			result := replay.Rollback(env.graph, args[0])
			if !result.Success {
				return fmt.Errorf("rollback failed: %s", result.Message)
			}

			if err := env.saveAndLog(logging.OperationEntry{
				Op:        "rollback",
				VersionID: result.Version.ID,
				Branch:    result.Version.Branch,
				Detail:    result.Version.Message,
			}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", result.Version.Message, result.Message)
			return nil
		},
	}
}
