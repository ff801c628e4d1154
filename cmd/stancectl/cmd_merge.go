package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/stance-vcs/internal/logging"
	"github.com/danielpatrickdp/stance-vcs/internal/merge"
)

// newMergeCmd creates the "stancectl merge" subcommand.
func newMergeCmd() *cobra.Command {
	var into string

	cmd := &cobra.Command{
		Use:   "merge <source-branch>",
		Short: "Merge a branch into the target (default: current branch)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			result := merge.Merge(env.graph, env.cfg.Impact, args[0], into)
			w := cmd.OutOrStdout()

			if !result.Success {
				fmt.Fprintf(w, "merge failed: %s\n", result.Message)
				for _, c := range result.Conflicts {
					fmt.Fprintf(w, "  conflict %s: source=%v target=%v (suggest %s)\n",
						c.Path, c.SourceValue, c.TargetValue, c.Strategy)
				}
				return fmt.Errorf("merge not committed")
			}

			if err := env.saveAndLog(logging.OperationEntry{
				Op:        "merge",
				VersionID: result.Version.ID,
				Branch:    result.Version.Branch,
				Detail:    result.Version.Message,
			}); err != nil {
				return err
			}

			fmt.Fprintf(w, "%s (%s)\n", result.Version.Message, result.Message)
			for _, path := range result.AutoResolved {
				fmt.Fprintf(w, "  auto-resolved %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&into, "into", "", "target branch (default: current)")
	return cmd
}
