package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/stance-vcs/internal/diff"
	"github.com/danielpatrickdp/stance-vcs/internal/render"
)

// newDiffCmd creates the "stancectl diff" subcommand.
func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <versionA> <versionB>",
		Short: "Show the semantic diff between two versions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			d, err := diff.Between(env.graph, env.cfg.Impact, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Diff(d))
			return nil
		},
	}
}
