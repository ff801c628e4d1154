package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/stance-vcs/internal/logging"
)

// newTagCmd creates the "stancectl tag" subcommand.
func newTagCmd() *cobra.Command {
	var find string

	cmd := &cobra.Command{
		Use:   "tag [version] [tag]",
		Short: "Tag a version, or find versions by tag with --find",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			w := cmd.OutOrStdout()
			if find != "" {
				for _, v := range env.graph.FindByTag(find) {
					fmt.Fprintf(w, "%s  %s  %s\n", shortID(v.ID), v.Branch, v.Message)
				}
				return nil
			}

			if len(args) != 2 {
				return fmt.Errorf("usage: tag <version> <tag>, or tag --find <tag>")
			}
			if err := env.graph.Tag(args[0], args[1]); err != nil {
				return err
			}
			if err := env.saveAndLog(logging.OperationEntry{
				Op:        "tag",
				VersionID: args[0],
				Detail:    args[1],
			}); err != nil {
				return err
			}
			fmt.Fprintf(w, "tagged %s with %q\n", shortID(args[0]), args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&find, "find", "", "list versions carrying this tag")
	return cmd
}

// newOpsCmd creates the "stancectl ops" subcommand.
func newOpsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "ops",
		Short: "Show the operation journal, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			entries, err := env.journal.List(limit)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, e := range entries {
				line := fmt.Sprintf("%-12s", e.Op)
				if e.VersionID != "" {
					line += "  " + shortID(e.VersionID)
				}
				if e.Branch != "" {
					line += "  " + e.Branch
				}
				if e.Detail != "" {
					line += "  " + e.Detail
				}
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "show at most N entries")
	return cmd
}
