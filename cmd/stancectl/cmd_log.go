package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// newLogCmd creates the "stancectl log" subcommand.
func newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log [branch]",
		Short: "Show version history, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			branch := ""
			if len(args) == 1 {
				branch = args[0]
			}

			history, err := env.graph.History(branch)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no commits")
				return nil
			}

			w := cmd.OutOrStdout()
			for i, v := range history {
				if limit > 0 && i >= limit {
					break
				}
				line := fmt.Sprintf("%s  %s  %s", shortID(v.ID), v.CreatedAt.Format(time.DateTime), v.Message)
				if v.Author != "" {
					line += fmt.Sprintf("  (%s)", v.Author)
				}
				if len(v.Tags) > 0 {
					line += fmt.Sprintf("  [%s]", strings.Join(v.Tags, ", "))
				}
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most N versions (0 = all)")
	return cmd
}
