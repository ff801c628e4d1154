package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/stance-vcs/internal/gate"
	"github.com/danielpatrickdp/stance-vcs/internal/logging"
)

// commitConfig holds flag values for the commit command.
type commitConfig struct {
	message  string
	author   string
	snapshot string
	tags     []string
	force    bool
}

// newCommitCmd creates the "stancectl commit" subcommand.
func newCommitCmd() *cobra.Command {
	var cfg commitConfig

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit a snapshot onto the current branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			snap, err := readSnapshot(cfg.snapshot)
			if err != nil {
				return err
			}

			if !cfg.force {
				decision := gate.NewGate(env.cfg.Gate).Evaluate(snap)
				if decision.Action == "reject" {
					for _, v := range decision.Violations {
						slog.Warn("precondition violation", "field", v.Field, "reason", v.Reason)
					}
					return fmt.Errorf("snapshot rejected: %s (use --force to bypass)", decision.Reason)
				}
			}

			v := env.graph.Commit(snap, cfg.message, cfg.author, cfg.tags...)
			if err := env.saveAndLog(logging.OperationEntry{
				Op:        "commit",
				VersionID: v.ID,
				Branch:    v.Branch,
				Detail:    cfg.message,
			}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "[%s %s] %s\n", v.Branch, shortID(v.ID), v.Message)
			if len(v.Tags) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "tags: %s\n", strings.Join(v.Tags, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfg.message, "message", "m", "", "commit message")
	cmd.Flags().StringVarP(&cfg.author, "author", "a", "", "commit author")
	cmd.Flags().StringVar(&cfg.snapshot, "snapshot", "", "path to snapshot JSON")
	cmd.Flags().StringSliceVar(&cfg.tags, "tag", nil, "tag(s) for the new version")
	cmd.Flags().BoolVar(&cfg.force, "force", false, "skip precondition checks")
	cmd.MarkFlagRequired("message")
	cmd.MarkFlagRequired("snapshot")
	return cmd
}
