package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/stance-vcs/internal/graph"
	"github.com/danielpatrickdp/stance-vcs/internal/persist"
)

// newInitCmd creates the "stancectl init" subcommand.
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty store with a protected main branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")

			ps, err := persist.NewStore(dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer ps.Close()

			if err := ps.Save(graph.NewStore()); err != nil {
				return fmt.Errorf("initialize store: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "initialized empty store at %s\n", dbPath)
			return nil
		},
	}
}
