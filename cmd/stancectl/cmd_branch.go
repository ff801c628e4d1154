package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/stance-vcs/internal/logging"
)

// newBranchCmd creates the "stancectl branch" subcommand.
func newBranchCmd() *cobra.Command {
	var from, desc string
	var del bool

	cmd := &cobra.Command{
		Use:   "branch <name>",
		Short: "Create or delete a branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			name := args[0]
			if del {
				if err := env.graph.DeleteBranch(name); err != nil {
					return err
				}
				if err := env.saveAndLog(logging.OperationEntry{Op: "branch", Branch: name, Detail: "deleted"}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted branch %q\n", name)
				return nil
			}

			br, err := env.graph.CreateBranch(name, from, desc)
			if err != nil {
				return err
			}
			if err := env.saveAndLog(logging.OperationEntry{
				Op:     "branch",
				Branch: br.Name,
				Detail: fmt.Sprintf("created at %s", shortID(br.Head)),
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created branch %q at %s\n", br.Name, shortID(br.Head))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source version id (default: current head)")
	cmd.Flags().StringVar(&desc, "description", "", "branch description")
	cmd.Flags().BoolVarP(&del, "delete", "d", false, "delete the branch instead")
	return cmd
}

// newBranchesCmd creates the "stancectl branches" subcommand.
func newBranchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			current := env.graph.CurrentBranch()
			w := cmd.OutOrStdout()
			for _, br := range env.graph.Branches() {
				marker := " "
				if br.Name == current {
					marker = "*"
				}
				head := "(empty)"
				if br.Head != "" {
					head = shortID(br.Head)
				}
				line := fmt.Sprintf("%s %-20s %s", marker, br.Name, head)
				if br.Protected {
					line += "  protected"
				}
				if br.Description != "" {
					line += "  " + br.Description
				}
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}
}

// newCheckoutCmd creates the "stancectl checkout" subcommand.
func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <branch>",
		Short: "Switch the current branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			if err := env.graph.Checkout(args[0]); err != nil {
				return err
			}
			if err := env.saveAndLog(logging.OperationEntry{Op: "checkout", Branch: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "switched to %q\n", args[0])
			return nil
		},
	}
}
