// Package group holds all cli commands related to board groups
//
// e.g., arbor group ...
package group

import (
	"github.com/spf13/cobra"
)

// GroupCmd returns the group parent command
func GroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage the groups of a board",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(ReorderCmd())
	cmd.AddCommand(RemoveCmd())

	return cmd
}
