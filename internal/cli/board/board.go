// Package board holds all cli commands related to boards
//
// e.g., arbor board ...
package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(SetupCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
