// Package use sets per-shell defaults so flags like --user can be left out
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Set shell defaults for later commands",
		Long: `Print shell statements that set defaults for later arbor commands.
Wrap them in eval so they apply to the current shell.

Examples:
  eval $(arbor use user alice)     # act as alice
  eval $(arbor use user --clear)   # forget the acting user
  arbor use user --show            # print the acting user`,
	}
	cmd.AddCommand(UserCmd())
	return cmd
}
