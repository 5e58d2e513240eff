package board

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's root boards",
		Long: `List the boards in a user's root list in order, including boards
shared with them.

Examples:
  arbor board list --user=alice
  arbor board list --user=alice --json
`,
		RunE: handler.Command(&listHandler{}),
	}

	cmd.Flags().String("user", "", "Username (default: $ARBOR_USER or the OS user)")

	cli.AddOutputFlags(cmd)

	return cmd
}

// listHandler implements handler.Handler for root list reads
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	username, err := args.Parser().ParseUsernameOrCurrent("user")
	if err != nil {
		return nil, err
	}
	entries, err := c.App.GetAllRootBoards(ctx, username)
	if err != nil {
		return nil, err
	}
	return cli.NewRootListView(username, entries), nil
}
