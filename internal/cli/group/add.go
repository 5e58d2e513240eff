package group

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
	"github.com/thenoetrevino/arbor/internal/models"
)

// AddCmd returns the group add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a group to a board",
		Long: `Append a group after the board's last group.

Examples:
  arbor group add --board=<board-id> --name="Review"
  GROUP_ID=$(arbor group add --board=<board-id> --name="Review" --quiet)
`,
		RunE: handler.Command(&addHandler{}),
	}

	cmd.Flags().String("board", "", "Board ID (required)")
	cmd.Flags().String("name", "", "Group name (required)")
	for _, name := range []string{"board", "name"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "error", err)
		}
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for group creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	p := args.Parser()
	boardID, err := p.ParseID("board")
	if err != nil {
		return nil, err
	}
	name, err := p.ParseString("name")
	if err != nil {
		return nil, err
	}
	group, err := c.App.AddGroup(ctx, boardID, name)
	if err != nil {
		return nil, err
	}
	return cli.NewGroupsView(boardID.String(), []*models.Group{group}).Groups[0], nil
}
