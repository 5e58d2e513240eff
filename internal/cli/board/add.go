package board

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
)

// AddCmd returns the board add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a board",
		Long: `Add a board at the head of a user's root list, or at the head of a
group when --group is given.

Examples:
  # Root board (human-readable output)
  arbor board add --user=alice --name="Launch"

  # Child board inside a group
  arbor board add --user=alice --group=<group-id> --name="Landing page"

  # Quiet mode for bash capture
  BOARD_ID=$(arbor board add --user=alice --name="Launch" --quiet)
`,
		RunE: handler.Command(&addHandler{}),
	}

	cmd.Flags().String("user", "", "Owner username (default: $ARBOR_USER or the OS user)")

	// Optional flags
	cmd.Flags().String("group", "", "Group to add the board to (default: the user's root list)")
	cli.AddContentFlags(cmd)
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for board creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	p := args.Parser()
	owner, err := p.ParseUsernameOrCurrent("user")
	if err != nil {
		return nil, err
	}
	content, err := p.ParseContent(models.BoardContent{})
	if err != nil {
		return nil, err
	}

	id, err := addBoard(ctx, c, p, content, owner)
	if err != nil {
		return nil, err
	}

	board, err := c.App.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	return cli.NewBoardView(board), nil
}

func addBoard(ctx context.Context, c *cli.CLI, p *handler.FlagParser, content models.BoardContent, owner string) (types.NodeID, error) {
	group, err := p.ParseStringOptional("group")
	if err != nil {
		return "", err
	}
	if group == "" {
		return c.App.AddRootBoard(ctx, content, owner)
	}
	groupID, err := p.ParseID("group")
	if err != nil {
		return "", err
	}
	return c.App.AddChildBoard(ctx, content, groupID, owner)
}
