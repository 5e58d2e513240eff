package board

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
)

// MoveCmd returns the board move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a board after another entry",
		Long: `Place a board right after --after, which may sit in another list.
When --after is a group, a user node id or a username the board moves to the
head of that list. Root list moves need --root and stay within the --host
user's root list.

Examples:
  # Reorder within a group
  arbor board move --host=<group-id> --id=<board-id> --after=<other-board-id>

  # Move into another group, at its head
  arbor board move --host=<board-id> --id=<board-id> --after=<group-id>

  # Move to the head of alice's root list
  arbor board move --root --host=alice --id=<board-id> --after=alice
`,
		RunE: handler.Command(&moveHandler{}),
	}

	cmd.Flags().String("host", "", "Board, group or user hosting the move (required)")
	cmd.Flags().String("id", "", "Board (or link) ID to move (required)")
	cmd.Flags().String("after", "", "Entry to place the board after, or the host for the head (required)")
	for _, name := range []string{"host", "id", "after"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "error", err)
		}
	}
	cmd.Flags().Bool("root", false, "The host is a user's root list")

	cli.AddOutputFlags(cmd)

	return cmd
}

// moveHandler implements handler.Handler for board moves
type moveHandler struct{}

// Execute implements the Handler interface
func (h *moveHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	p := args.Parser()
	host, err := p.ParseID("host")
	if err != nil {
		return nil, err
	}
	id, err := p.ParseID("id")
	if err != nil {
		return nil, err
	}
	after, err := p.ParseID("after")
	if err != nil {
		return nil, err
	}

	moved, err := c.App.MoveBoard(ctx, host, id, after, args.GetBool("root"))
	if err != nil {
		return nil, err
	}
	if !moved {
		return cli.Message{ID: id.String(), Text: "Board already in place"}, nil
	}
	return cli.Message{ID: id.String(), Text: "Board moved after " + after.String()}, nil
}
