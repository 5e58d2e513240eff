package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a board",
		Long: `Delete a board together with its empty groups and every link that
shares it. A board with a non-empty group is not deleted.

Examples:
  arbor board delete --id=<board-id>
`,
		RunE: handler.Command(&deleteHandler{}),
	}

	cmd.Flags().String("id", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// deleteHandler implements handler.Handler for board deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := args.Parser().ParseID("id")
	if err != nil {
		return nil, err
	}
	board, err := c.App.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.App.DeleteBoard(ctx, id); err != nil {
		return nil, err
	}
	return cli.Message{ID: id.String(), Text: fmt.Sprintf("Board '%s' deleted", board.Name)}, nil
}
