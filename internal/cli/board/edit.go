package board

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
)

// EditCmd returns the board edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a board's content",
		Long: `Replace board content fields. Fields whose flags are not given keep
their stored value. Pass --deadline="" to clear the deadline.

Examples:
  arbor board edit --id=<board-id> --name="Launch v2"
  arbor board edit --id=<board-id> --tag=urgent --tag=web --deadline=2026-12-01
`,
		RunE: handler.Command(&editHandler{}),
	}

	cmd.Flags().String("id", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddContentFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

// editHandler implements handler.Handler for board edits
type editHandler struct{}

// Execute implements the Handler interface
func (h *editHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	p := args.Parser()
	id, err := p.ParseID("id")
	if err != nil {
		return nil, err
	}

	current, err := c.App.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	content, err := p.ParseContent(current.BoardContent)
	if err != nil {
		return nil, err
	}
	if err := c.App.EditBoard(ctx, id, content); err != nil {
		return nil, err
	}

	updated, err := c.App.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	return cli.NewBoardView(updated), nil
}
