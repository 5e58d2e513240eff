package board

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
)

// SetupCmd returns the board setup subcommand
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the default groups on a board",
		Long: `Attach the configured default groups to a board that has no groups yet.

Examples:
  arbor board setup --id=<board-id>
  arbor board setup --id=<board-id> --json
`,
		RunE: handler.Command(&setupHandler{}),
	}

	cmd.Flags().String("id", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// setupHandler implements handler.Handler for board setup
type setupHandler struct{}

// Execute implements the Handler interface
func (h *setupHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := args.Parser().ParseID("id")
	if err != nil {
		return nil, err
	}
	groups, err := c.App.SetupBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	return cli.NewGroupsView(id.String(), groups), nil
}
