package group

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
)

// RemoveCmd returns the group remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove an empty group",
		Long: `Remove a group from its board. The group must hold no boards.

Examples:
  arbor group remove --id=<group-id>
`,
		RunE: handler.Command(&removeHandler{}),
	}

	cmd.Flags().String("id", "", "Group ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// removeHandler implements handler.Handler for group removal
type removeHandler struct{}

// Execute implements the Handler interface
func (h *removeHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := args.Parser().ParseID("id")
	if err != nil {
		return nil, err
	}
	if err := c.App.RemoveGroup(ctx, id); err != nil {
		return nil, err
	}
	return cli.Message{ID: id.String(), Text: "Group removed"}, nil
}
