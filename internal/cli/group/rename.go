package group

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
)

// RenameCmd returns the group rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a group",
		Long: `Rename a group. A user's root group cannot be renamed.

Examples:
  arbor group rename --id=<group-id> --name="Shipped"
`,
		RunE: handler.Command(&renameHandler{}),
	}

	cmd.Flags().String("id", "", "Group ID (required)")
	cmd.Flags().String("name", "", "New name (required)")
	for _, name := range []string{"id", "name"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "error", err)
		}
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// renameHandler implements handler.Handler for group renames
type renameHandler struct{}

// Execute implements the Handler interface
func (h *renameHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	p := args.Parser()
	id, err := p.ParseID("id")
	if err != nil {
		return nil, err
	}
	name, err := p.ParseString("name")
	if err != nil {
		return nil, err
	}
	if err := c.App.RenameGroup(ctx, id, name); err != nil {
		return nil, err
	}
	return cli.Message{ID: id.String(), Text: "Group renamed to '" + name + "'"}, nil
}
