package group

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
)

// ReorderCmd returns the group reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Change where a group sorts on its board",
		Long: `Set the position of a group on its board. Groups are shown by position,
then by id when two share one.

Examples:
  arbor group reorder --id=<group-id> --order=0
`,
		RunE: handler.Command(handler.HandlerFunc(runReorder)),
	}

	cmd.Flags().String("id", "", "Group ID (required)")
	cmd.Flags().Int("order", 0, "New position, 0 or more (required)")
	for _, name := range []string{"id", "order"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "error", err)
		}
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runReorder(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	p := args.Parser()
	id, err := p.ParseID("id")
	if err != nil {
		return nil, err
	}
	order, err := p.ParseInt("order")
	if err != nil {
		return nil, err
	}
	if err := c.App.ReorderGroup(ctx, id, order); err != nil {
		return nil, err
	}
	return cli.Message{ID: id.String(), Text: fmt.Sprintf("Group moved to position %d", order)}, nil
}
