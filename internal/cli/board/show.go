package board

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a board with its groups and boards",
		Long: `Show a board, its ancestors and, once set up, every group with its
boards in order. --user selects whose access level is reported.

Examples:
  arbor board show --id=<board-id>
  arbor board show --id=<board-id> --user=bob --json
`,
		RunE: handler.Command(&showHandler{}),
	}

	cmd.Flags().String("id", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("user", "", "Requesting username")

	cli.AddOutputFlags(cmd)

	return cmd
}

// showHandler implements handler.Handler for board reads
type showHandler struct{}

// Execute implements the Handler interface
func (h *showHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	p := args.Parser()
	id, err := p.ParseID("id")
	if err != nil {
		return nil, err
	}
	user, err := p.ParseStringOptional("user")
	if err != nil {
		return nil, err
	}
	contents, err := c.App.GetBoardContents(ctx, id, user)
	if err != nil {
		return nil, err
	}
	return cli.NewContentsView(contents), nil
}
