// Package share holds all cli commands related to sharing boards
//
// e.g., arbor share ...
package share

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
)

// ShareCmd returns the share parent command
func ShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Share boards with other users",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}

func addBoardUserFlags(cmd *cobra.Command) {
	cmd.Flags().String("board", "", "Board ID (required)")
	cmd.Flags().String("user", "", "Collaborator username (required)")
	for _, name := range []string{"board", "user"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "error", err)
		}
	}
	cli.AddOutputFlags(cmd)
}

// AddCmd returns the share add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Share a board with a user",
		Long: `Put a link to the board at the head of the user's root list.
Sharing again, or with the owner, changes nothing.

Examples:
  arbor share add --board=<board-id> --user=bob
`,
		RunE: handler.Command(handler.HandlerFunc(runAdd)),
	}
	addBoardUserFlags(cmd)
	return cmd
}

func runAdd(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	p := args.Parser()
	boardID, err := p.ParseID("board")
	if err != nil {
		return nil, err
	}
	username, err := p.ParseUsername("user")
	if err != nil {
		return nil, err
	}
	added, err := c.App.AddCollaborator(ctx, boardID, username)
	if err != nil {
		return nil, err
	}
	if !added {
		return cli.Message{ID: boardID.String(), Text: fmt.Sprintf("%s already has board %s", username, boardID)}, nil
	}
	return cli.Message{ID: boardID.String(), Text: fmt.Sprintf("Board %s shared with %s", boardID, username)}, nil
}

// RemoveCmd returns the share remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Stop sharing a board with a user",
		Long: `Remove the user's link to the board.

Examples:
  arbor share remove --board=<board-id> --user=bob
`,
		RunE: handler.Command(handler.HandlerFunc(runRemove)),
	}
	addBoardUserFlags(cmd)
	return cmd
}

func runRemove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	p := args.Parser()
	boardID, err := p.ParseID("board")
	if err != nil {
		return nil, err
	}
	username, err := p.ParseUsername("user")
	if err != nil {
		return nil, err
	}
	if err := c.App.RemoveCollaborator(ctx, boardID, username); err != nil {
		return nil, err
	}
	return cli.Message{ID: boardID.String(), Text: fmt.Sprintf("Board %s no longer shared with %s", boardID, username)}, nil
}

// collaboratorsResult lists who a board is shared with
type collaboratorsResult struct {
	BoardID       string   `json:"board_id"`
	Collaborators []string `json:"collaborators"`
}

// Human implements cli.HumanReadable
func (r collaboratorsResult) Human() string {
	if len(r.Collaborators) == 0 {
		return fmt.Sprintf("Board %s is not shared", r.BoardID)
	}
	return fmt.Sprintf("Board %s is shared with: %s", r.BoardID, strings.Join(r.Collaborators, ", "))
}

// ListCmd returns the share list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List who a board is shared with",
		Long: `Examples:
  arbor share list --board=<board-id> --json
`,
		RunE: handler.Command(handler.HandlerFunc(runList)),
	}
	cmd.Flags().String("board", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	boardID, err := args.Parser().ParseID("board")
	if err != nil {
		return nil, err
	}
	users, err := c.App.ListCollaborators(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []string{}
	}
	return collaboratorsResult{BoardID: boardID.String(), Collaborators: users}, nil
}
