// Package user holds all cli commands related to user accounts
//
// e.g., arbor user ...
package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/thenoetrevino/arbor/internal/app"
	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/handler"
	"github.com/thenoetrevino/arbor/internal/models"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}

// userView is the printable form of a user. Secrets are never printed.
type userView struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	NodeID      string    `json:"node_id"`
	RootGroupID string    `json:"root_group_id"`
	HasPassword bool      `json:"has_password"`
	PublicKey   string    `json:"public_key,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newUserView(u *models.User) userView {
	return userView{
		Username:    u.Username,
		DisplayName: u.DisplayName,
		NodeID:      u.NodeID.String(),
		RootGroupID: u.RootGroupID.String(),
		HasPassword: u.PasswordHash != "",
		PublicKey:   u.PublicKey,
		CreatedAt:   u.CreatedAt,
	}
}

// GetID implements cli.IDGetter
func (v userView) GetID() string { return v.Username }

// Human implements cli.HumanReadable
func (v userView) Human() string {
	return fmt.Sprintf("✓ %s (%s)\n  Node: %s\n  Root list: %s", v.Username, v.DisplayName, v.NodeID, v.RootGroupID)
}

// CreateCmd returns the user create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user with an empty root list",
		Long: `Create a user. The password, when given, is stored as a bcrypt hash.

Examples:
  arbor user create --username=alice
  arbor user create --username=bob --name="Bob B." --password="s3cret" --json
`,
		RunE: handler.Command(handler.HandlerFunc(runCreate)),
	}

	cmd.Flags().String("username", "", "Unique username without whitespace (required)")
	if err := cmd.MarkFlagRequired("username"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("name", "", "Display name (default: the username)")
	cmd.Flags().String("password", "", "Password to hash and store")
	cmd.Flags().String("public-key", "", "Public key material")
	cmd.Flags().String("private-key", "", "Private key material (stored, never printed)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	p := args.Parser()
	username, err := p.ParseUsername("username")
	if err != nil {
		return nil, err
	}
	req := app.CreateUserRequest{
		Username:    username,
		DisplayName: args.GetString("name", ""),
		PublicKey:   strings.TrimSpace(args.GetString("public-key", "")),
		PrivateKey:  strings.TrimSpace(args.GetString("private-key", "")),
	}
	if password := args.GetString("password", ""); password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, &cli.UsageError{Msg: "cannot hash password: " + err.Error()}
		}
		req.PasswordHash = string(hash)
	}

	u, err := c.App.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}
	return newUserView(u), nil
}

// ShowCmd returns the user show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a user",
		RunE:  handler.Command(handler.HandlerFunc(runShow)),
	}
	cmd.Flags().String("username", "", "Username (required)")
	if err := cmd.MarkFlagRequired("username"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	username, err := args.Parser().ParseUsername("username")
	if err != nil {
		return nil, err
	}
	u, err := c.App.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return newUserView(u), nil
}

// usersResult lists every user
type usersResult struct {
	Users []userView `json:"users"`
}

// Human implements cli.HumanReadable
func (r usersResult) Human() string {
	if len(r.Users) == 0 {
		return "No users found"
	}
	lines := []string{fmt.Sprintf("Users (%d):", len(r.Users))}
	for _, u := range r.Users {
		lines = append(lines, fmt.Sprintf("  %s (%s)", u.Username, u.DisplayName))
	}
	return strings.Join(lines, "\n")
}

// ListCmd returns the user list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE:  handler.Command(handler.HandlerFunc(runList)),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	users, err := c.App.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	result := usersResult{Users: make([]userView, 0, len(users))}
	for _, u := range users {
		result.Users = append(result.Users, newUserView(u))
	}
	return result, nil
}
