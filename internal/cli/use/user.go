package use

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/user"
)

// UserCmd returns the use user subcommand
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user [username]",
		Short: "Set the acting user for the current shell session",
		Long: `Set the acting user through an environment variable.
This command outputs shell commands that should be evaluated:

  eval $(arbor use user alice)     # Act as alice
  eval $(arbor use user --clear)   # Clear the user context
  arbor use user --show            # Show the current user

ARBOR_USER is set in your current shell session only. The --user flag on
other commands takes precedence over it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseUser,
	}

	cmd.Flags().Bool("clear", false, "Clear the current user context")
	cmd.Flags().Bool("show", false, "Show the current user context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseUser(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if showFlag {
		return showCurrentUser(cmd)
	}

	if clearFlag {
		if dryRun {
			fmt.Fprintf(cmd.ErrOrStderr(), "Would clear %s\n", user.EnvVar)
			return nil
		}
		fmt.Printf("unset %s\n", user.EnvVar)
		fmt.Fprintf(cmd.ErrOrStderr(), "Cleared user context\n")
		return nil
	}

	if len(args) == 0 {
		return &cli.UsageError{Msg: "username required\nUsage: eval $(arbor use user <username>)"}
	}
	username := args[0]

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	u, err := cliInstance.App.GetUser(ctx, username)
	if err != nil {
		formatter := &cli.OutputFormatter{}
		return formatter.Fail(err)
	}

	if dryRun {
		fmt.Fprintf(cmd.ErrOrStderr(), "Would set %s=%s (%s)\n", user.EnvVar, u.Username, u.DisplayName)
		return nil
	}

	fmt.Printf("export %s=%s\n", user.EnvVar, u.Username)
	fmt.Fprintf(cmd.ErrOrStderr(), "Now acting as %s\n", u.Username)

	return nil
}

func showCurrentUser(cmd *cobra.Command) error {
	if current := os.Getenv(user.EnvVar); current != "" {
		fmt.Printf("Current user: %s\n", current)
		return nil
	}
	fmt.Println("No user context set")
	if fallback := user.GetCurrentUsername(); fallback != "" {
		fmt.Printf("Commands fall back to the OS user: %s\n", fallback)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Use 'eval $(arbor use user <username>)' to set one\n")
	return nil
}
