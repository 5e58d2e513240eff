// Package cmd wires the arbor command tree
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/arbor/internal/cli"
	"github.com/thenoetrevino/arbor/internal/cli/board"
	"github.com/thenoetrevino/arbor/internal/cli/check"
	"github.com/thenoetrevino/arbor/internal/cli/group"
	"github.com/thenoetrevino/arbor/internal/cli/share"
	"github.com/thenoetrevino/arbor/internal/cli/styles"
	"github.com/thenoetrevino/arbor/internal/cli/use"
	"github.com/thenoetrevino/arbor/internal/cli/user"
	"github.com/thenoetrevino/arbor/internal/config"
	"github.com/thenoetrevino/arbor/internal/models"
)

// NewRootCmd builds the arbor command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arbor",
		Short: "Arbor - hierarchical task boards",
		Long: `Arbor keeps task boards in ordered groups, nests boards inside groups
to any depth and shares boards with other users without copying them.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default: $ARBOR_CONFIG or ~/.config/arbor/config.yaml)")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Msg: err.Error()}
	})

	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(group.GroupCmd())
	rootCmd.AddCommand(share.ShareCmd())
	rootCmd.AddCommand(check.CheckCmd())
	rootCmd.AddCommand(use.UseCmd())

	return rootCmd
}

// loadConfig reads the configuration once per invocation and hands it to the
// command through its context
func loadConfig(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return &cli.UsageError{Msg: fmt.Sprintf("cannot load config: %v", err)}
	}

	styles.Init(cfg.Theme)
	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

// ExecuteContext runs the command tree. Errors cobra raises before a command
// runs, such as a missing required flag, come back as usage errors.
func ExecuteContext(ctx context.Context) error {
	return asUsage(NewRootCmd().ExecuteContext(ctx))
}

func asUsage(err error) error {
	if err == nil {
		return nil
	}
	var usage *cli.UsageError
	if errors.As(err, &usage) || models.Kind(err) != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &cli.UsageError{Msg: err.Error()}
}
