package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/arbor/cmd"
	"github.com/thenoetrevino/arbor/internal/cli"
)

func main() {
	// Set up signal handling so in-flight transactions roll back on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := cmd.ExecuteContext(ctx)
	cancel()
	os.Exit(cli.ExitCodeFor(err))
}
