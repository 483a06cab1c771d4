package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/templar-labs/templar-cli/internal/adapters/driving/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli.ExitOnError(cli.Execute(ctx))
}
