package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"toolbox/cmd/toolbox/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	commands.ExecuteContext(ctx)
}
