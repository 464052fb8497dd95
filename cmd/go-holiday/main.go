package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tartampluch/go-holiday/internal/cli"
)

// main delegates to runMain so deferred calls run before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain cancels the root context on SIGINT or SIGTERM, which lets the
// serve command shut down gracefully.
func runMain() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return cli.Execute(ctx)
}
