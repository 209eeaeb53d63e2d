package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/agentflare-ai/pydown/internal/derrors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pydown:", err)
		os.Exit(derrors.ExitCode(err))
	}
}
