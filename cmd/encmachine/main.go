package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"encmachine/internal/ctxlog"
	"encmachine/internal/machine"
	"encmachine/internal/rec"
)

func run(ctx context.Context) (err error) {
	defer rec.Error(&err)

	return machine.New(os.Stdin, os.Stdout).Run()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ctx = ctxlog.Setup(ctx, "encmachine")

	logger := ctxlog.Get(ctx)

	err := run(ctx)
	if err != nil {
		logger.Error("session failed", "error", err)
		os.Exit(1)
	}
}
