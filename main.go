package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/cmd"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
