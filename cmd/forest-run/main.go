// Command forest-run executes the tick budget without a window and writes
// the population reports. An interrupt ends the run early.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"graph-forest/internal/app"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "forest-run:", err)
		os.Exit(1)
	}
}

func run(opts *app.Options) error {
	logger, err := app.NewLogger(opts.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	setup, err := app.Build(opts)
	if err != nil {
		return err
	}
	world := setup.World

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var verr error
	if opts.Verify {
		app.VerifyEachTick(world, cancel, &verr)
	}
	if _, err := world.Run(ctx, world.Config().Ticks); err != nil {
		return err
	}
	if verr != nil {
		return verr
	}
	return app.WriteReports(context.Background(), opts, world)
}
