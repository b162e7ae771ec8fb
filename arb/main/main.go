package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/L3Sota/arbview/arb"
	"github.com/L3Sota/arbview/arb/config"
	"github.com/L3Sota/arbview/web"
	"golang.org/x/sync/errgroup"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: conf.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := arb.New(conf, logger)
	app.Start(ctx)

	srv := web.New(app.Board, conf.RefreshInterval, conf.HistogramBins, logger)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return app.Refresh(ctx)
	})
	eg.Go(func() error {
		return srv.Run(ctx, conf.Addr)
	})

	if err := eg.Wait(); err != nil {
		logger.Error("exit", "err", err)
		os.Exit(1)
	}
}
