package arb

import (
	"context"
	"log/slog"
	"time"

	"github.com/L3Sota/arbview/arb/config"
	"github.com/L3Sota/arbview/arb/model"
)

// App wires the collector, scanner and notifiers around a shared Board.
type App struct {
	Exchanges     []string
	Interval      time.Duration
	ScanOnRefresh bool

	Collector *Collector
	Scanner   *Scanner
	Notifier  Notifier
	Board     *Board
	Logger    *slog.Logger
}

func New(conf *config.Config, logger *slog.Logger) *App {
	cat := DefaultCatalog(conf, logger)

	notifiers := Notifiers{LogNotifier{Logger: logger}}
	if conf.PEnable {
		notifiers = append(notifiers, NewPushoverNotifier(conf.PKey, conf.PUser))
	}

	return &App{
		Exchanges:     conf.Exchanges,
		Interval:      conf.RefreshInterval,
		ScanOnRefresh: conf.ScanOnRefresh,
		Collector: &Collector{
			Catalog:     cat,
			Symbol:      conf.Symbol,
			Parallelism: conf.Parallelism,
			Logger:      logger,
		},
		Scanner: &Scanner{
			Catalog:   cat,
			Symbol:    conf.Symbol,
			Fresh:     conf.ScanMode == config.ScanFresh,
			Symmetric: conf.ScanSymmetric,
			Logger:    logger,
		},
		Notifier: notifiers,
		Board:    &Board{},
		Logger:   logger,
	}
}

// Start collects the first snapshot and runs the one-off scan over it.
func (a *App) Start(ctx context.Context) {
	a.Scan(ctx, a.Collect(ctx))
}

// Collect runs the collector and publishes the result on the board.
func (a *App) Collect(ctx context.Context) model.Snapshot {
	snap := a.Collector.Collect(ctx, a.Exchanges)
	a.Board.SetSnapshot(snap)
	return snap
}

func (a *App) Scan(ctx context.Context, snap model.Snapshot) []model.Opportunity {
	opps := a.Scanner.Scan(ctx, snap)
	a.Board.SetOpportunities(opps)

	if a.Notifier != nil {
		if err := a.Notifier.Notify(ctx, snap.Symbol, opps); err != nil {
			a.logger().Warn("notify failed", "run", snap.ID, "err", err)
		}
	}

	return opps
}

// Refresh recollects every Interval until ctx is done. It does not collect
// immediately; call Start first.
func (a *App) Refresh(ctx context.Context) error {
	t := time.NewTicker(a.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			snap := a.Collect(ctx)
			if a.ScanOnRefresh {
				a.Scan(ctx, snap)
			}
		}
	}
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}
