package arb

import (
	"context"
	"log/slog"
	"time"

	"github.com/L3Sota/arbview/arb/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Collector struct {
	Catalog *Catalog
	Symbol  model.Symbol
	// Parallelism caps in-flight ticker requests. 1 means strictly sequential.
	Parallelism int
	Logger      *slog.Logger

	now func() time.Time
}

// Collect fetches one ticker per exchange and keeps the ones quoting both
// sides. ids defaults to the whole catalog. Order follows ids.
func (c *Collector) Collect(ctx context.Context, ids []string) model.Snapshot {
	if len(ids) == 0 {
		ids = c.Catalog.IDs()
	}

	snap := model.Snapshot{
		ID:        uuid.NewString(),
		Symbol:    c.Symbol,
		Exchanges: make([]string, 0, len(ids)),
		Bids:      make([]decimal.Decimal, 0, len(ids)),
		Asks:      make([]decimal.Decimal, 0, len(ids)),
		Spreads:   make([]decimal.Decimal, 0, len(ids)),
	}
	logger := c.logger().With("run", snap.ID)

	quotes := make([]model.Quote, len(ids))
	ok := make([]bool, len(ids))

	if c.Parallelism <= 1 {
		for i, id := range ids {
			quotes[i], ok[i] = fetchQuote(ctx, c.Catalog, id, c.Symbol, logger)
		}
	} else {
		eg, ectx := errgroup.WithContext(ctx)
		eg.SetLimit(c.Parallelism)
		for i, id := range ids {
			eg.Go(func() error {
				quotes[i], ok[i] = fetchQuote(ectx, c.Catalog, id, c.Symbol, logger)
				return nil
			})
		}
		_ = eg.Wait()
	}

	for i, q := range quotes {
		if ok[i] {
			snap.Add(q)
		}
	}
	snap.TakenAt = c.clock()

	logger.Info("collected quotes", "symbol", c.Symbol, "exchanges", len(ids), "quoting", snap.Len())

	return snap
}

func (c *Collector) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c *Collector) clock() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// fetchQuote never fails: any problem with a venue just drops it.
func fetchQuote(ctx context.Context, cat *Catalog, id string, s model.Symbol, logger *slog.Logger) (model.Quote, bool) {
	v, err := cat.Venue(id)
	if err != nil {
		logger.Debug("skip exchange", "exchange", id, "err", err)
		return model.Quote{}, false
	}

	t, err := v.Ticker(ctx, s)
	if err != nil {
		logger.Debug("skip exchange", "exchange", id, "err", err)
		return model.Quote{}, false
	}

	q := model.Quote{Exchange: id, Bid: t.Bid, Ask: t.Ask}
	if !q.Complete() {
		logger.Debug("skip exchange", "exchange", id, "reason", "incomplete ticker")
		return model.Quote{}, false
	}

	return q, true
}
