package arb

import (
	"context"
	"log/slog"

	"github.com/L3Sota/arbview/arb/model"
)

// Scanner looks for crossed books between every unordered pair of exchanges
// in a snapshot.
//
// For a pair (i, j) with i before j only bid(i) > ask(j) is checked unless
// Symmetric is set.
type Scanner struct {
	Catalog *Catalog
	Symbol  model.Symbol
	// Fresh refetches both tickers for every pair instead of reusing the
	// snapshot's quotes.
	Fresh     bool
	Symmetric bool
	Logger    *slog.Logger
}

func (s *Scanner) Scan(ctx context.Context, snap model.Snapshot) []model.Opportunity {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run", snap.ID)

	var opps []model.Opportunity
	n := snap.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if ctx.Err() != nil {
				return opps
			}

			qi, qj := snap.Quote(i), snap.Quote(j)
			if s.Fresh {
				var ok bool
				if qi, ok = fetchQuote(ctx, s.Catalog, snap.Exchanges[i], s.Symbol, logger); !ok {
					continue
				}
				if qj, ok = fetchQuote(ctx, s.Catalog, snap.Exchanges[j], s.Symbol, logger); !ok {
					continue
				}
			}

			if o, ok := cross(qi, qj); ok {
				logger.Info("arbitrage opportunity detected", "sell", o.Sell, "buy", o.Buy, "bid", o.Bid, "ask", o.Ask, "gap", o.Gap)
				opps = append(opps, o)
			}
			if s.Symmetric {
				if o, ok := cross(qj, qi); ok {
					logger.Info("arbitrage opportunity detected", "sell", o.Sell, "buy", o.Buy, "bid", o.Bid, "ask", o.Ask, "gap", o.Gap)
					opps = append(opps, o)
				}
			}
		}
	}

	return opps
}

// cross reports whether sell's bid is strictly above buy's ask.
func cross(sell, buy model.Quote) (model.Opportunity, bool) {
	if !sell.Bid.Decimal.GreaterThan(buy.Ask.Decimal) {
		return model.Opportunity{}, false
	}
	return model.Opportunity{
		Sell: sell.Exchange,
		Buy:  buy.Exchange,
		Bid:  sell.Bid.Decimal,
		Ask:  buy.Ask.Decimal,
		Gap:  sell.Bid.Decimal.Sub(buy.Ask.Decimal),
	}, true
}
