package arb

import (
	"context"
	"sync"

	"github.com/L3Sota/arbview/arb/model"
	"github.com/shopspring/decimal"
)

type venueFunc func(ctx context.Context, s model.Symbol) (model.Ticker, error)

func (f venueFunc) Ticker(ctx context.Context, s model.Symbol) (model.Ticker, error) {
	return f(ctx, s)
}

// market is a set of fake venues whose tickers can be changed between calls.
type market struct {
	mu      sync.Mutex
	tickers map[string]model.Ticker
	errs    map[string]error
	calls   map[string]int
}

func newMarket() *market {
	return &market{
		tickers: map[string]model.Ticker{},
		errs:    map[string]error{},
		calls:   map[string]int{},
	}
}

func (m *market) set(id, bid, ask string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickers[id] = tk(bid, ask)
}

func (m *market) fail(id string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[id] = err
}

func (m *market) count(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[id]
}

func (m *market) total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

func (m *market) catalog(ids ...string) *Catalog {
	cat := NewCatalog()
	for _, id := range ids {
		cat.Register(id, func() (model.Venue, error) {
			return venueFunc(func(context.Context, model.Symbol) (model.Ticker, error) {
				m.mu.Lock()
				defer m.mu.Unlock()
				m.calls[id]++
				if err := m.errs[id]; err != nil {
					return model.Ticker{}, err
				}
				return m.tickers[id], nil
			}), nil
		})
	}
	return cat
}

// tk builds a ticker; "" leaves a side missing.
func tk(bid, ask string) model.Ticker {
	t, err := model.ParseTicker(bid, ask)
	if err != nil {
		panic(err)
	}
	return t
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var btc = model.Symbol{Base: "BTC", Quote: "USDT"}
