package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrBadSymbol is returned by a venue that does not list the requested pair.
	ErrBadSymbol = errors.New("bad symbol")
	// ErrUnknownExchange is returned when no connector is registered for an id.
	ErrUnknownExchange = errors.New("unknown exchange")
)

// Symbol is a unified BASE/QUOTE trading pair.
type Symbol struct {
	Base  string
	Quote string
}

func ParseSymbol(s string) (Symbol, error) {
	base, quote, ok := strings.Cut(strings.TrimSpace(s), "/")
	base = strings.ToUpper(strings.TrimSpace(base))
	quote = strings.ToUpper(strings.TrimSpace(quote))
	if !ok || base == "" || quote == "" || strings.Contains(quote, "/") {
		return Symbol{}, fmt.Errorf("%w: %q", ErrBadSymbol, s)
	}
	return Symbol{Base: base, Quote: quote}, nil
}

func (s Symbol) String() string {
	return s.Base + "/" + s.Quote
}

// Join renders the pair with sep between base and quote, e.g. BTC_USDT.
func (s Symbol) Join(sep string) string {
	return s.Base + sep + s.Quote
}

func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Symbol) UnmarshalText(b []byte) error {
	p, err := ParseSymbol(string(b))
	if err != nil {
		return err
	}
	*s = p
	return nil
}

// Ticker is the best bid/ask a venue reports. Either side may be missing.
type Ticker struct {
	Bid decimal.NullDecimal
	Ask decimal.NullDecimal
}

// Venue is a single exchange connector.
type Venue interface {
	Ticker(ctx context.Context, s Symbol) (Ticker, error)
}

// ParsePrice reads a venue price string. An empty string is a missing side.
func ParsePrice(s string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("tried to parse %v, got err: %w", s, err)
	}
	return decimal.NewNullDecimal(d), nil
}

func ParseTicker(bid, ask string) (Ticker, error) {
	b, err := ParsePrice(bid)
	if err != nil {
		return Ticker{}, err
	}
	a, err := ParsePrice(ask)
	if err != nil {
		return Ticker{}, err
	}
	return Ticker{Bid: b, Ask: a}, nil
}

type Quote struct {
	Exchange string
	Bid      decimal.NullDecimal
	Ask      decimal.NullDecimal
}

// Complete reports whether both sides are present and positive.
func (q Quote) Complete() bool {
	return q.Bid.Valid && q.Ask.Valid && q.Bid.Decimal.IsPositive() && q.Ask.Decimal.IsPositive()
}

// Spread is ask minus bid. Only meaningful for a complete quote.
func (q Quote) Spread() decimal.Decimal {
	return q.Ask.Decimal.Sub(q.Bid.Decimal)
}

// Snapshot is one full collection run. Bids, Asks and Spreads are indexed
// like Exchanges.
type Snapshot struct {
	ID        string            `json:"id"`
	Symbol    Symbol            `json:"symbol"`
	Exchanges []string          `json:"exchanges"`
	Bids      []decimal.Decimal `json:"bids"`
	Asks      []decimal.Decimal `json:"asks"`
	Spreads   []decimal.Decimal `json:"spreads"`
	TakenAt   time.Time         `json:"taken_at"`
}

// Add appends a complete quote to all four sequences.
func (s *Snapshot) Add(q Quote) {
	s.Exchanges = append(s.Exchanges, q.Exchange)
	s.Bids = append(s.Bids, q.Bid.Decimal)
	s.Asks = append(s.Asks, q.Ask.Decimal)
	s.Spreads = append(s.Spreads, q.Spread())
}

func (s Snapshot) Len() int {
	return len(s.Exchanges)
}

func (s Snapshot) Quote(i int) Quote {
	return Quote{
		Exchange: s.Exchanges[i],
		Bid:      decimal.NewNullDecimal(s.Bids[i]),
		Ask:      decimal.NewNullDecimal(s.Asks[i]),
	}
}

// Opportunity is a crossed pair: Sell's bid is above Buy's ask.
type Opportunity struct {
	Sell string          `json:"sell"`
	Buy  string          `json:"buy"`
	Bid  decimal.Decimal `json:"bid"`
	Ask  decimal.Decimal `json:"ask"`
	Gap  decimal.Decimal `json:"gap"`
}

func (o Opportunity) String() string {
	return fmt.Sprintf("sell %v @ %v / buy %v @ %v (gap %v)", o.Sell, o.Bid, o.Buy, o.Ask, o.Gap)
}
