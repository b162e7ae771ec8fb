package m

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/L3Sota/arbview/arb/model"
	"github.com/shopspring/decimal"
)

func TestTicker(t *testing.T) {
	var asked string
	c := &Client{
		timeout: time.Second,
		depth: func(_ context.Context, symbol string) ([][]string, [][]string, error) {
			asked = symbol
			return [][]string{{"99.5", "1"}, {"99", "2"}}, [][]string{{"100", "3"}}, nil
		},
	}

	got, err := c.Ticker(context.Background(), model.Symbol{Base: "BTC", Quote: "USDT"})
	if err != nil {
		t.Fatal(err)
	}
	if asked != "BTCUSDT" {
		t.Errorf("symbol: %v", asked)
	}
	if !got.Bid.Decimal.Equal(decimal.RequireFromString("99.5")) || !got.Ask.Decimal.Equal(decimal.NewFromInt(100)) {
		t.Errorf("ticker: %+v", got)
	}
}

func TestTickerEmptyBook(t *testing.T) {
	c := &Client{
		timeout: time.Second,
		depth: func(context.Context, string) ([][]string, [][]string, error) {
			return nil, [][]string{{"100", "3"}}, nil
		},
	}

	got, err := c.Ticker(context.Background(), model.Symbol{Base: "BTC", Quote: "USDT"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Bid.Valid || !got.Ask.Valid {
		t.Errorf("ticker: %+v", got)
	}
}

func TestTickerError(t *testing.T) {
	boom := errors.New("boom")
	c := &Client{
		timeout: time.Second,
		depth: func(context.Context, string) ([][]string, [][]string, error) {
			return nil, nil, boom
		},
	}

	_, err := c.Ticker(context.Background(), model.Symbol{Base: "BTC", Quote: "USDT"})
	if !errors.Is(err, boom) {
		t.Errorf("want boom, got %v", err)
	}
	if errors.Is(err, model.ErrBadSymbol) {
		t.Errorf("connectivity error classified as bad symbol: %v", err)
	}
}

func TestTickerBadSymbol(t *testing.T) {
	for name, reply := range map[string]string{
		"code":    `request failed: {"code":-1121,"msg":"Invalid symbol."}`,
		"message": "Invalid symbol.",
	} {
		t.Run(name, func(t *testing.T) {
			c := &Client{
				timeout: time.Second,
				depth: func(context.Context, string) ([][]string, [][]string, error) {
					return nil, nil, errors.New(reply)
				},
			}

			if _, err := c.Ticker(context.Background(), model.Symbol{Base: "NOPE", Quote: "USDT"}); !errors.Is(err, model.ErrBadSymbol) {
				t.Errorf("want ErrBadSymbol, got %v", err)
			}
		})
	}
}
