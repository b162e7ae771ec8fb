package h

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/L3Sota/arbview/arb/model"
	"github.com/shopspring/decimal"
)

var btc = model.Symbol{Base: "BTC", Quote: "USDT"}

func serve(t *testing.T, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("symbol"); got != "btcusdt" {
			t.Errorf("symbol: %v", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second)
}

func TestTicker(t *testing.T) {
	c := serve(t, `{"ch":"market.btcusdt.detail.merged","status":"ok","tick":{"bid":[36000.01,0.5],"ask":[36000.02,1.2]}}`)

	got, err := c.Ticker(context.Background(), btc)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Bid.Decimal.Equal(decimal.RequireFromString("36000.01")) || !got.Ask.Decimal.Equal(decimal.RequireFromString("36000.02")) {
		t.Errorf("ticker: %+v", got)
	}
}

func TestTickerBadSymbol(t *testing.T) {
	c := serve(t, `{"status":"error","err-code":"invalid-parameter","err-msg":"invalid symbol"}`)

	if _, err := c.Ticker(context.Background(), btc); !errors.Is(err, model.ErrBadSymbol) {
		t.Errorf("want ErrBadSymbol, got %v", err)
	}
}

func TestTickerNoAsk(t *testing.T) {
	c := serve(t, `{"status":"ok","tick":{"bid":[36000.01,0.5],"ask":[]}}`)

	got, err := c.Ticker(context.Background(), btc)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Bid.Valid || got.Ask.Valid {
		t.Errorf("ticker: %+v", got)
	}
}
