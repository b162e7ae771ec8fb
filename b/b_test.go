package b

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

func serve(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/ticker/bookTicker" {
			t.Errorf("path: %v", r.URL.Path)
		}
		if got := r.URL.Query().Get("symbol"); got != "BTCUSDT" {
			t.Errorf("symbol: %v", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second)
}

func TestTicker(t *testing.T) {
	c := serve(t, http.StatusOK, `{"symbol":"BTCUSDT","bidPrice":"100.10","bidQty":"1","askPrice":"100.20","askQty":"2"}`)

	got, err := c.Ticker(context.Background(), btc)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Bid.Decimal.Equal(decimal.RequireFromString("100.1")) || !got.Ask.Decimal.Equal(decimal.RequireFromString("100.2")) {
		t.Errorf("ticker: %+v", got)
	}
}

func TestTickerBadSymbol(t *testing.T) {
	c := serve(t, http.StatusBadRequest, `{"code":-1121,"msg":"Invalid symbol."}`)

	if _, err := c.Ticker(context.Background(), btc); !errors.Is(err, model.ErrBadSymbol) {
		t.Errorf("want ErrBadSymbol, got %v", err)
	}
}

func TestTickerServerError(t *testing.T) {
	c := serve(t, http.StatusInternalServerError, `oops`)

	_, err := c.Ticker(context.Background(), btc)
	if err == nil || errors.Is(err, model.ErrBadSymbol) {
		t.Errorf("want generic error, got %v", err)
	}
}
