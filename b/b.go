package b

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/L3Sota/arbview/arb/model"
	"gopkg.in/resty.v1"
)

const BaseURL = "https://api.binance.com"

// codeInvalidSymbol is Binance's "Invalid symbol." error code.
const codeInvalidSymbol = -1121

type bookTicker struct {
	Symbol   string `json:"symbol"`
	BidPrice string `json:"bidPrice"`
	AskPrice string `json:"askPrice"`
}

type apiError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

type Client struct {
	r *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		r: resty.New().SetHostURL(baseURL).SetTimeout(timeout),
	}
}

func (c *Client) Ticker(ctx context.Context, s model.Symbol) (model.Ticker, error) {
	resp, err := c.r.R().
		SetContext(ctx).
		SetQueryParam("symbol", s.Join("")).
		Get("/api/v3/ticker/bookTicker")
	if err != nil {
		return model.Ticker{}, err
	}

	if resp.StatusCode() != http.StatusOK {
		var e apiError
		if err := json.Unmarshal(resp.Body(), &e); err == nil && e.Code == codeInvalidSymbol {
			return model.Ticker{}, fmt.Errorf("%w: %v", model.ErrBadSymbol, s)
		}
		return model.Ticker{}, fmt.Errorf("binance: status %d: %s", resp.StatusCode(), resp.Body())
	}

	var t bookTicker
	if err := json.Unmarshal(resp.Body(), &t); err != nil {
		return model.Ticker{}, err
	}

	return model.ParseTicker(t.BidPrice, t.AskPrice)
}
