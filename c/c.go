package c

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/L3Sota/arbview/arb/model"
	"gopkg.in/resty.v1"
)

const BaseURL = "https://api.coinex.com"

// codeInvalidArgument is returned for markets CoinEx does not list.
const codeInvalidArgument = 2

type ticker struct {
	Buy  string
	Sell string
	Last string
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
		SetQueryParam("market", s.Join("")).
		Get("/v1/market/ticker")
	if err != nil {
		return model.Ticker{}, err
	}

	raw := &struct {
		Code    int
		Message string
		Data    struct {
			Date   int64
			Ticker ticker
		}
	}{}

	if err := json.Unmarshal(resp.Body(), raw); err != nil {
		return model.Ticker{}, err
	}

	switch raw.Code {
	case 0:
	case codeInvalidArgument:
		return model.Ticker{}, fmt.Errorf("%w: %v: %v", model.ErrBadSymbol, s, raw.Message)
	default:
		return model.Ticker{}, fmt.Errorf("coinex: code %d: %v", raw.Code, raw.Message)
	}

	return model.ParseTicker(raw.Data.Ticker.Buy, raw.Data.Ticker.Sell)
}
