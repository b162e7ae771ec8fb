package h

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/L3Sota/arbview/arb/model"
	"github.com/shopspring/decimal"
	"gopkg.in/resty.v1"
)

const BaseURL = "https://api.huobi.pro"

type merged struct {
	Status  string `json:"status"`
	ErrCode string `json:"err-code"`
	ErrMsg  string `json:"err-msg"`
	Tick    struct {
		// [price, size]
		Bid []decimal.Decimal `json:"bid"`
		Ask []decimal.Decimal `json:"ask"`
	} `json:"tick"`
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
		SetQueryParam("symbol", strings.ToLower(s.Join(""))).
		Get("/market/detail/merged")
	if err != nil {
		return model.Ticker{}, err
	}

	var o merged
	if err := json.Unmarshal(resp.Body(), &o); err != nil {
		return model.Ticker{}, err
	}

	if o.Status != "ok" {
		if o.ErrCode == "invalid-parameter" {
			return model.Ticker{}, fmt.Errorf("%w: %v: %v", model.ErrBadSymbol, s, o.ErrMsg)
		}
		return model.Ticker{}, fmt.Errorf("htx: %v: %v", o.ErrCode, o.ErrMsg)
	}

	var t model.Ticker
	if len(o.Tick.Bid) > 0 {
		t.Bid = decimal.NewNullDecimal(o.Tick.Bid[0])
	}
	if len(o.Tick.Ask) > 0 {
		t.Ask = decimal.NewNullDecimal(o.Tick.Ask[0])
	}

	return t, nil
}
