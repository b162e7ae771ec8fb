package kr

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/L3Sota/arbview/arb/model"
	"gopkg.in/resty.v1"
)

const BaseURL = "https://api.kraken.com"

// Kraken still lists bitcoin under its legacy ISO code.
var aliases = map[string]string{
	"BTC":  "XBT",
	"DOGE": "XDG",
}

type ticker struct {
	// [price, whole lot volume, lot volume]
	A []string `json:"a"`
	B []string `json:"b"`
}

type Client struct {
	r *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		r: resty.New().SetHostURL(baseURL).SetTimeout(timeout),
	}
}

// Pair renders s the way Kraken's REST API expects, e.g. XBTUSDT.
func Pair(s model.Symbol) string {
	base, quote := s.Base, s.Quote
	if a, ok := aliases[base]; ok {
		base = a
	}
	if a, ok := aliases[quote]; ok {
		quote = a
	}
	return base + quote
}

func (c *Client) Ticker(ctx context.Context, s model.Symbol) (model.Ticker, error) {
	resp, err := c.r.R().
		SetContext(ctx).
		SetQueryParam("pair", Pair(s)).
		Get("/0/public/Ticker")
	if err != nil {
		return model.Ticker{}, err
	}

	raw := &struct {
		Error  []string
		Result map[string]ticker
	}{}
	if err := json.Unmarshal(resp.Body(), raw); err != nil {
		return model.Ticker{}, err
	}

	if len(raw.Error) > 0 {
		msg := strings.Join(raw.Error, "; ")
		if strings.Contains(msg, "Unknown asset pair") {
			return model.Ticker{}, fmt.Errorf("%w: %v: %v", model.ErrBadSymbol, s, msg)
		}
		return model.Ticker{}, fmt.Errorf("kraken: %v", msg)
	}

	// result is keyed by Kraken's canonical pair name, which can differ from
	// the one we asked for (XBTUSDT -> XBTUSDT, XBTUSD -> XXBTZUSD)
	for _, t := range raw.Result {
		var bid, ask string
		if len(t.B) > 0 {
			bid = t.B[0]
		}
		if len(t.A) > 0 {
			ask = t.A[0]
		}
		return model.ParseTicker(bid, ask)
	}

	return model.Ticker{}, fmt.Errorf("%w: %v: empty result", model.ErrBadSymbol, s)
}
