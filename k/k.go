package k

import (
	"context"
	"fmt"
	"time"

	"github.com/Kucoin/kucoin-go-sdk"
	"github.com/L3Sota/arbview/arb/model"
)

const BaseURL = "https://api.kucoin.com"

type Client struct {
	s       *kucoin.ApiService
	timeout time.Duration
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		s:       kucoin.NewApiService(kucoin.ApiBaseURIOption(baseURL)),
		timeout: timeout,
	}
}

type level1 struct {
	resp *kucoin.ApiResponse
	err  error
}

func (c *Client) Ticker(ctx context.Context, s model.Symbol) (model.Ticker, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// the SDK takes no context, so the request itself runs until its own
	// client timeout; we just stop waiting for it
	done := make(chan level1, 1)
	go func() {
		resp, err := c.s.TickerLevel1(s.Join("-"))
		done <- level1{resp: resp, err: err}
	}()

	var r level1
	select {
	case <-ctx.Done():
		return model.Ticker{}, ctx.Err()
	case r = <-done:
	}
	if r.err != nil {
		return model.Ticker{}, r.err
	}

	if r.resp.Code == kucoin.ApiSuccess && (len(r.resp.RawData) == 0 || string(r.resp.RawData) == "null") {
		return model.Ticker{}, fmt.Errorf("%w: %v", model.ErrBadSymbol, s)
	}

	var o kucoin.TickerLevel1Model
	if err := r.resp.ReadData(&o); err != nil {
		return model.Ticker{}, err
	}

	return model.ParseTicker(o.BestBid, o.BestAsk)
}
