package m

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/L3Sota/arbview/arb/model"
	"github.com/linstohu/nexapi/mexc/spot/marketdata"
	"github.com/linstohu/nexapi/mexc/spot/marketdata/types"
	spotutils "github.com/linstohu/nexapi/mexc/spot/utils"
)

const BaseURL = "https://api.mexc.com/"

type depthFunc func(ctx context.Context, symbol string) (bids, asks [][]string, err error)

type Client struct {
	depth   depthFunc
	timeout time.Duration
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	nex, err := marketdata.NewSpotMarketDataClient(&spotutils.SpotClientCfg{
		BaseURL: baseURL,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	depth := func(ctx context.Context, symbol string) ([][]string, [][]string, error) {
		o, err := nex.GetOrderbook(ctx, types.GetOrderbookParams{
			Symbol: symbol,
		})
		if err != nil {
			return nil, nil, err
		}
		bids := make([][]string, 0, len(o.Bids))
		for _, bid := range o.Bids {
			bids = append(bids, []string{bid[0], bid[1]})
		}
		asks := make([][]string, 0, len(o.Asks))
		for _, ask := range o.Asks {
			asks = append(asks, []string{ask[0], ask[1]})
		}
		return bids, asks, nil
	}

	return &Client{depth: depth, timeout: timeout}, nil
}

func (c *Client) Ticker(ctx context.Context, s model.Symbol) (model.Ticker, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	bids, asks, err := c.depth(ctx, s.Join(""))
	if err != nil {
		if badSymbol(err) {
			return model.Ticker{}, fmt.Errorf("%w: %v: %v", model.ErrBadSymbol, s, err)
		}
		return model.Ticker{}, err
	}

	var bid, ask string
	if len(bids) > 0 && len(bids[0]) > 0 {
		bid = bids[0][0]
	}
	if len(asks) > 0 && len(asks[0]) > 0 {
		ask = asks[0][0]
	}

	return model.ParseTicker(bid, ask)
}

// badSymbol matches MEXC's {"code":-1121,"msg":"Invalid symbol."} reply as
// surfaced in the nexapi error text.
func badSymbol(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "-1121") || strings.Contains(strings.ToLower(msg), "invalid symbol")
}
