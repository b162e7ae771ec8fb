package g

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/L3Sota/arbview/arb/model"
	"github.com/gateio/gateapi-go/v6"
)

const BaseURL = "https://api.gateio.ws/api/v4"

var badSymbolLabels = map[string]bool{
	"INVALID_CURRENCY_PAIR": true,
	"INVALID_CURRENCY":      true,
}

type Client struct {
	api *gateapi.APIClient
}

func New(baseURL string, timeout time.Duration) *Client {
	conf := gateapi.NewConfiguration()
	conf.HTTPClient = &http.Client{Timeout: timeout}
	client := gateapi.NewAPIClient(conf)
	client.ChangeBasePath(baseURL)

	return &Client{api: client}
}

func (c *Client) Ticker(ctx context.Context, s model.Symbol) (model.Ticker, error) {
	result, _, err := c.api.SpotApi.ListOrderBook(ctx, s.Join("_"), nil)
	if err != nil {
		var e gateapi.GateAPIError
		if errors.As(err, &e) {
			if badSymbolLabels[e.Label] {
				return model.Ticker{}, fmt.Errorf("%w: %v: %v", model.ErrBadSymbol, s, e.Message)
			}
			return model.Ticker{}, fmt.Errorf("gate api error: %w", e)
		}
		return model.Ticker{}, err
	}

	return top(result.Bids, result.Asks)
}

// top picks the best level from [price, amount] depth rows.
func top(bids, asks [][]string) (model.Ticker, error) {
	var bid, ask string
	if len(bids) > 0 && len(bids[0]) > 0 {
		bid = bids[0][0]
	}
	if len(asks) > 0 && len(asks[0]) > 0 {
		ask = asks[0][0]
	}
	return model.ParseTicker(bid, ask)
}
