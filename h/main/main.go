package main

import (
	"context"
	"fmt"

	"github.com/L3Sota/arbview/arb/config"
	"github.com/L3Sota/arbview/h"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		fmt.Println(err)
		return
	}

	t, err := h.New(h.BaseURL, conf.RequestTimeout).Ticker(context.Background(), conf.Symbol)

	fmt.Println(conf.Symbol, t.Bid.Decimal, t.Ask.Decimal)
	fmt.Println(err)
}
