package main

import (
	"context"
	"fmt"

	"github.com/L3Sota/arbview/arb/config"
	"github.com/L3Sota/arbview/c"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		fmt.Println(err)
		return
	}

	t, err := c.New(c.BaseURL, conf.RequestTimeout).Ticker(context.Background(), conf.Symbol)

	fmt.Println(conf.Symbol, t.Bid.Decimal, t.Ask.Decimal)
	fmt.Println(err)
}
