package main

import (
	"context"
	"fmt"

	"github.com/L3Sota/arbview/arb/config"
	"github.com/L3Sota/arbview/k"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		fmt.Println(err)
		return
	}

	t, err := k.New(k.BaseURL, conf.RequestTimeout).Ticker(context.Background(), conf.Symbol)

	fmt.Println(conf.Symbol, t.Bid.Decimal, t.Ask.Decimal)
	fmt.Println(err)
}
