package arb

import (
	"fmt"
	"log/slog"

	"github.com/L3Sota/arbview/arb/config"
	"github.com/L3Sota/arbview/arb/model"
	"github.com/L3Sota/arbview/b"
	"github.com/L3Sota/arbview/c"
	"github.com/L3Sota/arbview/g"
	"github.com/L3Sota/arbview/h"
	"github.com/L3Sota/arbview/k"
	"github.com/L3Sota/arbview/kr"
	"github.com/L3Sota/arbview/m"
)

// Factory instantiates a connector. It is called once per fetch so that every
// ticker request starts from a fresh client.
type Factory func() (model.Venue, error)

// Catalog is an ordered registry of exchange ids.
type Catalog struct {
	ids       []string
	factories map[string]Factory
}

func NewCatalog() *Catalog {
	return &Catalog{factories: map[string]Factory{}}
}

// Register adds id to the end of the catalog, replacing any previous factory.
func (c *Catalog) Register(id string, f Factory) {
	if _, ok := c.factories[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.factories[id] = f
}

func (c *Catalog) IDs() []string {
	return append([]string(nil), c.ids...)
}

func (c *Catalog) Venue(id string) (model.Venue, error) {
	f, ok := c.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", model.ErrUnknownExchange, id)
	}
	return f()
}

func DefaultCatalog(conf *config.Config, logger *slog.Logger) *Catalog {
	t := conf.RequestTimeout

	cat := NewCatalog()
	cat.Register("binance", func() (model.Venue, error) { return b.New(b.BaseURL, t), nil })
	cat.Register("coinex", func() (model.Venue, error) { return c.New(c.BaseURL, t), nil })
	cat.Register("gateio", func() (model.Venue, error) { return g.New(g.BaseURL, t), nil })
	cat.Register("htx", func() (model.Venue, error) { return h.New(h.BaseURL, t), nil })
	cat.Register("kraken", func() (model.Venue, error) { return kr.New(kr.BaseURL, t), nil })
	cat.Register("kucoin", func() (model.Venue, error) { return k.New(k.BaseURL, t), nil })
	cat.Register("mexc", func() (model.Venue, error) { return m.New(m.BaseURL, t, logger) })

	return cat
}
