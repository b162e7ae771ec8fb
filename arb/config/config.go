package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/L3Sota/arbview/arb/model"
	"github.com/kelseyhightower/envconfig"
)

const Prefix = "ARBVIEW"

const (
	ScanFresh  = "fresh"
	ScanCached = "cached"
)

type Config struct {
	Symbol    model.Symbol `default:"BTC/USDT"`
	Exchanges []string

	RefreshInterval time.Duration `split_words:"true" default:"30m"`
	RequestTimeout  time.Duration `split_words:"true" default:"10s"`
	Parallelism     int           `default:"1"`

	ScanMode      string `split_words:"true" default:"fresh"`
	ScanSymmetric bool   `split_words:"true"`
	ScanOnRefresh bool   `split_words:"true"`

	Addr          string     `default:"127.0.0.1:8050"`
	HistogramBins int        `split_words:"true" default:"10"`
	LogLevel      slog.Level `split_words:"true" default:"INFO"`

	PEnable bool   `split_words:"true"`
	PKey    string `split_words:"true"`
	PUser   string `split_words:"true"`
}

// Load reads ARBVIEW_* from the environment and validates the result.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process(Prefix, c); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Symbol.Base == "" || c.Symbol.Quote == "" {
		return fmt.Errorf("%w: empty", model.ErrBadSymbol)
	}
	if c.RefreshInterval < time.Second {
		return fmt.Errorf("refresh interval must be at least 1s, got %v", c.RefreshInterval)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", c.RequestTimeout)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism must be at least 1, got %d", c.Parallelism)
	}
	switch c.ScanMode {
	case ScanFresh, ScanCached:
	default:
		return fmt.Errorf("unknown scan mode %q", c.ScanMode)
	}
	if c.HistogramBins < 1 {
		return fmt.Errorf("histogram bins must be at least 1, got %d", c.HistogramBins)
	}
	if c.PEnable && (c.PKey == "" || c.PUser == "") {
		return fmt.Errorf("pushover enabled without %s_P_KEY and %s_P_USER", Prefix, Prefix)
	}
	return nil
}
