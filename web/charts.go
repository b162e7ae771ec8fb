package web

import (
	"fmt"
	"math"
	"sort"

	"github.com/L3Sota/arbview/arb/model"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const pageTitle = "Price Data Visualization"

func page(snap model.Snapshot, bins int) *components.Page {
	p := components.NewPage()
	p.PageTitle = pageTitle
	p.AddCharts(priceChart(snap), spreadChart(snap, bins))
	return p
}

// priceChart stacks ask on top of bid per exchange. An empty snapshot yields
// a chart with no series at all.
func priceChart(snap model.Snapshot) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Bid and Ask Prices for Exchanges",
			Subtitle: subtitle(snap),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Exchange"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Price"}),
	)
	if snap.Len() == 0 {
		return bar
	}

	stack := charts.WithBarChartOpts(opts.BarChart{Stack: "price"})
	bar.SetXAxis(snap.Exchanges).
		AddSeries("Bid Price", barData(snap.Bids), stack).
		AddSeries("Ask Price", barData(snap.Asks), stack)
	return bar
}

func spreadChart(snap model.Snapshot, bins int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Spread Fees for Exchanges"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Spread Fee"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)

	labels, counts := histogram(snap.Spreads, bins)
	if len(counts) == 0 {
		return bar
	}

	data := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		data = append(data, opts.BarData{Value: c})
	}
	bar.SetXAxis(labels).AddSeries("Spread Fee", data)
	return bar
}

func subtitle(snap model.Snapshot) string {
	if snap.TakenAt.IsZero() {
		return snap.Symbol.String()
	}
	return fmt.Sprintf("%v @ %v", snap.Symbol, snap.TakenAt.UTC().Format("2006-01-02 15:04:05 MST"))
}

func barData(ds []decimal.Decimal) []opts.BarData {
	out := make([]opts.BarData, 0, len(ds))
	for _, d := range ds {
		out = append(out, opts.BarData{Value: d.InexactFloat64()})
	}
	return out
}

// histogram buckets xs into equal-width bins spanning [min, max]. All-equal
// input collapses into a single bin.
func histogram(xs []decimal.Decimal, bins int) ([]string, []float64) {
	if len(xs) == 0 || bins < 1 {
		return nil, nil
	}

	vals := make([]float64, 0, len(xs))
	for _, x := range xs {
		vals = append(vals, x.InexactFloat64())
	}
	sort.Float64s(vals)

	lo, hi := vals[0], vals[len(vals)-1]
	if lo == hi {
		return []string{fmt.Sprintf("%.6g", lo)}, []float64{float64(len(vals))}
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram bins are half-open; nudge the last edge so max lands inside
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, vals, nil)

	labels := make([]string, bins)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.6g ~ %.6g", dividers[i], dividers[i+1])
	}
	return labels, counts
}
