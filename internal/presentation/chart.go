package presentation

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"
	"github.com/spacesedan/sentilite/internal/models"
)

const CHART_ASSETS_HOST = "https://go-echarts.github.io/go-echarts-assets/assets/"

var ErrNoChart = errors.New("no chart has been rendered")

// ChartRenderer owns the single live distribution chart. Render replaces it;
// RenderCurrent writes it out again.
type ChartRenderer struct {
	mu      sync.Mutex
	current *charts.Bar
}

func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{}
}

// Render disposes any prior chart, builds a bar chart for dist on a 0-100%
// axis and writes it as a standalone HTML document to w. Bars are drawn at
// each bucket's height and labelled with its weight.
func (r *ChartRenderer) Render(w io.Writer, dist models.ConfidenceDistribution) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = newDistributionBar(dist)
	return renderBar(w, r.current)
}

// RenderCurrent writes the live chart to w, or returns ErrNoChart.
func (r *ChartRenderer) RenderCurrent(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return ErrNoChart
	}
	return renderBar(w, r.current)
}

// Dispose drops the live chart, if any.
func (r *ChartRenderer) Dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = nil
}

func renderBar(w io.Writer, bar *charts.Bar) error {
	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render distribution chart: %w", err)
	}
	return nil
}

func newDistributionBar(dist models.ConfidenceDistribution) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  "Sentiment Confidence Distribution",
			Width:      "100%",
			Height:     "320px",
			AssetsHost: CHART_ASSETS_HOST,
		}),
		charts.WithTitleOpts(opts.Title{Title: "Confidence Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Relative height (%)", Min: 0, Max: 100}),
	)

	x := lo.Map(dist[:], func(b models.DistributionBucket, _ int) string {
		return string(b.Label)
	})
	// The data item name carries the weight so the bar label shows it.
	y := lo.Map(dist[:], func(b models.DistributionBucket, _ int) opts.BarData {
		return opts.BarData{
			Name:      FormatPercent(b.Weight),
			Value:     barHeight(b.Height),
			ItemStyle: &opts.ItemStyle{Color: DisplayFor(b.Label).Hex},
		}
	})

	bar.SetXAxis(x).
		AddSeries("confidence", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top", Formatter: "{b}"}),
		)
	return bar
}

// barHeight converts a height in [0,1] to a percentage rounded to one decimal.
func barHeight(height float64) float64 {
	return float64(int(height*1000+0.5)) / 10
}
