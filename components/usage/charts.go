package usage

import (
	"bytes"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/chatstack/botadmin/pkg/backend"
)

const defaultChartHeight = "360px"

// ChartRenderer turns usage series into go-echarts markup.
type ChartRenderer struct {
	theme      string
	assetsHost string
}

// ChartOption customizes renderer behavior.
type ChartOption func(*ChartRenderer)

// WithChartTheme sets a static theme (defaults to Westeros).
func WithChartTheme(theme string) ChartOption {
	return func(r *ChartRenderer) {
		r.theme = theme
	}
}

// WithChartAssetsHost rewrites the assets host so ECharts JS loads from a CDN.
func WithChartAssetsHost(host string) ChartOption {
	return func(r *ChartRenderer) {
		r.assetsHost = host
	}
}

// NewChartRenderer builds a renderer.
func NewChartRenderer(options ...ChartOption) *ChartRenderer {
	r := &ChartRenderer{theme: types.ThemeWesteros}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// DailyLine renders conversations, messages, and fallbacks per day as a
// smoothed line chart.
func (r *ChartRenderer) DailyLine(title string, points []backend.UsagePoint) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(r.globalOptions(title, "")...)

	days := make([]string, len(points))
	conversations := make([]opts.LineData, len(points))
	messages := make([]opts.LineData, len(points))
	fallbacks := make([]opts.LineData, len(points))
	for i, p := range points {
		days[i] = p.Day.Format(time.DateOnly)
		conversations[i] = opts.LineData{Value: p.Conversations}
		messages[i] = opts.LineData{Value: p.Messages}
		fallbacks[i] = opts.LineData{Value: p.Fallbacks}
	}

	line.SetXAxis(days)
	line.AddSeries("Conversations", conversations)
	line.AddSeries("Messages", messages)
	line.AddSeries("Fallbacks", fallbacks)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return renderChart(line)
}

// SummaryPie renders the rollup as a pie so fallback share is visible at a
// glance.
func (r *ChartRenderer) SummaryPie(title string, summary backend.UsageSummary) (string, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(r.globalOptions(title, "")...)
	answered := summary.Messages - summary.Fallbacks
	if answered < 0 {
		answered = 0
	}
	pie.AddSeries("Messages", []opts.PieData{
		{Name: "Answered", Value: answered},
		{Name: "Fallbacks", Value: summary.Fallbacks},
	})
	return renderChart(pie)
}

// FallbackGauge renders the fallback rate as a percentage gauge.
func (r *ChartRenderer) FallbackGauge(title string, summary backend.UsageSummary) (string, error) {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(r.globalOptions(title, "")...)
	rate := 0.0
	if summary.Messages > 0 {
		rate = float64(summary.Fallbacks) / float64(summary.Messages) * 100
	}
	gauge.AddSeries("Fallback rate", []opts.GaugeData{
		{Name: "Fallback %", Value: rate},
	})
	return renderChart(gauge)
}

func (r *ChartRenderer) globalOptions(title, subtitle string) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  r.theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
