// Package export writes a dashboard as a standalone HTML page of echarts
// charts. Each chart carries slider zoom bars preset to the live windows.
package export

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"zoombar/internal/config"
	"zoombar/internal/plot"
	"zoombar/internal/scale"
	"zoombar/internal/zoom"
)

// HeatColors is the echarts visual map gradient, low to high.
var HeatColors = []string{"#f7fbff", "#6baed6", "#08306b"}

// WriteFile renders plots to path.
func WriteFile(path, title string, plots []*plot.Plot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Page(f, title, plots); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Page writes one chart per plot.
func Page(w io.Writer, title string, plots []*plot.Plot) error {
	page := components.NewPage().SetPageTitle(title)
	for _, p := range plots {
		c, err := Chart(p)
		if err != nil {
			return fmt.Errorf("export %s: %w", p.Graph.Title, err)
		}
		page.AddCharts(c)
	}
	return page.Render(w)
}

// Chart builds the echarts chart for p.
func Chart(p *plot.Plot) (components.Charter, error) {
	x0, x1, err := Window(p.X)
	if err != nil {
		return nil, fmt.Errorf("x: %w", err)
	}
	y0, y1, err := Window(p.Y)
	if err != nil {
		return nil, fmt.Errorf("y: %w", err)
	}
	log.WithFields(log.Fields{
		"graph": p.Graph.Title,
		"x":     fmt.Sprintf("%.1f-%.1f%%", x0, x1),
		"y":     fmt.Sprintf("%.1f-%.1f%%", y0, y1),
	}).Debug("export window")

	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: p.Graph.Title,
			Width:     "900px",
			Height:    "480px",
		}),
		charts.WithTitleOpts(opts.Title{Title: p.Graph.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(xAxis(p)),
		charts.WithYAxisOpts(yAxis(p)),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "slider", Start: x0, End: x1, XAxisIndex: []int{0}},
			opts.DataZoom{Type: "slider", Start: y0, End: y1, YAxisIndex: []int{0}, Orient: "vertical"},
		),
	}

	switch p.Graph.Kind {
	case config.Scatter:
		c := charts.NewScatter()
		c.SetGlobalOptions(global...)
		pts := make([]opts.ScatterData, len(p.Points))
		for i, pt := range p.Points {
			pts[i] = opts.ScatterData{Value: []float64{pt.X, pt.Y}, SymbolSize: 6}
		}
		c.AddSeries(p.YName, pts)
		return c, nil
	case config.Area:
		c := charts.NewLine()
		c.SetGlobalOptions(global...)
		pts := make([]opts.LineData, len(p.Points))
		for i, pt := range p.Points {
			pts[i] = opts.LineData{Value: []float64{pt.X, pt.Y}}
		}
		c.AddSeries(p.YName, pts, charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.3)}))
		return c, nil
	case config.Histogram, config.Bar:
		c := charts.NewBar()
		c.SetGlobalOptions(global...)
		labels := ordinalLabels(p.X)
		vals := make([]opts.BarData, len(labels))
		for i := range labels {
			if p.Bins != nil {
				vals[i] = opts.BarData{Value: p.Bins[i].Count}
			} else {
				vals[i] = opts.BarData{Value: p.BarValue(i)}
			}
		}
		c.SetXAxis(labels).AddSeries(p.YName, vals)
		return c, nil
	case config.Heatmap:
		c := charts.NewHeatMap()
		global = append(global, charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(p.Tiles.Max),
			InRange:    &opts.VisualMapInRange{Color: HeatColors},
		}))
		c.SetGlobalOptions(global...)
		var cells []opts.HeatMapData
		for i, col := range p.Tiles.Counts {
			for j, n := range col {
				cells = append(cells, opts.HeatMapData{Value: [3]interface{}{i, j, n}})
			}
		}
		c.SetXAxis(ordinalLabels(p.X)).AddSeries("count", cells)
		return c, nil
	}
	return nil, fmt.Errorf("unknown kind %q", p.Graph.Kind)
}

// Window converts an axis's live window into dataZoom start/end percentages
// of its original domain. Log axes measure in log space; ordinal axes count
// whole bands.
func Window(a zoom.Axis) (start, end float32, err error) {
	n, err := zoom.Normalize(a.Domain0, a.Scale)
	if err != nil {
		return 0, 0, err
	}
	lo, hi, lo0, hi0 := n.Min, n.Max+n.Step, n.Min0, n.Max0+n.Step
	if s, ok := a.Scale.(*scale.Continuous); ok && s.Log() {
		lo, hi, lo0, hi0 = math.Log(lo), math.Log(hi), math.Log(lo0), math.Log(hi0)
	}
	if hi0 == lo0 {
		return 0, 100, nil
	}
	pct := func(v float64) float32 {
		return float32(zoom.Clamp(100*(v-lo0)/(hi0-lo0), 0, 100))
	}
	return pct(lo), pct(hi), nil
}

func axisType(s scale.Scale) string {
	switch c := s.(type) {
	case *scale.Ordinal:
		return "category"
	case *scale.Continuous:
		if c.Log() {
			return "log"
		}
	}
	return "value"
}

func xAxis(p *plot.Plot) opts.XAxis {
	ax := opts.XAxis{Name: p.XName, Type: axisType(p.X.Domain0)}
	if s, ok := p.X.Domain0.(*scale.Continuous); ok {
		ax.Min, ax.Max = s.Domain()
	}
	return ax
}

func yAxis(p *plot.Plot) opts.YAxis {
	ax := opts.YAxis{Name: p.YName, Type: axisType(p.Y.Domain0), AxisLabel: &opts.AxisLabel{}}
	switch s := p.Y.Domain0.(type) {
	case *scale.Continuous:
		ax.Min, ax.Max = s.Domain()
	case *scale.Ordinal:
		ax.Data = s.Domain()
	}
	return ax
}

func ordinalLabels(a zoom.Axis) []string {
	if s, ok := a.Domain0.(*scale.Ordinal); ok {
		return s.Domain()
	}
	return nil
}
