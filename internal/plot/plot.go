// Package plot binds a graph description to its data and to a pair of
// zoomable axes. The terminal and HTML renderers both draw from a Plot and
// read the live domains off its axes.
package plot

import (
	"fmt"
	"math"
	"sort"

	mscale "github.com/aclements/go-moremath/scale"

	"zoombar/internal/config"
	"zoombar/internal/data"
	"zoombar/internal/scale"
	"zoombar/internal/zoom"
)

// Point is one scatter or area sample.
type Point struct{ X, Y float64 }

// Plot is one graph ready to render. Only the series matching Graph.Kind is
// filled.
type Plot struct {
	Graph config.Graph
	X, Y  zoom.Axis

	Points []Point         // scatter, area (sorted by X for area)
	Bins   []data.Bin      // histogram
	Cats   []data.Category // bar
	Tiles  data.Tiles      // heatmap

	XName, YName string
}

// Build aggregates t for g and creates both axes at their full extent.
func Build(g config.Graph, t *data.Table) (*Plot, error) {
	p := &Plot{Graph: g, XName: g.X, YName: g.Y}
	var xs, ys scale.Scale
	switch g.Kind {
	case config.Scatter, config.Area:
		xv, yv, err := t.Pairs(g.X, g.Y)
		if err != nil {
			return nil, err
		}
		if len(xv) == 0 {
			return nil, fmt.Errorf("columns %q and %q have no numeric rows", g.X, g.Y)
		}
		for i := range xv {
			p.Points = append(p.Points, Point{xv[i], yv[i]})
		}
		if g.Kind == config.Area {
			sort.SliceStable(p.Points, func(i, j int) bool { return p.Points[i].X < p.Points[j].X })
		}
		if xs, err = continuous(xv, g.LogX, false); err != nil {
			return nil, fmt.Errorf("x: %w", err)
		}
		if ys, err = continuous(yv, g.LogY, g.Kind == config.Area); err != nil {
			return nil, fmt.Errorf("y: %w", err)
		}
	case config.Histogram:
		xv, err := t.Float(g.X)
		if err != nil {
			return nil, err
		}
		p.Bins = data.Histogram(xv, g.Bins)
		if len(p.Bins) == 0 {
			return nil, fmt.Errorf("column %q has no values", g.X)
		}
		if xs, err = scale.NewOrdinal(data.BinLabels(p.Bins)); err != nil {
			return nil, err
		}
		counts := make([]float64, len(p.Bins))
		for i, b := range p.Bins {
			counts[i] = float64(b.Count)
		}
		if ys, err = continuous(counts, false, true); err != nil {
			return nil, err
		}
		p.YName = "count"
	case config.Bar:
		labels, err := t.Strings(g.X)
		if err != nil {
			return nil, err
		}
		var weights []float64
		if g.Y != "" {
			if weights, err = t.Aligned(g.Y); err != nil {
				return nil, err
			}
		} else {
			p.YName = "count"
		}
		p.Cats = data.Categories(labels, weights, g.MaxCategories)
		if len(p.Cats) == 0 {
			return nil, fmt.Errorf("column %q has no values", g.X)
		}
		if xs, err = scale.NewOrdinal(data.CategoryLabels(p.Cats)); err != nil {
			return nil, err
		}
		vals := make([]float64, len(p.Cats))
		for i := range p.Cats {
			vals[i] = p.BarValue(i)
		}
		if ys, err = continuous(vals, false, true); err != nil {
			return nil, err
		}
	case config.Heatmap:
		xv, err := t.Aligned(g.X)
		if err != nil {
			return nil, err
		}
		yv, err := t.Strings(g.Y)
		if err != nil {
			return nil, err
		}
		var fx []float64
		var fy []string
		for i := range xv {
			if !math.IsNaN(xv[i]) && yv[i] != "" {
				fx = append(fx, xv[i])
				fy = append(fy, yv[i])
			}
		}
		p.Tiles = data.MakeTiles(fx, fy, g.Bins, g.MaxCategories)
		if len(p.Tiles.Bins) == 0 || len(p.Tiles.Cats) == 0 {
			return nil, fmt.Errorf("columns %q and %q have no complete rows", g.X, g.Y)
		}
		if xs, err = scale.NewOrdinal(data.BinLabels(p.Tiles.Bins)); err != nil {
			return nil, err
		}
		if ys, err = scale.NewOrdinal(data.CategoryLabels(p.Tiles.Cats)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown kind %q", g.Kind)
	}
	p.X, p.Y = zoom.NewAxis(xs), zoom.NewAxis(ys)
	return p, nil
}

// continuous returns a nice-rounded scale covering vs. fromZero extends a
// linear extent down to zero for bar-like marks.
func continuous(vs []float64, log, fromZero bool) (*scale.Continuous, error) {
	min, max := data.Extent(vs)
	o := mscale.TickOptions{Max: 8}
	if log {
		if min <= 0 {
			return nil, fmt.Errorf("log scale needs positive values, got minimum %v", min)
		}
		if min == max {
			min, max = min/10, max*10
		}
		l, err := mscale.NewLog(min, max, 10)
		if err != nil {
			return nil, err
		}
		l.Nice(o)
		return scale.NewLog(l.Min, l.Max)
	}
	if fromZero {
		min = math.Min(min, 0)
	}
	l := mscale.Linear{Min: min, Max: max}
	l.Nice(o)
	return scale.NewLinear(l.Min, l.Max)
}

// BarValue is the height of category i: the weight sum when the graph has a
// Y column, otherwise the row count.
func (p *Plot) BarValue(i int) float64 {
	if p.Graph.Y != "" {
		return p.Cats[i].Sum
	}
	return float64(p.Cats[i].Count)
}

// Continuous returns the axis scale when it is continuous.
func Continuous(a zoom.Axis) (*scale.Continuous, bool) {
	s, ok := a.Scale.(*scale.Continuous)
	return s, ok
}

// Ordinal returns the axis scale when it is ordinal.
func Ordinal(a zoom.Axis) (*scale.Ordinal, bool) {
	s, ok := a.Scale.(*scale.Ordinal)
	return s, ok
}

// VisiblePoints returns the points inside both live domains.
func (p *Plot) VisiblePoints() []Point {
	xs, okx := Continuous(p.X)
	ys, oky := Continuous(p.Y)
	if !okx || !oky {
		return nil
	}
	x0, x1 := xs.Domain()
	y0, y1 := ys.Domain()
	var out []Point
	for _, pt := range p.Points {
		if pt.X >= x0 && pt.X <= x1 && pt.Y >= y0 && pt.Y <= y1 {
			out = append(out, pt)
		}
	}
	return out
}

// Domains renders both live domains, as copied by the yank key.
func (p *Plot) Domains() string {
	return fmt.Sprintf("%s: x=%s y=%s", p.Graph.Title, describe(p.X), describe(p.Y))
}

func describe(a zoom.Axis) string {
	switch s := a.Scale.(type) {
	case *scale.Continuous:
		lo, hi := s.Domain()
		return "[" + data.FormatValue(lo) + ", " + data.FormatValue(hi) + "]"
	case *scale.Ordinal:
		if s.Len() == 1 {
			return "[" + s.First() + "]"
		}
		return "[" + s.First() + " .. " + s.Last() + "]"
	}
	return "[]"
}

// Ticks returns up to n tick positions and labels for a continuous axis, or
// every visible label of an ordinal one.
func Ticks(a zoom.Axis, n int) (vals []float64, labels []string) {
	switch s := a.Scale.(type) {
	case *scale.Continuous:
		for _, v := range s.Ticks(n) {
			vals = append(vals, s.Map(v))
			labels = append(labels, data.FormatValue(v))
		}
	case *scale.Ordinal:
		bw := s.Bandwidth()
		for _, l := range s.Domain() {
			x, _ := s.Map(l)
			vals = append(vals, x+bw/2)
			labels = append(labels, l)
		}
	}
	return vals, labels
}
