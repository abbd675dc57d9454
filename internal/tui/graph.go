package tui

import (
	"fmt"
	"math"
	"sort"

	zone "github.com/lrstanley/bubblezone"
	log "github.com/sirupsen/logrus"

	"zoombar/internal/config"
	"zoombar/internal/data"
	"zoombar/internal/plot"
	"zoombar/internal/scale"
	"zoombar/internal/tui/state"
	"zoombar/internal/tui/util"
	"zoombar/internal/tui/widgets/zoombar"
	"zoombar/internal/zoom"
)

// Title row buttons, right aligned: "[+][-]".
const (
	buttonIn   = "[+]"
	buttonOut  = "[-]"
	buttonCols = 6
)

// wheelPanCells is how far one shift+wheel notch pans.
const wheelPanCells = 2

// graph is one zoomable chart widget. Coordinates inside it are widget
// cells with the origin at the top left; a pointer sits at the cell centre.
type graph struct {
	id   string
	plot *plot.Plot
	cfg  config.Graph

	pair  zoom.Pair
	lay   zoom.Layout
	loc   zoom.DragLocation
	wheel *zoom.Wheel
	ui    state.UIState

	// Position in dashboard content cells.
	top, left int
}

func newGraph(id string, p *plot.Plot) *graph {
	g := p.Graph
	w, h := float64(g.Width), float64(g.Height)
	l, r := float64(g.Margin.Left), float64(g.Margin.Right)
	t, b := float64(g.Margin.Top), float64(g.Margin.Bottom)
	s := float64(g.BarSize)

	p.X.Scale.SetRange(l, w-r)
	p.Y.Scale.SetRange(h-b, t)
	if o, ok := plot.Ordinal(p.X); ok && g.Kind == config.Bar {
		o.SetPadding(0.2)
	}

	gr := &graph{id: id, plot: p, cfg: g}
	gr.pair = zoom.Pair{
		X: zoom.Bar{
			Track: zoom.Track{Bounds: zoom.Rect{X: l, Y: h - s, W: w - l - r, H: s}, Thickness: s},
			Axis:  p.X,
		},
		Y: zoom.Bar{
			Track: zoom.Track{Bounds: zoom.Rect{X: 0, Y: t, W: s, H: h - t - b}, Thickness: s},
			Axis:  p.Y,
		},
		Click: g.Click(),
	}
	gr.lay = zoom.Layout{
		Width:  w,
		Height: h,
		Margin: zoom.Insets{Top: t, Right: r, Bottom: b, Left: l},
		Padding: zoom.Insets{
			Top:    float64(g.Padding.Top),
			Right:  float64(g.Padding.Right),
			Bottom: float64(g.Padding.Bottom),
			Left:   float64(g.Padding.Left),
		},
	}
	gr.wheel = zoom.NewWheel(p.X, p.Y)
	return gr
}

func (g *graph) width() int  { return g.cfg.Width }
func (g *graph) height() int { return g.cfg.Height }

// local converts content cells to widget cells.
func (g *graph) local(cx, cy int) (int, int) { return cx - g.left, cy - g.top }

func (g *graph) contains(cx, cy int) bool {
	x, y := g.local(cx, cy)
	return x >= 0 && y >= 0 && x < g.width() && y < g.height()
}

func (g *graph) pointer(cx, cy int) zoom.Pointer {
	x, y := g.local(cx, cy)
	return zoom.Pointer{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// buttonAt hit-tests the title row buttons in widget cells.
func (g *graph) buttonAt(x, y int) (zoom.Direction, bool) {
	if !g.ui.ControlsVisible || y != 0 {
		return 0, false
	}
	start := g.width() - buttonCols
	switch {
	case x >= start && x < start+len(buttonIn):
		return zoom.In, true
	case x >= start+len(buttonIn) && x < g.width():
		return zoom.Out, true
	}
	return 0, false
}

func (g *graph) rebase() { g.wheel.Rebase(g.plot.X, g.plot.Y) }

func (g *graph) zoom(dir zoom.Direction) error {
	defer g.rebase()
	if err := zoom.Zoom2D(dir, g.plot.X, g.plot.Y); err != nil {
		return err
	}
	g.logDomains("zoom " + dir.String())
	return nil
}

// zoomAxis zooms only the x (Horizontal) or y (Vertical) window.
func (g *graph) zoomAxis(dir zoom.Direction, o zoom.Orientation) error {
	defer g.rebase()
	a := g.plot.X
	if o == zoom.Vertical {
		a = g.plot.Y
	}
	if err := zoom.Zoom1D(dir, a); err != nil {
		return fmt.Errorf("%s axis: %w", o, err)
	}
	g.logDomains("zoom " + o.String() + " " + dir.String())
	return nil
}

func (g *graph) reset() error {
	defer g.rebase()
	for _, a := range []zoom.Axis{g.plot.X, g.plot.Y} {
		if err := zoom.Reset(a); err != nil {
			return err
		}
	}
	g.logDomains("reset")
	return nil
}

// pan moves the windows by fractions of their widths. Positive dy moves the
// y window toward larger values.
func (g *graph) pan(dx, dy float64) error {
	defer g.rebase()
	if dx != 0 {
		if err := zoom.Pan(g.plot.X, dx); err != nil {
			return err
		}
	}
	if dy != 0 {
		if err := zoom.Pan(g.plot.Y, dy); err != nil {
			return err
		}
	}
	g.logDomains("pan")
	return nil
}

func (g *graph) press(p zoom.Pointer) error {
	loc, err := zoom.PointerDown(p, g.pair)
	if err != nil {
		return err
	}
	g.loc = loc
	if loc.Active() {
		g.ui = state.StartDrag(g.ui, loc.Axis.String())
		log.WithFields(log.Fields{
			"graph":  g.cfg.Title,
			"axis":   loc.Axis,
			"handle": loc.Handle,
		}).Trace("drag start")
	}
	return nil
}

func (g *graph) drag(p zoom.Pointer, kind zoom.EventKind) error {
	loc, err := zoom.PointerMoveOrUp(p, kind, g.pair, g.loc)
	g.loc = loc
	if kind == zoom.Up {
		g.ui = state.EndDrag(g.ui)
		g.rebase()
	}
	if err != nil {
		return err
	}
	g.logDomains("drag")
	return nil
}

// cancel drops a drag in progress, as when a press lands elsewhere.
func (g *graph) cancel() {
	if !g.loc.Active() {
		return
	}
	g.loc = zoom.Cancel(g.loc)
	g.ui = state.EndDrag(g.ui)
	g.rebase()
}

// wheelAt zooms about p by one notch, or pans when shift is held.
func (g *graph) wheelAt(p zoom.Pointer, up, shift bool) error {
	route := zoom.RouteGesture(p.Point(), g.lay)
	if !route.X && !route.Y {
		return nil
	}
	t := g.wheel.Transform()
	if shift {
		d := float64(wheelPanCells)
		if !up {
			d = -d
		}
		if route.X {
			t = t.Translate(d, 0)
		} else {
			t = t.Translate(0, d)
		}
	} else {
		k := g.cfg.Wheel.Step
		if !up {
			k = 1 / k
		}
		t = t.ScaleAt(k, p.Point(), g.cfg.Wheel.MinScale, g.cfg.Wheel.MaxScale)
	}
	if err := g.wheel.OnGesture(zoom.Gesture{Pointer: p.Point(), Transform: t}, route, g.plot.X, g.plot.Y); err != nil {
		return err
	}
	g.logDomains("wheel")
	return nil
}

func (g *graph) logDomains(source string) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	for _, a := range []struct {
		name string
		axis zoom.Axis
	}{{"x", g.plot.X}, {"y", g.plot.Y}} {
		lo, hi := bounds(a.axis)
		log.WithFields(log.Fields{
			"graph": g.cfg.Title,
			"axis":  a.name,
			"min":   lo,
			"max":   hi,
		}).Debug(source)
	}
}

func bounds(a zoom.Axis) (string, string) {
	switch s := a.Scale.(type) {
	case *scale.Continuous:
		lo, hi := s.Domain()
		return data.FormatValue(lo), data.FormatValue(hi)
	case *scale.Ordinal:
		return s.First(), s.Last()
	}
	return "", ""
}

// ===== Rendering =====

// view renders the widget as one string per row. The zoom buttons are
// marked as bubblezone zones.
func (g *graph) view(th *theme, zones *zone.Manager) []string {
	c := g.draw(th)
	styles := th.styles
	rows := make([]string, c.h)
	for y := range rows {
		rows[y] = c.renderRow(y, styles)
	}
	if g.ui.ControlsVisible && c.h > 0 {
		start := c.w - buttonCols
		mid := start + len(buttonIn)
		rows[0] = c.renderSpan(0, 0, start, styles) +
			zones.Mark(g.id+"/in", c.renderSpan(0, start, mid, styles)) +
			zones.Mark(g.id+"/out", c.renderSpan(0, mid, c.w, styles))
	}
	return rows
}

func (g *graph) draw(th *theme) *canvas {
	c := newCanvas(g.width(), g.height())
	g.drawTitle(c)
	switch g.cfg.Kind {
	case config.Scatter:
		g.drawScatter(c)
	case config.Area:
		g.drawArea(c)
		g.drawOverview(c)
	case config.Histogram, config.Bar:
		g.drawBars(c)
	case config.Heatmap:
		g.drawHeat(c, th)
	}
	g.drawAxes(c)
	g.drawZoomBars(c)
	return c
}

// plotArea returns the plot columns [x0, x1) and rows [y0, y1).
func (g *graph) plotArea() (x0, x1, y0, y1 int) {
	m := g.cfg.Margin
	return m.Left, g.width() - m.Right, m.Top, g.height() - m.Bottom
}

func (g *graph) drawTitle(c *canvas) {
	style := "title"
	if g.ui.Focused {
		style = "title.focus"
	}
	avail := c.w
	if g.ui.ControlsVisible {
		avail -= buttonCols + 1
		c.text(c.w-buttonCols, 0, buttonIn+buttonOut, "button")
	}
	c.text(0, 0, util.Fit(g.cfg.Title, avail), style)
}

func (g *graph) drawScatter(c *canvas) {
	xs, okx := plot.Continuous(g.plot.X)
	ys, oky := plot.Continuous(g.plot.Y)
	if !okx || !oky {
		return
	}
	x0, x1, y0, y1 := g.plotArea()
	for _, p := range g.plot.VisiblePoints() {
		cx := clampCell(xs.Map(p.X), x0, x1)
		cy := clampCell(ys.Map(p.Y), y0, y1)
		r := '•'
		if c.rune(cx, cy) != ' ' {
			r = '●'
		}
		c.set(cx, cy, r, "mark")
	}
}

func (g *graph) drawArea(c *canvas) {
	xs, okx := plot.Continuous(g.plot.X)
	ys, oky := plot.Continuous(g.plot.Y)
	if !okx || !oky {
		return
	}
	x0, x1, y0, y1 := g.plotArea()
	for col := x0; col < x1; col++ {
		v, ok := interpolate(g.plot.Points, xs.Invert(float64(col)+0.5))
		if !ok {
			continue
		}
		for row := y0; row < y1; row++ {
			if ys.Invert(float64(row)+0.5) > v {
				continue
			}
			r := '█'
			if ys.Invert(float64(row)) > v {
				r = '▄'
			}
			c.set(col, row, r, "mark")
		}
	}
}

var levels = []rune(" ▁▂▃▄▅▆▇█")

// drawOverview draws the whole series as a sparkline under the tick row,
// highlighting the part inside the live x window.
func (g *graph) drawOverview(c *canvas) {
	_, _, _, y1 := g.plotArea()
	row := y1 + 1
	if row >= g.height()-g.cfg.BarSize {
		return
	}
	ov, ok := g.plot.X.Domain0.Copy().(*scale.Continuous)
	y0s, oky := g.plot.Y.Domain0.(*scale.Continuous)
	xs, okx := plot.Continuous(g.plot.X)
	if !ok || !oky || !okx {
		return
	}
	x0, x1, _, _ := g.plotArea()
	ov.SetRange(float64(x0), float64(x1))
	lo, hi := y0s.Domain()
	w0, w1 := xs.Domain()
	for col := x0; col < x1; col++ {
		x := ov.Invert(float64(col) + 0.5)
		v, ok := interpolate(g.plot.Points, x)
		if !ok || hi == lo {
			continue
		}
		i := int(math.Round(zoom.Clamp((v-lo)/(hi-lo), 0, 1) * float64(len(levels)-1)))
		style := "faint"
		if x >= w0 && x <= w1 {
			style = "mark"
		}
		c.set(col, row, levels[i], style)
	}
}

func (g *graph) drawBars(c *canvas) {
	xo, okx := plot.Ordinal(g.plot.X)
	d0, ok0 := g.plot.X.Domain0.(*scale.Ordinal)
	ys, oky := plot.Continuous(g.plot.Y)
	if !okx || !ok0 || !oky {
		return
	}
	x0, x1, y0, y1 := g.plotArea()
	for _, label := range xo.Domain() {
		start, _ := xo.Map(label)
		c0, c1 := span(start, start+xo.Bandwidth())
		v := g.value(d0.Index(label))
		lo, hi := math.Min(0, v), math.Max(0, v)
		for row := y0; row < y1; row++ {
			if u := ys.Invert(float64(row) + 0.5); u < lo || u > hi {
				continue
			}
			for col := max(c0, x0); col < min(c1, x1); col++ {
				c.set(col, row, '█', "mark")
			}
		}
	}
}

// value is the bar height of original band i.
func (g *graph) value(i int) float64 {
	if g.plot.Bins != nil {
		if i < 0 || i >= len(g.plot.Bins) {
			return 0
		}
		return float64(g.plot.Bins[i].Count)
	}
	if i < 0 || i >= len(g.plot.Cats) {
		return 0
	}
	return g.plot.BarValue(i)
}

func (g *graph) drawHeat(c *canvas, th *theme) {
	xo, okx := plot.Ordinal(g.plot.X)
	yo, oky := plot.Ordinal(g.plot.Y)
	xd, okxd := g.plot.X.Domain0.(*scale.Ordinal)
	yd, okyd := g.plot.Y.Domain0.(*scale.Ordinal)
	t := g.plot.Tiles
	if !okx || !oky || !okxd || !okyd || t.Max == 0 {
		return
	}
	x0, x1, y0, y1 := g.plotArea()
	for _, xl := range xo.Domain() {
		i := xd.Index(xl)
		xs0, _ := xo.Map(xl)
		c0, c1 := span(xs0, xs0+xo.Bandwidth())
		for _, yl := range yo.Domain() {
			j := yd.Index(yl)
			if i < 0 || i >= len(t.Counts) || j < 0 || j >= len(t.Counts[i]) {
				continue
			}
			ys0, _ := yo.Map(yl)
			r0, r1 := span(ys0, ys0+yo.Bandwidth())
			glyph, style := th.heat(float64(t.Counts[i][j]) / float64(t.Max))
			for row := max(r0, y0); row < min(r1, y1); row++ {
				for col := max(c0, x0); col < min(c1, x1); col++ {
					c.set(col, row, glyph, style)
				}
			}
		}
	}
}

func (g *graph) drawAxes(c *canvas) {
	x0, x1, y0, y1 := g.plotArea()
	s := g.cfg.BarSize
	for row := y0; row < y1; row++ {
		c.set(x0-1, row, '│', "axis")
	}

	// y labels sit between the y bar and the axis line.
	lw := x0 - s - 2
	n := max(2, (y1-y0)/3)
	vals, labels := plot.Ticks(g.plot.Y, n)
	used := map[int]bool{}
	for i, v := range vals {
		row := clampCell(v, y0, y1)
		if used[row] {
			continue
		}
		used[row] = true
		c.set(x0-1, row, '┤', "axis")
		if lw > 0 {
			c.text(s+1, row, util.PadLeft(labels[i], lw), "axis")
		}
	}

	maxw := 8
	if o, ok := plot.Ordinal(g.plot.X); ok {
		maxw = max(1, int(math.Abs(o.Step()))-1)
	}
	vals, labels = plot.Ticks(g.plot.X, max(2, (x1-x0)/10))
	next := x0
	for i, v := range vals {
		l := util.Fit(labels[i], maxw)
		w := len([]rune(l))
		col := int(math.Round(v)) - w/2
		col = min(max(col, x0), x1-w)
		if col < next {
			continue
		}
		c.text(col, y1, l, "axis")
		next = col + w + 1
	}
}

func (g *graph) drawZoomBars(c *canvas) {
	visible := g.ui.ControlsVisible
	xb, yb := g.pair.X, g.pair.Y
	th := zoombar.Thickness(xb.Track)
	bx, by := int(xb.Track.Bounds.X), int(xb.Track.Bounds.Y)
	for i, r := range zoombar.Roles(xb, visible) {
		for t := 0; t < th; t++ {
			c.set(bx+i, by+t, zoombar.Glyph(r), zoombar.StyleName(r, visible))
		}
	}
	th = zoombar.Thickness(yb.Track)
	bx, by = int(yb.Track.Bounds.X), int(yb.Track.Bounds.Y)
	for i, r := range zoombar.Roles(yb, visible) {
		for t := 0; t < th; t++ {
			c.set(bx+t, by+i, zoombar.Glyph(r), zoombar.StyleName(r, visible))
		}
	}
}

// clampCell floors v to a cell index in [lo, hi).
func clampCell(v float64, lo, hi int) int {
	i := int(math.Floor(v))
	if i >= hi {
		i = hi - 1
	}
	if i < lo {
		i = lo
	}
	return i
}

// span returns the cells [c0, c1) covered by the range extent [a, b] in
// either order, at least one cell wide.
func span(a, b float64) (int, int) {
	lo, hi := math.Min(a, b), math.Max(a, b)
	c0, c1 := int(math.Round(lo)), int(math.Round(hi))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return c0, c1
}

// interpolate returns the series value at x from points sorted by X.
func interpolate(pts []plot.Point, x float64) (float64, bool) {
	i := sort.Search(len(pts), func(i int) bool { return pts[i].X >= x })
	switch {
	case i == len(pts):
		return 0, false
	case pts[i].X == x:
		return pts[i].Y, true
	case i == 0:
		return 0, false
	}
	a, b := pts[i-1], pts[i]
	return a.Y + (b.Y-a.Y)*(x-a.X)/(b.X-a.X), true
}
