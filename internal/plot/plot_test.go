package plot

import (
	"testing"

	"zoombar/internal/config"
	"zoombar/internal/data"
	"zoombar/internal/scale"
	"zoombar/internal/zoom"
)

func table(cols []string, rows ...[]string) *data.Table {
	return &data.Table{Columns: cols, Rows: rows}
}

func TestBuildDefaultGraphs(t *testing.T) {
	for _, g := range config.Default().Graphs {
		tb, err := data.Load(g.Data)
		if err != nil {
			t.Fatalf("%s: load: %v", g.Title, err)
		}
		p, err := Build(g, tb)
		if err != nil {
			t.Fatalf("%s: build: %v", g.Title, err)
		}
		wantOrdX := g.Kind == config.Histogram || g.Kind == config.Bar || g.Kind == config.Heatmap
		if scale.IsOrdinal(p.X.Scale) != wantOrdX {
			t.Fatalf("%s: x ordinal = %v", g.Title, !wantOrdX)
		}
		if scale.IsOrdinal(p.Y.Scale) != (g.Kind == config.Heatmap) {
			t.Fatalf("%s: y axis kind wrong", g.Title)
		}
		n, err := zoom.Normalize(p.X.Domain0, p.X.Scale)
		if err != nil || !n.Full() {
			t.Fatalf("%s: x not at full extent: %+v %v", g.Title, n, err)
		}
	}
}

func TestBuildScatterZoomAndVisible(t *testing.T) {
	g := config.Graph{Title: "t", Kind: config.Scatter, Data: "x.csv", X: "a", Y: "b"}
	g.ApplyDefaults()
	p, err := Build(g, table([]string{"a", "b"}, []string{"0", "0"}, []string{"5", "2"}, []string{"10", "4"}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := p.Domains(); got != "t: x=[0, 10] y=[0, 4]" {
		t.Fatalf("Domains = %q", got)
	}
	if len(p.VisiblePoints()) != 3 {
		t.Fatalf("all points should be visible at full extent")
	}
	if err := zoom.Zoom2D(zoom.In, p.X, p.Y); err != nil {
		t.Fatalf("Zoom2D: %v", err)
	}
	vis := p.VisiblePoints()
	if len(vis) != 1 || vis[0] != (Point{5, 2}) {
		t.Fatalf("visible after zoom = %v", vis)
	}
}

func TestBuildBarCountsAndSums(t *testing.T) {
	rows := [][]string{{"a", "1"}, {"b", "10"}, {"a", "2"}}
	g := config.Graph{Kind: config.Bar, Data: "x.csv", X: "k"}
	g.ApplyDefaults()
	p, err := Build(g, table([]string{"k", "v"}, rows...))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.BarValue(0) != 2 || p.YName != "count" {
		t.Fatalf("count bar = %v (%s)", p.BarValue(0), p.YName)
	}
	g.Y = "v"
	p, err = Build(g, table([]string{"k", "v"}, rows...))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.BarValue(0) != 3 || p.BarValue(1) != 10 {
		t.Fatalf("sum bars = %v, %v", p.BarValue(0), p.BarValue(1))
	}
	ys, _ := Continuous(p.Y)
	if lo, hi := ys.Domain(); lo != 0 || hi < 10 {
		t.Fatalf("y domain [%v, %v] should start at zero and cover the tallest bar", lo, hi)
	}
}

func TestBuildErrors(t *testing.T) {
	tb := table([]string{"a", "b"}, []string{"-1", "x"})
	cases := []config.Graph{
		{Kind: config.Scatter, X: "a", Y: "b"},
		{Kind: config.Scatter, X: "a", Y: "missing"},
		{Kind: config.Scatter, X: "a", Y: "a", LogX: true},
		{Kind: config.Histogram, X: "b"},
		{Kind: "pie", X: "a"},
	}
	for i, g := range cases {
		g.Data = "x.csv"
		g.ApplyDefaults()
		if _, err := Build(g, tb); err == nil {
			t.Fatalf("case %d (%s): expected error", i, g.Kind)
		}
	}
}

func TestTicks(t *testing.T) {
	g := config.Graph{Kind: config.Bar, Data: "x.csv", X: "k"}
	g.ApplyDefaults()
	p, err := Build(g, table([]string{"k"}, []string{"a"}, []string{"b"}, []string{"b"}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	p.X.Scale.SetRange(0, 20)
	vals, labels := Ticks(p.X, 5)
	if len(labels) != 2 || labels[0] != "b" || vals[0] != 5 || vals[1] != 15 {
		t.Fatalf("ordinal ticks = %v %v", vals, labels)
	}
	p.Y.Scale.SetRange(10, 0)
	vals, labels = Ticks(p.Y, 5)
	if len(vals) == 0 || vals[0] != 10 || labels[0] != "0" {
		t.Fatalf("continuous ticks = %v %v", vals, labels)
	}
}
