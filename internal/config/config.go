package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"zoombar/internal/zoom"
)

// Graph kinds.
const (
	Scatter   = "scatter"
	Histogram = "histogram"
	Bar       = "bar"
	Heatmap   = "heatmap"
	Area      = "area"
)

var kinds = []string{Scatter, Histogram, Bar, Heatmap, Area}

// Config is a dashboard: {"title": "...", "graphs": [{...}, ...]}.
type Config struct {
	Title  string  `json:"title,omitempty"`
	Graphs []Graph `json:"graphs"`
}

// Graph describes one zoomable chart. Sizes are terminal cells.
type Graph struct {
	Title string `json:"title,omitempty"`
	Kind  string `json:"kind"`
	// Data is a CSV/TSV path or "sample:<name>".
	Data string `json:"data"`
	X    string `json:"x"`
	Y    string `json:"y,omitempty"` // empty for histograms; bar charts count rows
	LogX bool   `json:"log_x,omitempty"`
	LogY bool   `json:"log_y,omitempty"`

	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	Margin  Insets `json:"margin"`
	Padding Insets `json:"padding"`
	BarSize int    `json:"bar_size,omitempty"`

	TrackClick string `json:"track_click,omitempty"` // "page" (default) | "center"
	Wheel      Wheel  `json:"wheel"`

	Bins          int `json:"bins,omitempty"`
	MaxCategories int `json:"max_categories,omitempty"`
}

// Insets are per-side cell counts.
type Insets struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Wheel bounds the wheel zoom like a scale extent.
type Wheel struct {
	MinScale float64 `json:"min_scale,omitempty"`
	MaxScale float64 `json:"max_scale,omitempty"`
	Step     float64 `json:"step,omitempty"` // K factor per wheel notch
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}
	if len(c.Graphs) == 0 {
		return nil, fmt.Errorf("config has no graphs")
	}
	for i := range c.Graphs {
		c.Graphs[i].ApplyDefaults()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone copies c. Graph has no reference fields, so a slice copy is deep.
func Clone(c *Config) *Config {
	out := &Config{Title: c.Title}
	out.Graphs = append([]Graph(nil), c.Graphs...)
	return out
}

// Default is the dashboard written by `zoombar init`, one graph per kind.
func Default() *Config {
	c := &Config{
		Title: "Discoverable zooming",
		Graphs: []Graph{
			{Title: "Iris sepals", Kind: Scatter, Data: "sample:iris", X: "sepal_length", Y: "sepal_width"},
			{Title: "Petal lengths", Kind: Histogram, Data: "sample:iris", X: "petal_length", Bins: 12},
			{Title: "Sales by region", Kind: Bar, Data: "sample:sales", X: "region", Y: "amount"},
			{Title: "Species by petal width", Kind: Heatmap, Data: "sample:iris", X: "petal_width", Y: "species"},
			{Title: "Index", Kind: Area, Data: "sample:index", X: "day", Y: "close"},
		},
	}
	for i := range c.Graphs {
		c.Graphs[i].ApplyDefaults()
	}
	return c
}

// ApplyDefaults fills zero fields.
func (g *Graph) ApplyDefaults() {
	g.Kind = strings.ToLower(strings.TrimSpace(g.Kind))
	if g.Width == 0 {
		g.Width = 64
	}
	if g.Height == 0 {
		g.Height = 16
	}
	if g.Margin == (Insets{}) {
		g.Margin = Insets{Top: 1, Right: 1, Bottom: 3, Left: 9}
	}
	if g.Padding == (Insets{}) {
		g.Padding = Insets{Right: 1, Left: 1}
	}
	if g.BarSize == 0 {
		g.BarSize = 1
	}
	if g.Wheel.Step == 0 {
		g.Wheel.Step = 1.25
	}
	if g.Wheel.MinScale == 0 {
		g.Wheel.MinScale = 1.0 / 64
	}
	if g.Wheel.MaxScale == 0 {
		g.Wheel.MaxScale = 64
	}
	if g.Bins == 0 {
		g.Bins = 10
	}
	if g.MaxCategories == 0 {
		g.MaxCategories = 8
	}
	if g.Title == "" {
		g.Title = g.X
		if g.Y != "" {
			g.Title = g.Y + " by " + g.X
		}
	}
}

// Validate reports the first invalid graph.
func (c *Config) Validate() error {
	for i, g := range c.Graphs {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("graph %d (%s): %w", i, g.Title, err)
		}
	}
	return nil
}

func (g Graph) Validate() error {
	known := false
	for _, k := range kinds {
		if g.Kind == k {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("unknown kind %q (want one of %s)", g.Kind, strings.Join(kinds, ", "))
	}
	if g.Data == "" {
		return fmt.Errorf("no data source")
	}
	if g.X == "" {
		return fmt.Errorf("no x column")
	}
	switch g.Kind {
	case Scatter, Heatmap, Area:
		if g.Y == "" {
			return fmt.Errorf("%s needs a y column", g.Kind)
		}
	}
	if g.Width <= 0 || g.Height <= 0 || g.BarSize <= 0 {
		return fmt.Errorf("sizes must be positive")
	}
	if g.Margin.Left <= g.BarSize || g.Margin.Bottom <= g.BarSize {
		return fmt.Errorf("left and bottom margins must leave room for the zoom bars")
	}
	if g.Margin.Top < 1 {
		return fmt.Errorf("top margin must leave a row for the title and buttons")
	}
	if g.Width-g.Margin.Left-g.Margin.Right < 4 || g.Height-g.Margin.Top-g.Margin.Bottom < 2 {
		return fmt.Errorf("plot area too small for %dx%d", g.Width, g.Height)
	}
	if g.Bins < 1 || g.MaxCategories < 1 {
		return fmt.Errorf("bins and max_categories must be positive")
	}
	if g.Wheel.Step <= 1 || g.Wheel.MinScale <= 0 || g.Wheel.MaxScale < g.Wheel.MinScale {
		return fmt.Errorf("invalid wheel settings %+v", g.Wheel)
	}
	if (g.LogX || g.LogY) && g.Kind != Scatter && g.Kind != Area {
		return fmt.Errorf("log scale not supported on a binned or categorical axis")
	}
	if _, err := zoom.ParseTrackClick(g.TrackClick); err != nil {
		return err
	}
	return nil
}

// Click returns the parsed track click mode. Validate has checked it.
func (g Graph) Click() zoom.TrackClick {
	c, _ := zoom.ParseTrackClick(g.TrackClick)
	return c
}
