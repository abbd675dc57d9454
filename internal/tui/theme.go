package tui

import (
	"github.com/charmbracelet/lipgloss"

	"zoombar/internal/tui/util"
	"zoombar/internal/tui/widgets/zoombar"
)

// theme maps canvas style names to lipgloss styles. Heat map colors are
// added on first use.
type theme struct {
	styles  map[string]lipgloss.Style
	pal     util.Palette
	noColor bool
}

func newTheme(noColor bool) *theme {
	p := util.DefaultPalette()
	st := map[string]lipgloss.Style{
		"title":       lipgloss.NewStyle().Bold(true),
		"title.focus": lipgloss.NewStyle().Bold(true).Reverse(true),
		"axis":        lipgloss.NewStyle(),
		"mark":        lipgloss.NewStyle(),
		"faint":       lipgloss.NewStyle().Faint(true),
		"button":      lipgloss.NewStyle().Bold(true),
	}
	if !noColor {
		st["title.focus"] = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
		st["axis"] = lipgloss.NewStyle().Foreground(p.Muted)
		st["mark"] = lipgloss.NewStyle().Foreground(p.Primary)
		st["faint"] = lipgloss.NewStyle().Foreground(p.MutedDark)
		st["button"] = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	}
	for k, v := range zoombar.NewStyles(p, noColor).Map() {
		st[k] = v
	}
	return &theme{styles: st, pal: p, noColor: noColor}
}

// heat returns the glyph and style for a tile at density x in [0, 1].
// Without color the density shows as block shading.
func (t *theme) heat(x float64) (rune, string) {
	if t.noColor {
		return util.HeatShade(x), "mark"
	}
	c := t.pal.HeatColor(x)
	name := "heat:" + string(c)
	if _, ok := t.styles[name]; !ok {
		t.styles[name] = lipgloss.NewStyle().Foreground(c)
	}
	return '█', name
}

// Styles used outside the graphs.
func (t *theme) status() lipgloss.Style { return t.styles["axis"] }
