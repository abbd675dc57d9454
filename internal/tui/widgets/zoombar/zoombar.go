// Package zoombar draws a zoom bar in terminal cells: a track spanning the
// axis, a thumb over the live window, and a handle cell at each end of the
// thumb.
package zoombar

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"zoombar/internal/tui/util"
	"zoombar/internal/zoom"
)

// Role is what one cell along the bar shows.
type Role int

const (
	Track Role = iota
	Thumb
	Handle
)

// Glyphs per role.
var glyphs = map[Role]rune{Track: '░', Thumb: '▓', Handle: '█'}

// Styles colors each role. Hidden bars draw the thumb with Faint.
type Styles struct {
	Track  lipgloss.Style
	Thumb  lipgloss.Style
	Handle lipgloss.Style
	Faint  lipgloss.Style
}

// NewStyles builds bar styles from the palette.
func NewStyles(p util.Palette, noColor bool) Styles {
	if noColor {
		return Styles{
			Track:  lipgloss.NewStyle(),
			Thumb:  lipgloss.NewStyle(),
			Handle: lipgloss.NewStyle().Bold(true),
			Faint:  lipgloss.NewStyle().Faint(true),
		}
	}
	return Styles{
		Track:  lipgloss.NewStyle().Foreground(p.MutedDark),
		Thumb:  lipgloss.NewStyle().Foreground(p.Primary),
		Handle: lipgloss.NewStyle().Foreground(p.Accent),
		Faint:  lipgloss.NewStyle().Foreground(p.Muted).Faint(true),
	}
}

// Roles returns one role per cell in drawing order (left to right, or top
// to bottom). Handles appear only while the controls are visible and the
// thumb is at least two cells long.
func Roles(b zoom.Bar, visible bool) []Role {
	l := int(math.Round(b.Track.Length()))
	if l <= 0 {
		return nil
	}
	out := make([]Role, l)
	n, err := zoom.Normalize(b.Axis.Domain0, b.Axis.Scale)
	if err != nil {
		return out
	}
	start, end := b.Track.Cells(n)
	for i := start; i < end && i < l; i++ {
		out[i] = Thumb
	}
	if visible && end-start >= 2 {
		out[start] = Handle
		out[end-1] = Handle
	}
	return out
}

// StyleName names the style a canvas uses for r. Hidden bars draw their
// thumb faint.
func StyleName(r Role, visible bool) string {
	switch {
	case r == Handle:
		return "bar.handle"
	case r == Thumb && !visible:
		return "bar.faint"
	case r == Thumb:
		return "bar.thumb"
	}
	return "bar.track"
}

// Map keys st by StyleName.
func (st Styles) Map() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"bar.track":  st.Track,
		"bar.thumb":  st.Thumb,
		"bar.handle": st.Handle,
		"bar.faint":  st.Faint,
	}
}

// Plain renders the bar glyphs without styling, one line per row.
func Plain(b zoom.Bar, visible bool) string {
	roles := Roles(b, visible)
	thick := thickness(b.Track)
	if b.Track.Horizontal() {
		var line strings.Builder
		for _, r := range roles {
			line.WriteRune(glyphs[r])
		}
		return strings.TrimSuffix(strings.Repeat(line.String()+"\n", thick), "\n")
	}
	lines := make([]string, len(roles))
	for i, r := range roles {
		lines[i] = strings.Repeat(string(glyphs[r]), thick)
	}
	return strings.Join(lines, "\n")
}

// Glyph returns the rune drawn for r.
func Glyph(r Role) rune { return glyphs[r] }

// Thickness is the bar's short side in whole cells, at least one.
func Thickness(t zoom.Track) int { return thickness(t) }

func thickness(t zoom.Track) int {
	th := int(math.Round(math.Min(t.Bounds.W, t.Bounds.H)))
	if th < 1 {
		th = 1
	}
	return th
}
