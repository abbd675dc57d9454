package util

import (
	"fmt"
	"image/color"
	"os"

	"github.com/aclements/go-gg/palette"
	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
	Primary   lipgloss.Color
	Accent    lipgloss.Color
	Danger    lipgloss.Color
	Muted     lipgloss.Color
	MutedDark lipgloss.Color

	// Heat maps counts in [0, 1] to tile colors.
	Heat palette.Continuous
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("#3D6DFF"),
		Accent:    lipgloss.Color("#F0AD4E"),
		Danger:    lipgloss.Color("#D9534F"),
		Muted:     lipgloss.Color("#6C757D"),
		MutedDark: lipgloss.Color("#5A5A5A"),
		Heat: palette.RGBGradient{Colors: []color.RGBA{
			{0xf7, 0xfb, 0xff, 0xff},
			{0x6b, 0xae, 0xd6, 0xff},
			{0x08, 0x30, 0x6b, 0xff},
		}},
	}
}

// HeatColor returns the lipgloss color for a normalized count.
func (p Palette) HeatColor(x float64) lipgloss.Color {
	return Hex(p.Heat.Map(x))
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// HeatShade picks a block glyph by density so heat maps still read without
// color.
func HeatShade(x float64) rune {
	switch {
	case x <= 0:
		return ' '
	case x < 0.34:
		return '░'
	case x < 0.67:
		return '▒'
	}
	return '▓'
}
