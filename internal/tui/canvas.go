package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r     rune
	style string
}

// canvas is a grid of runes tagged with style names. Rows render as runs of
// equal style so each row costs a handful of escape sequences.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(x, y int, r rune, style string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r, style}
}

// text writes s from (x, y), clipped to the canvas.
func (c *canvas) text(x, y int, s, style string) {
	for _, r := range s {
		c.set(x, y, r, style)
		x++
	}
}

// block copies a multi-line string of plain glyphs at (x, y).
func (c *canvas) block(x, y int, s, style string) {
	for i, line := range strings.Split(s, "\n") {
		c.text(x, y+i, line, style)
	}
}

func (c *canvas) rune(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.cells[y][x].r
}

// plainRow returns row y without styling.
func (c *canvas) plainRow(y int) string {
	var b strings.Builder
	for _, cl := range c.cells[y] {
		b.WriteRune(cl.r)
	}
	return b.String()
}

// renderRow styles row y. Unknown style names render unstyled.
func (c *canvas) renderRow(y int, styles map[string]lipgloss.Style) string {
	return c.renderSpan(y, 0, c.w, styles)
}

// renderSpan styles columns [x0, x1) of row y.
func (c *canvas) renderSpan(y, x0, x1 int, styles map[string]lipgloss.Style) string {
	x0, x1 = max(x0, 0), min(x1, c.w)
	var b, run strings.Builder
	cur := ""
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if st, ok := styles[cur]; ok {
			b.WriteString(st.Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}
	for x := x0; x < x1; x++ {
		cl := c.cells[y][x]
		if cl.style != cur {
			flush()
			cur = cl.style
		}
		run.WriteRune(cl.r)
	}
	flush()
	return b.String()
}
