package statusbar

import (
	"fmt"
	"strings"

	"zoombar/internal/tui/state"
	"zoombar/internal/tui/util"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line: the dashboard title, which graph has
// focus and its live domains, the scroll position, and the latest notice.
// The result is cut to the terminal width.
func (StatusBar) View(d state.Dashboard, title, domains string) string {
	var parts []string
	if title != "" {
		parts = append(parts, title)
	}
	parts = append(parts, fmt.Sprintf("[%d/%d]", d.Focus+1, d.Graphs))
	if domains != "" {
		parts = append(parts, domains)
	}
	if d.Content > state.Body(d) {
		parts = append(parts, fmt.Sprintf("V:%d", d.ScrollV))
	}
	if d.Notice != "" {
		parts = append(parts, d.Notice)
	}
	line := strings.Join(parts, "  ")
	if d.Width > 0 {
		line = util.Fit(line, d.Width)
	}
	return line
}
