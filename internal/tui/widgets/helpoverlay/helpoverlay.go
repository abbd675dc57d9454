package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Section is a titled group of key bindings.
type Section struct {
	Title string
	Keys  []key.Binding
}

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help, followed by the mouse gestures the graphs
// understand. Disabled bindings are skipped.
func (HelpOverlay) View(sections []Section) string {
	var b strings.Builder
	b.WriteString("Help\n")
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.Title)
		for _, k := range sec.Keys {
			if !k.Enabled() {
				continue
			}
			h := k.Help()
			fmt.Fprintf(&b, "  %s: %s\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\nMouse:\n")
	for _, m := range []string{
		"drag thumb: pan",
		"drag thumb end: resize window",
		"click track: page toward click",
		"wheel: zoom about pointer",
		"shift+wheel: pan",
		"+/- buttons: zoom both axes",
	} {
		fmt.Fprintf(&b, "  %s\n", m)
	}
	return b.String()
}
