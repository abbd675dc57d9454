package statusbar

import (
	"strings"
	"testing"

	"zoombar/internal/tui/state"
)

func TestViewShowsFocusAndNotice(t *testing.T) {
	d := state.Dashboard{Graphs: 3, Focus: 1, Width: 200, Height: 40, Notice: "copied"}
	out := NewStatusBar().View(d, "dash", "g: x=[0, 1] y=[2, 3]")
	for _, want := range []string{"dash", "[2/3]", "x=[0, 1]", "copied"} {
		if !strings.Contains(out, want) {
			t.Fatalf("status %q is missing %q", out, want)
		}
	}
	if strings.Contains(out, "V:") {
		t.Fatalf("no scroll position expected when everything fits")
	}
}

func TestViewFitsWidth(t *testing.T) {
	d := state.Dashboard{Graphs: 1, Width: 10, Height: 5, Content: 40, ScrollV: 3}
	out := NewStatusBar().View(d, "", "a very long domain description")
	if n := len([]rune(out)); n > 10 {
		t.Fatalf("status is %d runes wide", n)
	}
}
