package state

import "testing"

func TestHoverShowsControls(t *testing.T) {
	s := Hover(UIState{}, true)
	if !s.ControlsVisible || !s.Hovered { t.Fatalf("expected controls on hover") }
	s = Hover(s, false)
	if s.ControlsVisible { t.Fatalf("expected controls hidden after leaving") }
}

func TestDragKeepsControlsVisible(t *testing.T) {
	s := StartDrag(UIState{}, "x")
	if !s.Dragging || !s.ControlsVisible || s.Notice == "" { t.Fatalf("expected drag state and notice") }
	s = Hover(s, false)
	if !s.ControlsVisible { t.Fatalf("controls must stay up during a drag") }
	s = EndDrag(s)
	if s.Dragging || s.ControlsVisible || s.Notice != "" { t.Fatalf("expected idle state after release: %+v", s) }
}

func TestEndDragWhileHovered(t *testing.T) {
	s := StartDrag(Hover(UIState{}, true), "y")
	s = EndDrag(s)
	if !s.ControlsVisible { t.Fatalf("expected controls to stay visible while hovered") }
}

func TestScrollClamps(t *testing.T) {
	d := Resize(Dashboard{}, 80, 11)
	d = SetContent(d, 30) // 9 body rows; max scroll 21
	d = ScrollUp(d, false)
	if d.ScrollV != 0 { t.Fatalf("expected scroll to stay at 0, got %d", d.ScrollV) }
	d = ScrollDown(d, true)
	if d.ScrollV != 9 { t.Fatalf("expected page scroll of 9, got %d", d.ScrollV) }
	d = ScrollDown(d, true)
	d = ScrollDown(d, true)
	if d.ScrollV != 21 { t.Fatalf("expected scroll clamped to 21, got %d", d.ScrollV) }
	d = Resize(d, 80, 40)
	if d.ScrollV != 0 { t.Fatalf("expected scroll reset when everything fits, got %d", d.ScrollV) }
}

func TestFocusCycles(t *testing.T) {
	d := Dashboard{Graphs: 3}
	d = FocusNext(FocusNext(FocusNext(d)))
	if d.Focus != 0 { t.Fatalf("expected focus to wrap, got %d", d.Focus) }
	d = FocusAt(d, 2)
	if d.Focus != 2 { t.Fatalf("expected focus 2") }
	d = FocusAt(d, 7)
	if d.Focus != 2 { t.Fatalf("out of range focus should be ignored") }
}

func TestToggleHelp(t *testing.T) {
	d := ToggleHelp(Dashboard{})
	if !d.ShowHelp { t.Fatalf("expected help shown") }
}
