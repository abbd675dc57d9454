package state

import "fmt"

// Hover records the pointer entering or leaving the widget. Controls stay up
// while a drag is in progress even if the pointer wanders off.
func Hover(s UIState, inside bool) UIState {
	s.Hovered = inside
	s.ControlsVisible = s.Hovered || s.Dragging
	return s
}

// StartDrag marks a captured drag on the given bar.
func StartDrag(s UIState, axis string) UIState {
	s.Dragging = true
	s.ControlsVisible = true
	s.Notice = fmt.Sprintf("dragging %s", axis)
	return s
}

// EndDrag releases the drag; controls follow the hover state again.
func EndDrag(s UIState) UIState {
	s.Dragging = false
	s.ControlsVisible = s.Hovered
	s.Notice = ""
	return s
}

// SetFocus gives or takes keyboard focus.
func SetFocus(s UIState, focused bool) UIState {
	s.Focused = focused
	return s
}

// SetNotice replaces the widget's notice.
func SetNotice(s UIState, msg string) UIState {
	s.Notice = msg
	return s
}

// Resize updates the terminal size and keeps the scroll offset in bounds.
func Resize(d Dashboard, width, height int) Dashboard {
	d.Width = width
	d.Height = height
	return clampScroll(d)
}

// SetContent records the rendered height of the dashboard body.
func SetContent(d Dashboard, rows int) Dashboard {
	d.Content = rows
	return clampScroll(d)
}

// ScrollDown moves the viewport down one row, or a page when fast.
func ScrollDown(d Dashboard, fast bool) Dashboard {
	d.ScrollV += scrollDelta(d, fast)
	return clampScroll(d)
}

// ScrollUp moves the viewport up one row, or a page when fast.
func ScrollUp(d Dashboard, fast bool) Dashboard {
	d.ScrollV -= scrollDelta(d, fast)
	return clampScroll(d)
}

// FocusNext cycles keyboard focus through the graphs.
func FocusNext(d Dashboard) Dashboard {
	if d.Graphs > 0 {
		d.Focus = (d.Focus + 1) % d.Graphs
	}
	return d
}

// FocusAt focuses graph i when it exists.
func FocusAt(d Dashboard, i int) Dashboard {
	if i >= 0 && i < d.Graphs {
		d.Focus = i
	}
	return d
}

// ToggleHelp shows or hides the key overlay.
func ToggleHelp(d Dashboard) Dashboard {
	d.ShowHelp = !d.ShowHelp
	return d
}

// Notify sets the status line notice.
func Notify(d Dashboard, msg string) Dashboard {
	d.Notice = msg
	return d
}

func scrollDelta(d Dashboard, fast bool) int {
	if fast && Body(d) > 1 {
		return Body(d)
	}
	return 1
}

// Chrome is the rows below the graphs: status line and key help.
const Chrome = 2

// Body is the number of rows available to graphs.
func Body(d Dashboard) int {
	if d.Height <= Chrome {
		return 0
	}
	return d.Height - Chrome
}

// clampScroll keeps ScrollV within the content that does not fit.
func clampScroll(d Dashboard) Dashboard {
	max := d.Content - Body(d)
	if max < 0 {
		max = 0
	}
	if d.ScrollV > max {
		d.ScrollV = max
	}
	if d.ScrollV < 0 {
		d.ScrollV = 0
	}
	return d
}
