package state

// UIState is the per-graph widget state the renderer reads. The drag capture
// itself lives in zoom.DragLocation; Dragging mirrors it for display.
type UIState struct {
	// Pointer
	Hovered  bool
	Dragging bool

	// Keyboard focus, one graph at a time
	Focused bool

	// ControlsVisible shows the zoom buttons and the bar handles.
	ControlsVisible bool

	Notice string
}

// Dashboard holds layout and chrome state shared by every graph.
type Dashboard struct {
	Width   int
	Height  int
	ScrollV int
	// Content is the rendered height of all graphs, in rows.
	Content int

	Focus    int
	Graphs   int
	ShowHelp bool

	Notice string
}
