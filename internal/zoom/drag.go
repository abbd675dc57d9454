package zoom

import (
	"fmt"
	"math"

	"zoombar/internal/scale"
)

// Handle is the part of the thumb a drag grabbed.
type Handle int

const (
	// HandleNone is the thumb body or the empty track.
	HandleNone Handle = iota
	HandleMin
	HandleMax
)

func (h Handle) String() string {
	switch h {
	case HandleMin:
		return "min"
	case HandleMax:
		return "max"
	}
	return "thumb"
}

// EventKind distinguishes intermediate moves from the final release.
type EventKind int

const (
	Move EventKind = iota
	Up
)

// TrackClick selects what a click on the empty track does.
type TrackClick int

const (
	// TrackClickPage moves the window half its width toward the click.
	TrackClickPage TrackClick = iota
	// TrackClickCenter centers the window on the click.
	TrackClickCenter
)

func (c TrackClick) String() string {
	if c == TrackClickCenter {
		return "center"
	}
	return "page"
}

// ParseTrackClick accepts "page" or "center"; empty means page.
func ParseTrackClick(s string) (TrackClick, error) {
	switch s {
	case "", "page":
		return TrackClickPage, nil
	case "center":
		return TrackClickCenter, nil
	}
	return TrackClickPage, fmt.Errorf("unknown track click mode %q", s)
}

// DragLocation is the capture state of one widget. The zero value is idle.
type DragLocation struct {
	Anchor   Point
	Captured scale.Scale
	Axis     Orientation
	Handle   Handle
	// Moved is set once any move event changed the pointer position.
	Moved bool
}

// Active reports whether a drag is captured. Hosts suppress their default
// press action (text or terminal selection) while it is true.
func (l DragLocation) Active() bool { return l.Axis != AxisNone }

// Cancel drops any capture, as when a press lands on another widget.
func Cancel(DragLocation) DragLocation { return DragLocation{} }

// PointerDown hit-tests p against both bars of pair and captures the bar it
// lands on. A miss returns an idle location.
func PointerDown(p Pointer, pair Pair) (DragLocation, error) {
	for _, o := range []Orientation{Horizontal, Vertical} {
		b, ok := pair.bar(o)
		if !ok || !b.Track.Bounds.Contains(p.Point()) {
			continue
		}
		n, err := Normalize(b.Axis.Domain0, b.Axis.Scale)
		if err != nil {
			return DragLocation{}, fmt.Errorf("pointer down on %s bar: %w", o, err)
		}
		return DragLocation{
			Anchor:   p.Point(),
			Captured: b.Axis.Scale.Copy(),
			Axis:     o,
			Handle:   classify(b.Track.offset(p.Point()), b.Track, n, p.Touch),
		}, nil
	}
	return DragLocation{}, nil
}

// classify checks the min end cap first, so the two handle regions never
// both claim a press even when the thumb is shorter than two end caps.
func classify(u float64, t Track, n Normalized, touch bool) Handle {
	lo, hi := t.Thumb(n)
	c := t.EndCap(touch)
	switch {
	case u >= lo && u <= lo+c:
		return HandleMin
	case u >= hi-c && u <= hi:
		return HandleMax
	}
	return HandleNone
}

// PointerMoveOrUp applies the pointer motion since the anchor to the
// captured axis. Events on an idle location are ignored without error.
// On Up the returned location is idle; on Move it carries the new anchor.
func PointerMoveOrUp(p Pointer, kind EventKind, pair Pair, loc DragLocation) (DragLocation, error) {
	if !loc.Active() {
		return DragLocation{}, nil
	}
	next := loc
	if kind == Up {
		next = DragLocation{}
	}
	b, ok := pair.bar(loc.Axis)
	if !ok {
		return next, nil
	}
	captured := loc.Captured
	if captured == nil {
		captured = b.Axis.Scale
	}
	n, err := Normalize(b.Axis.Domain0, captured)
	if err != nil {
		return next, fmt.Errorf("drag %s bar: %w", loc.Axis, err)
	}
	l := b.Track.Length()
	if l <= 0 {
		return next, nil
	}

	var px float64
	if b.Track.Horizontal() {
		px = p.X - loc.Anchor.X
	} else {
		px = loc.Anchor.Y - p.Y
	}
	delta := n.Span0() * px / l
	if n.Ordinal() {
		delta = math.Round(delta)
	}

	lo, hi := n.Min, n.Max
	switch loc.Handle {
	case HandleMin:
		delta = math.Max(delta, n.Min0-n.Min)
		delta = math.Min(delta, shrinkLimit(n))
		lo += delta
	case HandleMax:
		delta = math.Min(delta, n.Max0-n.Max)
		delta = math.Max(delta, -shrinkLimit(n))
		hi += delta
	default:
		if kind == Up && !loc.Moved && px == 0 {
			delta = trackClick(b.Track.offset(p.Point()), b.Track, n, pair.Click)
		}
		delta = clampShift(delta, n)
		lo += delta
		hi += delta
	}

	lo, hi = n.contain(lo, hi)
	if lo != n.Min || hi != n.Max {
		if err := Apply(b.Axis, lo, hi); err != nil {
			return next, fmt.Errorf("drag %s bar: %w", loc.Axis, err)
		}
	}
	if kind == Up {
		return next, nil
	}

	next.Captured = b.Axis.Scale.Copy()
	if px != 0 {
		next.Moved = true
	}
	if n.Ordinal() {
		// Sub-band motion stays pending until it adds up to a whole band.
		step := math.Round(n.Span0()*px/l) * l / n.Span0()
		if b.Track.Horizontal() {
			next.Anchor.X += step
		} else {
			next.Anchor.Y -= step
		}
	} else {
		next.Anchor = p.Point()
	}
	return next, nil
}

// shrinkLimit is how far one handle may move inward before the window
// would drop below its minimum width.
func shrinkLimit(n Normalized) float64 {
	s := math.Max(0, n.Width()-n.MinWidth())
	if n.Ordinal() {
		s = math.Floor(s)
	}
	return s
}

// trackClick returns the translation for a click at offset u.
func trackClick(u float64, t Track, n Normalized, mode TrackClick) float64 {
	lo, hi := t.Thumb(n)
	if u >= lo && u <= hi {
		return 0
	}
	w := n.Width()
	if mode == TrackClickCenter {
		v := n.Min0 + n.Span0()*u/t.Length()
		d := v - (n.Min+n.Max+n.Step)/2
		if n.Ordinal() {
			d = math.Round(d)
		}
		return d
	}
	half := w / 2
	if n.Ordinal() {
		half = math.Max(1, math.Round(half))
	}
	if u < lo {
		return -half
	}
	return half
}
