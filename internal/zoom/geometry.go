package zoom

import "math"

// EndCapFraction is the end-cap size as a fraction of the bar thickness.
const EndCapFraction = 0.8

// Point is a position in widget pixels (or terminal cells), y down.
type Point struct{ X, Y float64 }

// Pointer is a pointer position plus the input kind that produced it.
type Pointer struct {
	X, Y  float64
	Touch bool
}

func (p Pointer) Point() Point { return Point{X: p.X, Y: p.Y} }

// Rect is an axis-aligned rectangle; the right and bottom edges are inside.
type Rect struct{ X, Y, W, H float64 }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Orientation names the axis a drag is captured on.
type Orientation int

const (
	AxisNone Orientation = iota
	Horizontal
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "x"
	case Vertical:
		return "y"
	}
	return "none"
}

// Track is the geometry of one zoom bar.
type Track struct {
	Bounds Rect
	// Thickness sizes the end caps. Zero means the short side of Bounds.
	Thickness float64
}

// Horizontal reports whether the bar runs left to right.
func (t Track) Horizontal() bool { return t.Bounds.W > t.Bounds.H }

// Length is the long side of the bar.
func (t Track) Length() float64 { return math.Max(t.Bounds.W, t.Bounds.H) }

// EndCap is the size of each handle region. Touch pointers get twice as much.
func (t Track) EndCap(touch bool) float64 {
	th := t.Thickness
	if th <= 0 {
		th = math.Min(t.Bounds.W, t.Bounds.H)
	}
	c := EndCapFraction * th
	if touch {
		c *= 2
	}
	return c
}

// offset projects p onto the bar, measured from the end that shows the
// original minimum. Vertical bars grow upward.
func (t Track) offset(p Point) float64 {
	if t.Horizontal() {
		return p.X - t.Bounds.X
	}
	return t.Bounds.Y + t.Length() - p.Y
}

// Thumb returns the extent of the current window along the bar, measured
// the same way as offset.
func (t Track) Thumb(n Normalized) (lo, hi float64) {
	l, s0 := t.Length(), n.Span0()
	if s0 <= 0 {
		return 0, l
	}
	return l * (n.Min - n.Min0) / s0, l * (n.Max - n.Min0 + n.Step) / s0
}

// Cells returns the thumb extent in drawing order (left to right, or top to
// bottom), rounded to whole cells of a bar length cells long.
func (t Track) Cells(n Normalized) (start, end int) {
	lo, hi := t.Thumb(n)
	a, b := int(math.Round(lo)), int(math.Round(hi))
	if b <= a {
		b = a + 1
	}
	l := int(math.Round(t.Length()))
	if b > l {
		a, b = max(0, l-(b-a)), l
	}
	if t.Horizontal() {
		return a, b
	}
	return l - b, l - a
}

// Bar is one zoom bar and the axis it drives.
type Bar struct {
	Track Track
	Axis  Axis
}

// Pair is the two zoom bars of one graph. A bar with no scale is absent.
type Pair struct {
	X, Y  Bar
	Click TrackClick
}

func (p Pair) bar(o Orientation) (Bar, bool) {
	var b Bar
	switch o {
	case Horizontal:
		b = p.X
	case Vertical:
		b = p.Y
	default:
		return Bar{}, false
	}
	return b, b.Axis.Valid()
}
