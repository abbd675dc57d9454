package zoom

import (
	"fmt"
	"math"
)

// Direction selects zoom in or zoom out.
type Direction int

const (
	In Direction = iota
	Out
)

func (d Direction) String() string {
	if d == In {
		return "in"
	}
	return "out"
}

// Granularity sets the zoom step: each zoom-in click trims 1/Granularity of
// the window from both sides.
const Granularity = 8

// Zoom2D shrinks (In) or grows (Out) both axes around their current centers.
// Both windows are computed before either scale changes, so an error leaves
// both axes untouched.
func Zoom2D(dir Direction, x, y Axis) error {
	xmin, xmax, err := zoomAxis(dir, x)
	if err != nil {
		return fmt.Errorf("zoom %s x: %w", dir, err)
	}
	ymin, ymax, err := zoomAxis(dir, y)
	if err != nil {
		return fmt.Errorf("zoom %s y: %w", dir, err)
	}
	if err := Apply(x, xmin, xmax); err != nil {
		return fmt.Errorf("zoom %s x: %w", dir, err)
	}
	if err := Apply(y, ymin, ymax); err != nil {
		return fmt.Errorf("zoom %s y: %w", dir, err)
	}
	return nil
}

// Zoom1D zooms a single axis.
func Zoom1D(dir Direction, a Axis) error {
	min, max, err := zoomAxis(dir, a)
	if err != nil {
		return fmt.Errorf("zoom %s: %w", dir, err)
	}
	return Apply(a, min, max)
}

func zoomAxis(dir Direction, a Axis) (float64, float64, error) {
	n, err := Normalize(a.Domain0, a.Scale)
	if err != nil {
		return 0, 0, err
	}
	const d = float64(Granularity)
	w := n.Width()
	var lo, hi float64
	switch dir {
	case In:
		// The floor keeps at least 1/d of the original span, centered on
		// the current window.
		half := n.Span0() / (2 * d)
		lo = math.Min((n.Min+n.Max+n.Step)/2-half, n.Min+w/d)
		hi = math.Max((n.Min+n.Max-n.Step)/2+half, n.Max-w/d)
		lo = math.Max(lo, n.Min)
		hi = math.Min(hi, n.Max)
		if n.Ordinal() {
			lo, hi = math.Ceil(lo), math.Floor(hi)
			if lo > hi {
				lo, hi = n.Min, n.Min
			}
		}
	case Out:
		lo = math.Max(n.Min0, n.Min-w/(d-2))
		hi = math.Min(n.Max0, n.Max+w/(d-2))
		if n.Ordinal() {
			lo, hi = math.Floor(lo), math.Ceil(hi)
			if hi < lo {
				lo, hi = n.Max, n.Max
			}
		}
	default:
		return 0, 0, fmt.Errorf("unknown zoom direction %d", dir)
	}
	lo, hi = ClampWindow(lo, hi, n.Min0, n.Max0)
	return lo, hi, nil
}

// PanFraction is how much of the window one arrow key press moves.
const PanFraction = 0.1

// Pan translates the window by frac of its width, like a thumb drag. Ordinal
// windows move by at least one band.
func Pan(a Axis, frac float64) error {
	n, err := Normalize(a.Domain0, a.Scale)
	if err != nil {
		return fmt.Errorf("pan: %w", err)
	}
	d := frac * n.Width()
	if n.Ordinal() && d != 0 {
		d = math.Copysign(math.Max(1, math.Round(math.Abs(d))), d)
	}
	d = clampShift(d, n)
	if d == 0 {
		return nil
	}
	lo, hi := n.contain(n.Min+d, n.Max+d)
	return Apply(a, lo, hi)
}
