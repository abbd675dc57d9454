package zoom

import (
	"fmt"
	"math"

	"zoombar/internal/scale"
)

// Transform is a cumulative zoom transform: a reference pixel q is shown at
// K*q + (X, Y).
type Transform struct {
	K, X, Y float64
}

// Identity is the transform at the start of a gesture series.
var Identity = Transform{K: 1}

// ScaleAt multiplies K by k about p, keeping p fixed on screen. The result
// K is limited to [minK, maxK] when maxK > 0.
func (t Transform) ScaleAt(k float64, p Point, minK, maxK float64) Transform {
	k1 := t.K * k
	if maxK > 0 {
		k1 = Clamp(k1, minK, maxK)
	}
	return Transform{
		K: k1,
		X: p.X - (p.X-t.X)*k1/t.K,
		Y: p.Y - (p.Y-t.Y)*k1/t.K,
	}
}

// Translate moves the transform by (dx, dy) screen pixels.
func (t Transform) Translate(dx, dy float64) Transform {
	t.X += dx
	t.Y += dy
	return t
}

func (t Transform) valid() bool {
	return t.K > 0 && !math.IsInf(t.K, 0) && !math.IsNaN(t.X) && !math.IsNaN(t.Y) &&
		!math.IsInf(t.X, 0) && !math.IsInf(t.Y, 0)
}

// Gesture is one wheel or pinch event.
type Gesture struct {
	Pointer   Point
	Transform Transform
}

// Route says which axes a gesture drives.
type Route struct{ X, Y bool }

// Insets are per-side distances in pixels.
type Insets struct{ Top, Right, Bottom, Left float64 }

// Layout is the outer geometry of a graph widget.
type Layout struct {
	Width, Height float64
	Margin        Insets
	Padding       Insets
}

// RouteGesture sends gestures over the bottom margin to X, over the left
// margin to Y, and over the plot area to both.
func RouteGesture(p Point, l Layout) Route {
	switch {
	case p.Y >= l.Height-l.Margin.Bottom:
		return Route{X: true}
	case p.X <= l.Margin.Left:
		return Route{Y: true}
	case p.X <= l.Width-l.Padding.Right && p.Y >= l.Padding.Top:
		return Route{X: true, Y: true}
	}
	return Route{}
}

// Wheel derives live domains from reference copies of both scales and the
// gesture's cumulative transform, so repeated wheel ticks do not accumulate
// rounding error.
type Wheel struct {
	refX, refY scale.Scale
	prev       Transform
	// Pan pixels not yet worth a whole band on an ordinal axis.
	carryX, carryY float64
}

// NewWheel snapshots x and y as the reference.
func NewWheel(x, y Axis) *Wheel {
	w := &Wheel{}
	w.Rebase(x, y)
	return w
}

// Rebase takes fresh reference copies and restarts the transform at
// Identity. Call it after any change that did not come from the wheel.
func (w *Wheel) Rebase(x, y Axis) {
	w.refX, w.refY = nil, nil
	if x.Valid() {
		w.refX = x.Scale.Copy()
	}
	if y.Valid() {
		w.refY = y.Scale.Copy()
	}
	w.prev = Identity
	w.carryX, w.carryY = 0, 0
}

// Transform returns the transform of the last gesture applied.
func (w *Wheel) Transform() Transform { return w.prev }

// OnGesture applies g to the routed axes. A gesture with the same K as the
// previous one pans the live window; otherwise the reference is rescaled.
// K never drops below the value at which every routed axis already shows
// its whole extent. Both candidates are computed before either axis changes.
func (w *Wheel) OnGesture(g Gesture, route Route, x, y Axis) error {
	tr := g.Transform
	if !tr.valid() {
		return fmt.Errorf("%w: wheel transform %+v", ErrInvalidDomain, tr)
	}
	if kf := w.minK(route, x, y); tr.K < kf {
		if kf == w.prev.K {
			tr = w.prev
		} else {
			tr = w.prev.ScaleAt(kf/w.prev.K, g.Pointer, 0, 0)
		}
	}
	pan := tr.K/w.prev.K == 1

	type update struct {
		axis   Axis
		lo, hi float64
		skip   bool
		carry  *float64
		rest   float64
	}
	var ups []update
	if route.X && x.Valid() && w.refX != nil {
		c, err := w.candidate(x, w.refX, pan, w.prev.X, tr.X, tr.K, w.carryX)
		if err != nil {
			return fmt.Errorf("wheel x: %w", err)
		}
		ups = append(ups, update{x, c.lo, c.hi, c.skip, &w.carryX, c.carry})
	}
	if route.Y && y.Valid() && w.refY != nil {
		c, err := w.candidate(y, w.refY, pan, w.prev.Y, tr.Y, tr.K, w.carryY)
		if err != nil {
			return fmt.Errorf("wheel y: %w", err)
		}
		ups = append(ups, update{y, c.lo, c.hi, c.skip, &w.carryY, c.carry})
	}
	for _, u := range ups {
		*u.carry = u.rest
		if u.skip {
			continue
		}
		if err := Apply(u.axis, u.lo, u.hi); err != nil {
			return fmt.Errorf("wheel: %w", err)
		}
	}
	w.prev = tr
	return nil
}

// minK is the smallest useful K: below it the reference-derived window of
// every routed axis covers its original extent. Zero when nothing is routed.
func (w *Wheel) minK(route Route, x, y Axis) float64 {
	k := math.Inf(1)
	if route.X && x.Valid() && w.refX != nil {
		k = math.Min(k, fillK(x, w.refX))
	}
	if route.Y && y.Valid() && w.refY != nil {
		k = math.Min(k, fillK(y, w.refY))
	}
	if math.IsInf(k, 1) {
		return 0
	}
	return k
}

// fillK is the K at which ref, scaled about any point, spans the extent of a.
func fillK(a Axis, ref scale.Scale) float64 {
	if c, ok := ref.(*scale.Continuous); ok && c.Log() {
		d0, ok := a.Domain0.(*scale.Continuous)
		if !ok {
			return 0
		}
		lo, hi := c.Domain()
		lo0, hi0 := d0.Domain()
		if lo <= 0 || lo0 <= 0 || hi0 == lo0 {
			return 0
		}
		return math.Log(hi/lo) / math.Log(hi0/lo0)
	}
	rn, err := Normalize(a.Domain0, ref)
	if err != nil || rn.Span0() <= 0 {
		return 0
	}
	return rn.Width() / rn.Span0()
}

type wheelCandidate struct {
	lo, hi float64
	skip   bool
	carry  float64
}

func (w *Wheel) candidate(a Axis, ref scale.Scale, pan bool, t0, t, k, carry float64) (wheelCandidate, error) {
	skip := wheelCandidate{skip: true}
	n, err := Normalize(a.Domain0, a.Scale)
	if err != nil {
		return skip, err
	}
	if pan {
		r0, r1 := a.Scale.Range()
		if r1 == r0 {
			return skip, nil
		}
		px := t0 - t
		d := n.Width() / (r1 - r0) * px
		var rest float64
		if n.Ordinal() {
			// Whole bands move; the remainder waits for the next gesture.
			px += carry
			d = math.Round(n.Width() / (r1 - r0) * px)
			rest = px - d*(r1-r0)/n.Width()
		}
		d = clampShift(d, n)
		if d == 0 {
			return wheelCandidate{skip: true, carry: rest}, nil
		}
		lo, hi := n.contain(n.Min+d, n.Max+d)
		return wheelCandidate{lo: lo, hi: hi, carry: rest}, nil
	}

	var lo, hi float64
	r0, r1 := ref.Range()
	q0, q1 := (r0-t)/k, (r1-t)/k
	switch rs := ref.(type) {
	case *scale.Continuous:
		lo, hi = rs.Invert(q0), rs.Invert(q1)
		if lo > hi {
			lo, hi = hi, lo
		}
	case *scale.Ordinal:
		rn, err := Normalize(a.Domain0, rs)
		if err != nil {
			return skip, err
		}
		if r1 == r0 {
			return skip, nil
		}
		edge := func(q float64) float64 {
			return rn.Min + (q-r0)/(r1-r0)*rn.Width()
		}
		lo = math.Round(edge(q0))
		hi = math.Round(edge(q1)) - 1
		if hi < lo {
			hi = lo
		}
	default:
		return skip, fmt.Errorf("%w: unsupported scale %T", ErrInvalidDomain, ref)
	}
	lo, hi = ClampWindow(lo, hi, n.Min0, n.Max0)
	return wheelCandidate{lo: lo, hi: hi}, nil
}
