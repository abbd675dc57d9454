package zoom

import (
	"errors"
	"math/rand"
	"testing"

	"zoombar/internal/scale"
)

func rangedLinear(t *testing.T, min0, max0, r0, r1 float64) Axis {
	t.Helper()
	a := linearAxis(t, min0, max0, min0, max0)
	a.Scale.SetRange(r0, r1)
	return a
}

func TestWheelZoomAboutPointer(t *testing.T) {
	x := rangedLinear(t, 0, 100, 0, 100)
	w := NewWheel(x, Axis{})
	g := Gesture{Transform: w.Transform().ScaleAt(2, Point{X: 50}, 0, 0)}
	if err := w.OnGesture(g, Route{X: true}, x, Axis{}); err != nil {
		t.Fatalf("OnGesture: %v", err)
	}
	if min, max := window(t, x); min != 25 || max != 75 {
		t.Fatalf("got [%v, %v], want [25, 75]", min, max)
	}
	// Same K: a pan. Content moves right, the window moves left.
	g = Gesture{Transform: w.Transform().Translate(10, 0)}
	if err := w.OnGesture(g, Route{X: true}, x, Axis{}); err != nil {
		t.Fatalf("OnGesture: %v", err)
	}
	if min, max := window(t, x); min != 20 || max != 70 {
		t.Fatalf("got [%v, %v], want [20, 70]", min, max)
	}
}

func TestWheelZoomOutClampsToExtent(t *testing.T) {
	x := rangedLinear(t, 0, 100, 0, 100)
	w := NewWheel(x, Axis{})
	g := Gesture{Transform: w.Transform().ScaleAt(0.5, Point{X: 10}, 0, 0)}
	if err := w.OnGesture(g, Route{X: true}, x, Axis{}); err != nil {
		t.Fatalf("OnGesture: %v", err)
	}
	if min, max := window(t, x); min != 0 || max != 100 {
		t.Fatalf("got [%v, %v], want [0, 100]", min, max)
	}
}

func TestWheelRebaseContinuesFromDrag(t *testing.T) {
	x := rangedLinear(t, 0, 100, 0, 100)
	w := NewWheel(x, Axis{})
	if err := Apply(x, 40, 60); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	w.Rebase(x, Axis{})
	g := Gesture{Transform: w.Transform().ScaleAt(2, Point{X: 50}, 0, 0)}
	if err := w.OnGesture(g, Route{X: true}, x, Axis{}); err != nil {
		t.Fatalf("OnGesture: %v", err)
	}
	if min, max := window(t, x); min != 45 || max != 55 {
		t.Fatalf("got [%v, %v], want [45, 55]", min, max)
	}
}

func TestWheelRouteLeavesOtherAxis(t *testing.T) {
	x := rangedLinear(t, 0, 100, 0, 100)
	y := rangedLinear(t, 0, 10, 100, 0)
	w := NewWheel(x, y)
	g := Gesture{Transform: w.Transform().ScaleAt(2, Point{X: 50, Y: 50}, 0, 0)}
	if err := w.OnGesture(g, Route{Y: true}, x, y); err != nil {
		t.Fatalf("OnGesture: %v", err)
	}
	if min, max := window(t, x); min != 0 || max != 100 {
		t.Fatalf("x changed to [%v, %v]", min, max)
	}
	if min, max := window(t, y); min != 2.5 || max != 7.5 {
		t.Fatalf("y = [%v, %v], want [2.5, 7.5]", min, max)
	}
}

func TestWheelOrdinal(t *testing.T) {
	labels := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	s, _ := scale.NewOrdinal(labels)
	s.SetRange(0, 100)
	x := NewAxis(s)
	w := NewWheel(x, Axis{})
	g := Gesture{Transform: w.Transform().ScaleAt(2, Point{X: 50}, 0, 0)}
	if err := w.OnGesture(g, Route{X: true}, x, Axis{}); err != nil {
		t.Fatalf("OnGesture: %v", err)
	}
	if min, max := window(t, x); min != 3 || max != 7 {
		t.Fatalf("got [%v, %v], want [3, 7]", min, max)
	}
}

func TestWheelOrdinalSmallPansAccumulate(t *testing.T) {
	s, _ := scale.NewOrdinal([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"})
	s.SetRange(0, 60)
	x := NewAxis(s)
	if err := Apply(x, 0, 2); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// Three bands over 60 pixels: 20 pixels per band.
	w := NewWheel(x, Axis{})
	for i := 0; i < 20; i++ {
		g := Gesture{Transform: w.Transform().Translate(-2, 0)}
		if err := w.OnGesture(g, Route{X: true}, x, Axis{}); err != nil {
			t.Fatalf("pan %d: %v", i, err)
		}
	}
	if min, max := window(t, x); min != 2 || max != 4 {
		t.Fatalf("after 40 pixels of pans got [%v, %v], want [2, 4]", min, max)
	}
}

func TestWheelZoomOutStopsAtFullExtent(t *testing.T) {
	x := rangedLinear(t, 0, 100, 0, 100)
	w := NewWheel(x, Axis{})
	p := Point{X: 50}
	for i := 0; i < 10; i++ {
		g := Gesture{Pointer: p, Transform: w.Transform().ScaleAt(1/1.25, p, 1.0/64, 64)}
		if err := w.OnGesture(g, Route{X: true}, x, Axis{}); err != nil {
			t.Fatalf("zoom out %d: %v", i, err)
		}
	}
	if k := w.Transform().K; k != 1 {
		t.Fatalf("K = %v after zooming out past the extent, want 1", k)
	}
	g := Gesture{Pointer: p, Transform: w.Transform().ScaleAt(1.25, p, 1.0/64, 64)}
	if err := w.OnGesture(g, Route{X: true}, x, Axis{}); err != nil {
		t.Fatalf("zoom in: %v", err)
	}
	if min, max := window(t, x); !near(min, 10) || !near(max, 90) {
		t.Fatalf("one zoom-in tick gave [%v, %v], want [10, 90]", min, max)
	}
}

func TestWheelScaleExtent(t *testing.T) {
	tr := Identity
	for i := 0; i < 10; i++ {
		tr = tr.ScaleAt(2, Point{X: 5, Y: 5}, 0.5, 4)
	}
	if tr.K != 4 {
		t.Fatalf("K = %v, want 4", tr.K)
	}
}

func TestWheelRejectsBadTransform(t *testing.T) {
	x := rangedLinear(t, 0, 100, 0, 100)
	w := NewWheel(x, Axis{})
	err := w.OnGesture(Gesture{Transform: Transform{K: 0}}, Route{X: true}, x, Axis{})
	if !errors.Is(err, ErrInvalidDomain) {
		t.Fatalf("expected ErrInvalidDomain, got %v", err)
	}
}

func TestRouteGesture(t *testing.T) {
	l := Layout{
		Width: 100, Height: 50,
		Margin:  Insets{Bottom: 5, Left: 8},
		Padding: Insets{Top: 1, Right: 2},
	}
	cases := []struct {
		p    Point
		want Route
	}{
		{Point{X: 50, Y: 47}, Route{X: true}},
		{Point{X: 4, Y: 20}, Route{Y: true}},
		{Point{X: 50, Y: 20}, Route{X: true, Y: true}},
		{Point{X: 99, Y: 20}, Route{}},
		{Point{X: 50, Y: 0}, Route{}},
	}
	for _, c := range cases {
		if got := RouteGesture(c.p, l); got != c.want {
			t.Fatalf("RouteGesture(%+v) = %+v, want %+v", c.p, got, c.want)
		}
	}
}

// Random drags, clicks, button zooms and wheel gestures never leave the
// live window outside the original domain.
func TestContainmentUnderRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	x := rangedLinear(t, -50, 50, 0, 100)
	ys, _ := scale.NewOrdinal([]string{"a", "b", "c", "d", "e", "f", "g", "h"})
	ys.SetRange(100, 0)
	y := NewAxis(ys)
	pair := Pair{
		X: Bar{Track: Track{Bounds: Rect{X: 0, Y: 100, W: 100, H: 4}}, Axis: x},
		Y: Bar{Track: Track{Bounds: Rect{X: -4, Y: 0, W: 4, H: 100}}, Axis: y},
	}
	w := NewWheel(x, y)
	var loc DragLocation
	for i := 0; i < 5000; i++ {
		p := Pointer{X: rng.Float64()*140 - 20, Y: rng.Float64()*140 - 20}
		var err error
		switch rng.Intn(6) {
		case 0:
			loc, err = PointerDown(p, pair)
			if rng.Intn(2) == 0 {
				// Press on the bar itself so drags actually happen.
				loc, err = PointerDown(Pointer{X: rng.Float64() * 100, Y: 102}, pair)
			}
		case 1:
			loc, err = PointerMoveOrUp(p, Move, pair, loc)
		case 2:
			loc, err = PointerMoveOrUp(p, Up, pair, loc)
			w.Rebase(x, y)
		case 3:
			err = Zoom2D(Direction(rng.Intn(2)), x, y)
			w.Rebase(x, y)
		case 4:
			k := 0.5 + rng.Float64()
			g := Gesture{Transform: w.Transform().ScaleAt(k, p.Point(), 0.25, 8)}
			err = w.OnGesture(g, Route{X: true, Y: true}, x, y)
		case 5:
			g := Gesture{Transform: w.Transform().Translate(rng.Float64()*20-10, rng.Float64()*20-10)}
			err = w.OnGesture(g, Route{X: true, Y: true}, x, y)
		}
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		for _, a := range []Axis{x, y} {
			n, err := Normalize(a.Domain0, a.Scale)
			if err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
			if n.Min < n.Min0 || n.Min > n.Max || n.Max > n.Max0 {
				t.Fatalf("step %d: window %+v escaped its extent", i, n)
			}
		}
	}
}
