package zoom

import (
	"testing"

	"zoombar/internal/scale"
)

// hbar is a 100 pixel horizontal bar, 4 pixels thick, at the origin.
var hbar = Track{Bounds: Rect{X: 0, Y: 0, W: 100, H: 4}}

// vbar is a 100 pixel vertical bar, 4 pixels thick, at the origin.
var vbar = Track{Bounds: Rect{X: 0, Y: 0, W: 4, H: 100}}

func xPair(a Axis) Pair { return Pair{X: Bar{Track: hbar, Axis: a}} }

func drag(t *testing.T, pair Pair, from, to Pointer) {
	t.Helper()
	loc, err := PointerDown(from, pair)
	if err != nil {
		t.Fatalf("PointerDown: %v", err)
	}
	if !loc.Active() {
		t.Fatalf("PointerDown at %+v missed the bar", from)
	}
	loc, err = PointerMoveOrUp(to, Up, pair, loc)
	if err != nil {
		t.Fatalf("PointerMoveOrUp: %v", err)
	}
	if loc.Active() {
		t.Fatalf("location still captured after up")
	}
}

func TestClassifyHandles(t *testing.T) {
	pair := xPair(linearAxis(t, 0, 100, 40, 60))
	cases := []struct {
		x    float64
		want Handle
	}{
		{41, HandleMin},
		{43, HandleMin},
		{50, HandleNone},
		{57, HandleMax},
		{60, HandleMax},
		{20, HandleNone},
		{80, HandleNone},
	}
	for _, c := range cases {
		loc, err := PointerDown(Pointer{X: c.x, Y: 2}, pair)
		if err != nil {
			t.Fatalf("PointerDown: %v", err)
		}
		if loc.Axis != Horizontal || loc.Handle != c.want {
			t.Fatalf("x=%v: got %s/%s, want x/%s", c.x, loc.Axis, loc.Handle, c.want)
		}
	}
}

func TestTouchDoublesEndCap(t *testing.T) {
	pair := xPair(linearAxis(t, 0, 100, 40, 60))
	loc, _ := PointerDown(Pointer{X: 45, Y: 2}, pair)
	if loc.Handle != HandleNone {
		t.Fatalf("mouse at 45 should grab the thumb, got %s", loc.Handle)
	}
	loc, _ = PointerDown(Pointer{X: 45, Y: 2, Touch: true}, pair)
	if loc.Handle != HandleMin {
		t.Fatalf("touch at 45 should grab the min handle, got %s", loc.Handle)
	}
}

func TestPointerDownMiss(t *testing.T) {
	pair := xPair(linearAxis(t, 0, 100, 40, 60))
	loc, err := PointerDown(Pointer{X: 50, Y: 30}, pair)
	if err != nil || loc.Active() {
		t.Fatalf("expected idle location, got %+v, %v", loc, err)
	}
}

func TestHandleExclusivity(t *testing.T) {
	for _, l := range []float64{7, 10, 50, 200} {
		tr := Track{Bounds: Rect{W: l, H: 4}}
		c := tr.EndCap(false)
		if l < 2*c {
			continue
		}
		for lo := 0.0; lo <= l; lo += l / 16 {
			for hi := lo; hi <= l; hi += l / 16 {
				n := Normalized{Min0: 0, Max0: l, Min: lo, Max: hi}
				tlo, thi := tr.Thumb(n)
				for u := 0.0; u <= l; u += 0.25 {
					h := classify(u, tr, n, false)
					inMax := u >= thi-c && u <= thi
					inMin := u >= tlo && u <= tlo+c
					if h == HandleMin && !inMin {
						t.Fatalf("u=%v classified min outside the min cap", u)
					}
					if h == HandleMax && (inMin || !inMax) {
						t.Fatalf("u=%v classified max inside the min cap", u)
					}
				}
			}
		}
	}
}

// Scenario: the min handle moves right by 10 domain units.
func TestDragMinHandle(t *testing.T) {
	a := linearAxis(t, 0, 100, 40, 60)
	drag(t, xPair(a), Pointer{X: 41, Y: 2}, Pointer{X: 51, Y: 2})
	if min, max := window(t, a); min != 50 || max != 60 {
		t.Fatalf("got [%v, %v], want [50, 60]", min, max)
	}
}

// Scenario: the min handle is pushed past the max handle.
func TestDragMinHandleStopsAtFloor(t *testing.T) {
	a := linearAxis(t, 0, 100, 40, 60)
	drag(t, xPair(a), Pointer{X: 41, Y: 2}, Pointer{X: 91, Y: 2})
	n, _ := Normalize(a.Domain0, a.Scale)
	if n.Max != 60 || n.Min != 60-n.MinWidth() {
		t.Fatalf("got [%v, %v], want [%v, 60]", n.Min, n.Max, 60-n.MinWidth())
	}
}

func TestDragMinHandleClampsAtOrigin(t *testing.T) {
	a := linearAxis(t, 0, 100, 40, 60)
	drag(t, xPair(a), Pointer{X: 41, Y: 2}, Pointer{X: -9, Y: 2})
	if min, max := window(t, a); min != 0 || max != 60 {
		t.Fatalf("got [%v, %v], want [0, 60]", min, max)
	}
}

func TestDragMaxHandle(t *testing.T) {
	a := linearAxis(t, 0, 100, 40, 60)
	drag(t, xPair(a), Pointer{X: 59, Y: 2}, Pointer{X: 69, Y: 2})
	if min, max := window(t, a); min != 40 || max != 70 {
		t.Fatalf("got [%v, %v], want [40, 70]", min, max)
	}
	drag(t, xPair(a), Pointer{X: 69, Y: 2}, Pointer{X: 0, Y: 2})
	n, _ := Normalize(a.Domain0, a.Scale)
	if n.Min != 40 || n.Max != 40+n.MinWidth() {
		t.Fatalf("got [%v, %v], want [40, %v]", n.Min, n.Max, 40+n.MinWidth())
	}
}

func TestThumbDragTranslates(t *testing.T) {
	a := linearAxis(t, 0, 100, 40, 60)
	pair := xPair(a)
	loc, _ := PointerDown(Pointer{X: 50, Y: 2}, pair)
	loc, err := PointerMoveOrUp(Pointer{X: 55, Y: 2}, Move, pair, loc)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if !loc.Moved || loc.Anchor.X != 55 {
		t.Fatalf("move did not advance the anchor: %+v", loc)
	}
	if min, max := window(t, a); min != 45 || max != 65 {
		t.Fatalf("after move got [%v, %v]", min, max)
	}
	// Releasing where the last move ended is not a click.
	loc, err = PointerMoveOrUp(Pointer{X: 55, Y: 2}, Up, pair, loc)
	if err != nil || loc.Active() {
		t.Fatalf("up: %+v, %v", loc, err)
	}
	if min, max := window(t, a); min != 45 || max != 65 {
		t.Fatalf("after up got [%v, %v]", min, max)
	}
}

func TestThumbDragClampsToExtent(t *testing.T) {
	a := linearAxis(t, 0, 100, 40, 60)
	drag(t, xPair(a), Pointer{X: 50, Y: 2}, Pointer{X: 100, Y: 2})
	if min, max := window(t, a); min != 80 || max != 100 {
		t.Fatalf("got [%v, %v], want [80, 100]", min, max)
	}
}

func TestIncrementalMovesDoNotSnap(t *testing.T) {
	a := linearAxis(t, 0, 100, 40, 60)
	pair := xPair(a)
	loc, _ := PointerDown(Pointer{X: 50, Y: 2}, pair)
	// Pushing past the right edge discards the excess.
	loc, _ = PointerMoveOrUp(Pointer{X: 100, Y: 2}, Move, pair, loc)
	// Coming back moves the window immediately.
	loc, _ = PointerMoveOrUp(Pointer{X: 90, Y: 2}, Move, pair, loc)
	if min, max := window(t, a); min != 70 || max != 90 {
		t.Fatalf("got [%v, %v], want [70, 90]", min, max)
	}
	_, _ = PointerMoveOrUp(Pointer{X: 90, Y: 2}, Up, pair, loc)
}

// Scenario: a click left of the thumb pages left by half a window.
func TestTrackClickPages(t *testing.T) {
	a := linearAxis(t, 0, 100, 40, 60)
	drag(t, xPair(a), Pointer{X: 20, Y: 2}, Pointer{X: 20, Y: 2})
	if min, max := window(t, a); min != 30 || max != 50 {
		t.Fatalf("got [%v, %v], want [30, 50]", min, max)
	}
	drag(t, xPair(a), Pointer{X: 90, Y: 2}, Pointer{X: 90, Y: 2})
	if min, max := window(t, a); min != 40 || max != 60 {
		t.Fatalf("got [%v, %v], want [40, 60]", min, max)
	}
}

func TestTrackClickPageClampsAtOrigin(t *testing.T) {
	a := linearAxis(t, 0, 100, 5, 25)
	drag(t, xPair(a), Pointer{X: 2, Y: 2}, Pointer{X: 2, Y: 2})
	if min, max := window(t, a); min != 0 || max != 20 {
		t.Fatalf("got [%v, %v], want [0, 20]", min, max)
	}
}

func TestTrackClickCenters(t *testing.T) {
	a := linearAxis(t, 0, 100, 40, 60)
	pair := xPair(a)
	pair.Click = TrackClickCenter
	drag(t, pair, Pointer{X: 20, Y: 2}, Pointer{X: 20, Y: 2})
	if min, max := window(t, a); min != 10 || max != 30 {
		t.Fatalf("got [%v, %v], want [10, 30]", min, max)
	}
}

func TestClickInsideThumbIsNoop(t *testing.T) {
	a := linearAxis(t, 0, 100, 40, 60)
	drag(t, xPair(a), Pointer{X: 50, Y: 2}, Pointer{X: 50, Y: 2})
	if min, max := window(t, a); min != 40 || max != 60 {
		t.Fatalf("got [%v, %v], want [40, 60]", min, max)
	}
}

// Scenario: an up event with no capture for this widget.
func TestOrphanedUpIsIgnored(t *testing.T) {
	a := linearAxis(t, 0, 100, 40, 60)
	pair := xPair(a)
	loc, _ := PointerDown(Pointer{X: 20, Y: 2}, pair)
	loc = Cancel(loc)
	if !IsOrphaned(loc) {
		t.Fatalf("cancelled location should be orphaned")
	}
	loc, err := PointerMoveOrUp(Pointer{X: 20, Y: 2}, Up, pair, loc)
	if err != nil || loc.Active() {
		t.Fatalf("orphaned up: %+v, %v", loc, err)
	}
	if _, err := PointerMoveOrUp(Pointer{X: 70, Y: 2}, Move, pair, DragLocation{}); err != nil {
		t.Fatalf("orphaned move: %v", err)
	}
	if min, max := window(t, a); min != 40 || max != 60 {
		t.Fatalf("got [%v, %v], want [40, 60]", min, max)
	}
}

func TestVerticalBarGrowsUpward(t *testing.T) {
	a := linearAxis(t, 0, 100, 40, 60)
	pair := Pair{Y: Bar{Track: vbar, Axis: a}}
	// The min handle sits at the bottom of the thumb, y=60.
	loc, _ := PointerDown(Pointer{X: 2, Y: 59}, pair)
	if loc.Axis != Vertical || loc.Handle != HandleMin {
		t.Fatalf("got %s/%s, want y/min", loc.Axis, loc.Handle)
	}
	if _, err := PointerMoveOrUp(Pointer{X: 2, Y: 49}, Up, pair, loc); err != nil {
		t.Fatalf("up: %v", err)
	}
	if min, max := window(t, a); min != 50 || max != 60 {
		t.Fatalf("got [%v, %v], want [50, 60]", min, max)
	}
	// A click below the thumb pages toward smaller values.
	drag(t, pair, Pointer{X: 2, Y: 90}, Pointer{X: 2, Y: 90})
	if min, max := window(t, a); min != 45 || max != 55 {
		t.Fatalf("got [%v, %v], want [45, 55]", min, max)
	}
}

func TestPairRoutesToTheHitBar(t *testing.T) {
	x := linearAxis(t, 0, 100, 40, 60)
	y := linearAxis(t, 0, 10, 0, 10)
	pair := Pair{
		X: Bar{Track: Track{Bounds: Rect{X: 10, Y: 110, W: 100, H: 4}}, Axis: x},
		Y: Bar{Track: Track{Bounds: Rect{X: 0, Y: 0, W: 4, H: 100}}, Axis: y},
	}
	loc, _ := PointerDown(Pointer{X: 2, Y: 50}, pair)
	if loc.Axis != Vertical {
		t.Fatalf("expected the y bar, got %s", loc.Axis)
	}
	loc, _ = PointerDown(Pointer{X: 60, Y: 112}, pair)
	if loc.Axis != Horizontal || loc.Handle != HandleNone {
		t.Fatalf("expected the x thumb, got %s/%s", loc.Axis, loc.Handle)
	}
}

func TestOrdinalThumbDragAccumulates(t *testing.T) {
	a := ordinalAxis(t, letters, 1, 3)
	pair := xPair(a)
	loc, _ := PointerDown(Pointer{X: 50, Y: 2}, pair)
	loc, _ = PointerMoveOrUp(Pointer{X: 55, Y: 2}, Move, pair, loc)
	if min, max := window(t, a); min != 1 || max != 3 {
		t.Fatalf("quarter band moved the window to [%v, %v]", min, max)
	}
	loc, _ = PointerMoveOrUp(Pointer{X: 62, Y: 2}, Move, pair, loc)
	if min, max := window(t, a); min != 2 || max != 4 {
		t.Fatalf("got [%v, %v], want [2, 4]", min, max)
	}
	if loc.Anchor.X != 70 {
		t.Fatalf("anchor = %v, want 70", loc.Anchor.X)
	}
	loc, _ = PointerMoveOrUp(Pointer{X: 70, Y: 2}, Up, pair, loc)
	if got := a.Scale.(*scale.Ordinal).Domain(); got[0] != "C" || got[2] != "E" {
		t.Fatalf("got %v, want C..E", got)
	}
}

func TestOrdinalMinHandleKeepsOneBand(t *testing.T) {
	a := ordinalAxis(t, letters, 1, 3)
	drag(t, xPair(a), Pointer{X: 21, Y: 2}, Pointer{X: 99, Y: 2})
	if min, max := window(t, a); min != 3 || max != 3 {
		t.Fatalf("got [%v, %v], want [3, 3]", min, max)
	}
}

func TestOrdinalTrackClickPages(t *testing.T) {
	a := ordinalAxis(t, letters, 1, 3)
	drag(t, xPair(a), Pointer{X: 10, Y: 2}, Pointer{X: 10, Y: 2})
	if min, max := window(t, a); min != 0 || max != 2 {
		t.Fatalf("got [%v, %v], want [0, 2]", min, max)
	}
}
