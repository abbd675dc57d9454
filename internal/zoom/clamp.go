package zoom

import "math"

// Clamp limits v to [lo, hi]. lo wins when the bounds cross.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampWindow fits [min, max] inside [min0, max0]. A window wider than the
// extent becomes the extent; otherwise an edge that sticks out translates
// the whole window back in, keeping its width.
func ClampWindow(min, max, min0, max0 float64) (float64, float64) {
	if max-min >= max0-min0 {
		return min0, max0
	}
	if min < min0 {
		return min0, math.Min(max+(min0-min), max0)
	}
	if max > max0 {
		return math.Max(min-(max-max0), min0), max0
	}
	return min, max
}

// clampShift limits a translation so the shifted window stays in the extent.
func clampShift(delta float64, n Normalized) float64 {
	return Clamp(delta, n.Min0-n.Min, n.Max0-n.Max)
}

// contain pins a computed window to the extent and keeps it ordered. It
// only absorbs rounding error left by the clamps above.
func (n Normalized) contain(lo, hi float64) (float64, float64) {
	lo = math.Max(lo, n.Min0)
	hi = math.Min(hi, n.Max0)
	if lo > hi {
		lo = hi
	}
	return lo, hi
}
