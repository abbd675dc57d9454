// Package zoom turns pointer, wheel and button input into domain changes on
// a pair of scales.
//
// All operations run synchronously on the caller's goroutine and keep the
// live domain of every axis inside its original domain. State that outlives
// one event (DragLocation, Wheel) belongs to the caller, one per widget.
package zoom

import (
	"fmt"
	"math"

	"zoombar/internal/scale"
)

// Axis pairs a live scale with a copy of its original domain.
type Axis struct {
	Scale   scale.Scale
	Domain0 scale.Scale
}

// NewAxis captures s's current domain as the original domain.
func NewAxis(s scale.Scale) Axis {
	return Axis{Scale: s, Domain0: s.Copy()}
}

// Valid reports whether the axis has a scale to operate on.
func (a Axis) Valid() bool { return a.Scale != nil && a.Domain0 != nil }

// Normalized is a domain pair in numeric form. Ordinal axes use label
// indices and Step 1; continuous axes use domain values and Step 0.
type Normalized struct {
	Min0, Max0 float64
	Min, Max   float64
	Step       float64
}

// Span0 is the width of the original domain, counting the last band.
func (n Normalized) Span0() float64 { return n.Max0 - n.Min0 + n.Step }

// Width is the width of the current domain, counting the last band.
func (n Normalized) Width() float64 { return n.Max - n.Min + n.Step }

// Ordinal reports whether n came from an ordinal scale.
func (n Normalized) Ordinal() bool { return n.Step != 0 }

// Full reports whether the current domain covers the original one.
func (n Normalized) Full() bool { return n.Min <= n.Min0 && n.Max >= n.Max0 }

// MinWidth is the narrowest window a handle drag may leave.
func (n Normalized) MinWidth() float64 {
	w := n.Span0() / (2 * Granularity)
	if n.Ordinal() {
		return math.Max(1, math.Ceil(w))
	}
	return w
}

// Normalize converts the original and current domains to numeric form.
func Normalize(domain0, current scale.Scale) (Normalized, error) {
	switch c := current.(type) {
	case *scale.Continuous:
		d0, ok := domain0.(*scale.Continuous)
		if !ok {
			return Normalized{}, mismatch(fmt.Errorf("%w: continuous scale over %T", ErrDomainMismatch, domain0))
		}
		min0, max0 := d0.Domain()
		min, max := c.Domain()
		if err := scale.Validate(min0, max0); err != nil {
			return Normalized{}, err
		}
		if err := scale.Validate(min, max); err != nil {
			return Normalized{}, err
		}
		return Normalized{Min0: min0, Max0: max0, Min: min, Max: max}, nil
	case *scale.Ordinal:
		d0, ok := domain0.(*scale.Ordinal)
		if !ok {
			return Normalized{}, mismatch(fmt.Errorf("%w: ordinal scale over %T", ErrDomainMismatch, domain0))
		}
		min := d0.Index(c.First())
		if min < 0 {
			return Normalized{}, mismatch(fmt.Errorf("%w: label %q not in original domain", ErrDomainMismatch, c.First()))
		}
		max := d0.Index(c.Last())
		if max < 0 {
			return Normalized{}, mismatch(fmt.Errorf("%w: label %q not in original domain", ErrDomainMismatch, c.Last()))
		}
		if max-min+1 != c.Len() {
			return Normalized{}, mismatch(fmt.Errorf("%w: %s is not a contiguous slice", ErrDomainMismatch, c))
		}
		return Normalized{
			Min0: 0, Max0: float64(d0.Len() - 1),
			Min: float64(min), Max: float64(max),
			Step: 1,
		}, nil
	case nil:
		return Normalized{}, fmt.Errorf("%w: nil scale", ErrInvalidDomain)
	default:
		return Normalized{}, fmt.Errorf("%w: unsupported scale %T", ErrInvalidDomain, current)
	}
}

// Apply writes a normalized window back onto the axis. Ordinal axes take the
// slice of original labels from min to max inclusive.
func Apply(a Axis, min, max float64) error {
	if err := scale.Validate(min, max); err != nil {
		return err
	}
	switch s := a.Scale.(type) {
	case *scale.Continuous:
		return s.SetDomain(min, max)
	case *scale.Ordinal:
		d0, ok := a.Domain0.(*scale.Ordinal)
		if !ok {
			return mismatch(fmt.Errorf("%w: ordinal scale over %T", ErrDomainMismatch, a.Domain0))
		}
		labels := d0.Domain()
		i, j := int(math.Round(min)), int(math.Round(max))
		if i < 0 || j >= len(labels) || i > j {
			return fmt.Errorf("%w: slice [%d, %d] of %d labels", ErrInvalidDomain, i, j, len(labels))
		}
		return s.SetDomain(labels[i : j+1])
	default:
		return fmt.Errorf("%w: unsupported scale %T", ErrInvalidDomain, a.Scale)
	}
}

// Reset restores the axis to its original domain.
func Reset(a Axis) error {
	n, err := Normalize(a.Domain0, a.Domain0)
	if err != nil {
		return err
	}
	return Apply(a, n.Min0, n.Max0)
}
