// Package scale maps a data-space domain onto a pixel-space range.
//
// A Scale is either Continuous (a numeric interval, linear or logarithmic)
// or Ordinal (an ordered list of unique category labels, one equal-width
// band per label). The zoom package narrows and widens scale domains; the
// renderer only reads them.
package scale

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDomain reports non-finite, inverted or otherwise unusable bounds.
var ErrInvalidDomain = errors.New("invalid domain")

// Scale is implemented by *Continuous and *Ordinal only.
type Scale interface {
	// Range returns the pixel interval the domain is mapped onto.
	Range() (r0, r1 float64)
	SetRange(r0, r1 float64)
	// Copy returns an independent scale with the same domain and range.
	Copy() Scale
	// String renders the domain for logs and the status bar.
	String() string

	sealed()
}

// IsOrdinal reports whether s is an ordinal scale.
func IsOrdinal(s Scale) bool {
	_, ok := s.(*Ordinal)
	return ok
}

// Validate rejects non-finite or inverted continuous bounds.
func Validate(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return fmt.Errorf("%w: non-finite bounds [%v, %v]", ErrInvalidDomain, min, max)
	}
	if min > max {
		return fmt.Errorf("%w: inverted bounds [%v, %v]", ErrInvalidDomain, min, max)
	}
	return nil
}
