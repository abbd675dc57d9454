package zoom

import (
	"errors"

	"zoombar/internal/scale"
)

var (
	// ErrInvalidDomain rejects an update with non-finite or inverted bounds.
	// The scale keeps its previous domain.
	ErrInvalidDomain = scale.ErrInvalidDomain
	// ErrDomainMismatch means an ordinal scale's current labels are not a
	// contiguous slice of its original labels, or the two scales differ in kind.
	ErrDomainMismatch = errors.New("domain mismatch")
)

// Strict turns ErrDomainMismatch into a panic. Tests and --strict set it.
var Strict bool

func mismatch(err error) error {
	if Strict {
		panic(err)
	}
	return err
}

// IsOrphaned reports whether a move or up event with loc would be ignored.
// Such events are expected after a missed press and are not errors.
func IsOrphaned(loc DragLocation) bool { return !loc.Active() }
