package scale

import (
	"fmt"
	"math"

	mscale "github.com/aclements/go-moremath/scale"
)

// Continuous is a numeric scale. Log scales change the mapping and the
// ticks, never the domain arithmetic.
type Continuous struct {
	min, max float64
	r0, r1   float64
	log      bool
}

// NewLinear returns a linear scale over [min, max] with range [0, 1].
func NewLinear(min, max float64) (*Continuous, error) {
	if err := Validate(min, max); err != nil {
		return nil, err
	}
	return &Continuous{min: min, max: max, r0: 0, r1: 1}, nil
}

// NewLog returns a base-10 logarithmic scale. Both bounds must be positive.
func NewLog(min, max float64) (*Continuous, error) {
	if err := Validate(min, max); err != nil {
		return nil, err
	}
	if min <= 0 {
		return nil, fmt.Errorf("%w: log scale needs positive bounds, got [%v, %v]", ErrInvalidDomain, min, max)
	}
	return &Continuous{min: min, max: max, r0: 0, r1: 1, log: true}, nil
}

func (*Continuous) sealed() {}

// Log reports whether the scale maps logarithmically.
func (s *Continuous) Log() bool { return s.log }

// Domain returns the current bounds.
func (s *Continuous) Domain() (min, max float64) { return s.min, s.max }

// SetDomain replaces the bounds. Invalid bounds leave the scale unchanged.
func (s *Continuous) SetDomain(min, max float64) error {
	if err := Validate(min, max); err != nil {
		return err
	}
	if s.log && min <= 0 {
		return fmt.Errorf("%w: log scale needs positive bounds, got [%v, %v]", ErrInvalidDomain, min, max)
	}
	s.min, s.max = min, max
	return nil
}

func (s *Continuous) Range() (float64, float64) { return s.r0, s.r1 }

func (s *Continuous) SetRange(r0, r1 float64) { s.r0, s.r1 = r0, r1 }

func (s *Continuous) Copy() Scale {
	c := *s
	return &c
}

func (s *Continuous) String() string {
	return fmt.Sprintf("[%.4g, %.4g]", s.min, s.max)
}

// fraction maps x onto [0, 1] over the domain (unclamped).
func (s *Continuous) fraction(x float64) float64 {
	if s.max == s.min {
		return 0.5
	}
	if s.log {
		l, err := mscale.NewLog(s.min, s.max, 10)
		if err != nil || x <= 0 {
			return math.NaN()
		}
		return l.Map(x)
	}
	return mscale.Linear{Min: s.min, Max: s.max}.Map(x)
}

// Map converts a domain value to a range position.
func (s *Continuous) Map(x float64) float64 {
	return s.r0 + s.fraction(x)*(s.r1-s.r0)
}

// Invert converts a range position back to a domain value.
func (s *Continuous) Invert(px float64) float64 {
	if s.r1 == s.r0 {
		return s.min
	}
	t := (px - s.r0) / (s.r1 - s.r0)
	if s.log {
		lo, hi := math.Log(s.min), math.Log(s.max)
		return math.Exp(lo + t*(hi-lo))
	}
	return s.min + t*(s.max-s.min)
}

// Ticks returns at most n major tick values inside the domain.
func (s *Continuous) Ticks(n int) []float64 {
	if n < 1 || s.max == s.min {
		return []float64{s.min}
	}
	o := mscale.TickOptions{Max: n}
	var major []float64
	if s.log {
		l, err := mscale.NewLog(s.min, s.max, 10)
		if err != nil {
			return nil
		}
		major, _ = l.Ticks(o)
	} else {
		major, _ = mscale.Linear{Min: s.min, Max: s.max}.Ticks(o)
	}
	out := major[:0]
	for _, t := range major {
		if t >= s.min && t <= s.max {
			out = append(out, t)
		}
	}
	return out
}
