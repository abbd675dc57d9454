package scale

import (
	"fmt"
	"strings"
)

// Ordinal assigns one equal-width band per label, in list order.
type Ordinal struct {
	labels  []string
	r0, r1  float64
	padding float64 // inner padding as a fraction of the step, [0, 1)
}

// NewOrdinal returns an ordinal scale over labels with range [0, 1].
// Labels must be non-empty and unique.
func NewOrdinal(labels []string) (*Ordinal, error) {
	s := &Ordinal{r0: 0, r1: 1}
	if err := s.SetDomain(labels); err != nil {
		return nil, err
	}
	return s, nil
}

func (*Ordinal) sealed() {}

// Domain returns a copy of the current labels.
func (s *Ordinal) Domain() []string { return append([]string(nil), s.labels...) }

// Len returns the number of labels in the current domain.
func (s *Ordinal) Len() int { return len(s.labels) }

// First and Last return the boundary labels of the current domain.
func (s *Ordinal) First() string { return s.labels[0] }
func (s *Ordinal) Last() string  { return s.labels[len(s.labels)-1] }

// SetDomain replaces the labels. Empty or duplicate lists are rejected.
func (s *Ordinal) SetDomain(labels []string) error {
	if len(labels) == 0 {
		return fmt.Errorf("%w: empty ordinal domain", ErrInvalidDomain)
	}
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			return fmt.Errorf("%w: duplicate label %q", ErrInvalidDomain, l)
		}
		seen[l] = true
	}
	s.labels = append([]string(nil), labels...)
	return nil
}

// Index returns the position of label in the current domain, or -1.
func (s *Ordinal) Index(label string) int {
	for i, l := range s.labels {
		if l == label {
			return i
		}
	}
	return -1
}

// SetPadding sets the gap between bands as a fraction of the step.
func (s *Ordinal) SetPadding(p float64) {
	if p < 0 {
		p = 0
	}
	if p >= 1 {
		p = 0.99
	}
	s.padding = p
}

func (s *Ordinal) Range() (float64, float64) { return s.r0, s.r1 }

func (s *Ordinal) SetRange(r0, r1 float64) { s.r0, s.r1 = r0, r1 }

func (s *Ordinal) Copy() Scale {
	c := *s
	c.labels = append([]string(nil), s.labels...)
	return &c
}

func (s *Ordinal) String() string {
	if len(s.labels) <= 4 {
		return "[" + strings.Join(s.labels, ", ") + "]"
	}
	return fmt.Sprintf("[%s .. %s] (%d)", s.First(), s.Last(), len(s.labels))
}

// Step is the signed range distance between the starts of adjacent bands.
func (s *Ordinal) Step() float64 {
	return (s.r1 - s.r0) / float64(len(s.labels))
}

// Bandwidth is the signed width of one band after padding.
func (s *Ordinal) Bandwidth() float64 {
	return s.Step() * (1 - s.padding)
}

// Map returns the range position where label's band starts.
func (s *Ordinal) Map(label string) (float64, bool) {
	i := s.Index(label)
	if i < 0 {
		return 0, false
	}
	step := s.Step()
	return s.r0 + float64(i)*step + step*s.padding/2, true
}

// Invert returns the label whose band contains px, clamped to the ends.
func (s *Ordinal) Invert(px float64) string {
	step := s.Step()
	if step == 0 {
		return s.labels[0]
	}
	i := int((px - s.r0) / step)
	if i < 0 {
		i = 0
	}
	if i >= len(s.labels) {
		i = len(s.labels) - 1
	}
	return s.labels[i]
}
