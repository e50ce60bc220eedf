// SPDX-License-Identifier: EPL-2.0

package wave

import "math"

// Sequence is an ordered, read-only series of normalized amplitudes.
//
// Values are nominally in [0, 1]; NaN marks a missing sample that the
// reducer fills from neighboring data. The backing slice is aliased, not
// copied, and must not be mutated after construction.
//
// The *Sequence pointer is the caching identity: hand the same Sequence
// to repeated calls so the Cache can recognize it. Two sequences built
// from equal values are still distinct sources.
type Sequence struct {
	values []float64
}

// NewSequence wraps values in a Sequence. A nil or empty slice is a valid
// empty series.
func NewSequence(values []float64) *Sequence {
	return &Sequence{values: values}
}

// Len returns the number of samples, missing ones included. A nil
// Sequence has length 0.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}

	return len(s.values)
}

// At returns the sample at index i. The result is NaN for a missing
// sample.
func (s *Sequence) At(i int) float64 {
	return s.values[i]
}

// IsMissing reports whether the sample at index i is a gap.
func (s *Sequence) IsMissing(i int) bool {
	return math.IsNaN(s.values[i])
}

// Values exposes the backing slice. Callers must treat it as read-only.
func (s *Sequence) Values() []float64 {
	if s == nil {
		return nil
	}

	return s.values
}

// CountValid returns the number of non-missing samples.
func (s *Sequence) CountValid() int {
	if s == nil {
		return 0
	}

	n := 0
	for _, v := range s.values {
		if !math.IsNaN(v) {
			n++
		}
	}

	return n
}
