// SPDX-License-Identifier: EPL-2.0

package wave

import "math"

// Reduce downsamples src to exactly segments values by window averaging.
//
// Output index i covers the half-open source window
// [i*len/segments, (i+1)*len/segments). The windows are contiguous,
// non-overlapping, and together span the whole source, so no sample is
// dropped or counted twice. Each output is the arithmetic mean of the
// valid (non-NaN) values in its window, accumulated left to right.
//
// A window that contains no valid value falls back to its nearest valid
// neighbors: scanning backward from the window start and forward from the
// window end, averaging the two when both exist, taking the single one
// otherwise. When the source holds no valid value at all the output is 0.
//
// segments <= 0 yields an empty result. An empty or nil source yields all
// zeros. When every valid input lies in [0, 1], so does every output.
func Reduce(segments int, src *Sequence) []float64 {
	if segments <= 0 {
		return nil
	}

	out := make([]float64, segments)

	n := src.Len()
	if n == 0 {
		return out
	}

	values := src.Values()

	for i := range segments {
		start := i * n / segments
		end := (i + 1) * n / segments

		sum := 0.0
		count := 0
		for j := start; j < end; j++ {
			if v := values[j]; !math.IsNaN(v) {
				sum += v
				count++
			}
		}

		if count > 0 {
			out[i] = sum / float64(count)
			continue
		}

		out[i] = nearestValid(values, start, end)
	}

	return out
}

// nearestValid resolves a window without valid samples: the nearest valid
// value before start averaged with the nearest one at or after end.
func nearestValid(values []float64, start, end int) float64 {
	var before, after float64
	hasBefore, hasAfter := false, false

	for j := start - 1; j >= 0; j-- {
		if !math.IsNaN(values[j]) {
			before, hasBefore = values[j], true
			break
		}
	}

	for j := end; j < len(values); j++ {
		if !math.IsNaN(values[j]) {
			after, hasAfter = values[j], true
			break
		}
	}

	switch {
	case hasBefore && hasAfter:
		return (before + after) / 2
	case hasBefore:
		return before
	case hasAfter:
		return after
	default:
		return 0
	}
}
