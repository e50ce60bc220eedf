// SPDX-License-Identifier: EPL-2.0

package utils

// Clamp constrains v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// Clamp01 constrains v to the unit interval [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Min3 returns the smallest of three values.
func Min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}

	if c < m {
		m = c
	}

	return m
}
