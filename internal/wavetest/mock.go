// Package wavetest generates amplitude sequences for tests.
package wavetest

import (
	"math"

	"github.com/ampviz/ampviz/wave"
)

// Generate builds a sequence of n samples where shape maps a sample
// index to its amplitude. Return NaN from shape to mark a missing
// sample.
func Generate(n int, shape func(i int) float64) *wave.Sequence {
	values := make([]float64, n)
	for i := range values {
		values[i] = shape(i)
	}

	return wave.NewSequence(values)
}

// SineSequence returns n samples of a rectified sine envelope in [0, 1]
// completing the given number of cycles across the series.
func SineSequence(n int, cycles float64) *wave.Sequence {
	return Generate(n, func(i int) float64 {
		t := float64(i) / float64(n)
		return math.Abs(math.Sin(2 * math.Pi * cycles * t))
	})
}

// ConstantSequence returns n samples all holding value.
func ConstantSequence(n int, value float64) *wave.Sequence {
	return Generate(n, func(int) float64 {
		return value
	})
}

// RampSequence returns n samples rising linearly from 0 toward 1.
func RampSequence(n int) *wave.Sequence {
	if n <= 1 {
		return Generate(n, func(int) float64 { return 0 })
	}

	return Generate(n, func(i int) float64 {
		return float64(i) / float64(n-1)
	})
}

// GappySequence returns n samples of value with every stride-th sample
// missing (NaN). A stride below 2 marks every sample missing.
func GappySequence(n int, stride int, value float64) *wave.Sequence {
	return Generate(n, func(i int) float64 {
		if stride < 2 || i%stride == 0 {
			return math.NaN()
		}
		return value
	})
}
