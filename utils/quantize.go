package utils

// Quantize maps a normalized amplitude to an integer level in [0, steps].
func Quantize(v float64, steps int) int {
	// Clamp and scale
	if v > 1 {
		v = 1
	} else if v < 0 {
		v = 0
	}

	// Round half up so 0.5 of a step lands on the higher level
	return int(v*float64(steps) + 0.5)
}
