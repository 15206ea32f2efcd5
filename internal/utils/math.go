package utils

import "math"

// Lerp interpolates linearly between from and to.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Wrap folds x into [0, width).
func Wrap(x, width float64) float64 {
	if width <= 0 {
		return 0
	}
	x = math.Mod(x, width)
	if x < 0 {
		x += width
	}
	return x
}
