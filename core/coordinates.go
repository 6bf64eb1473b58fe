package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DegreesToRadians converts degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// RadiansToDegrees converts radians to degrees
func RadiansToDegrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// Clamp limits x to the closed range [low, high]
func Clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}
