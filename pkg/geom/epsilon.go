package geom

import "math"

// Epsilon is the tolerance used by the sweep and the clipping code.
const Epsilon = 1e-9

func EqualWithEpsilon(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func LessThanWithEpsilon(a, b float64) bool {
	return b-a > Epsilon
}

func GreaterThanWithEpsilon(a, b float64) bool {
	return a-b > Epsilon
}
