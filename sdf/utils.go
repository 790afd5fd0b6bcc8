package sdf

import (
	"math"
)

const (
	pi        = math.Pi
	tau       = 2 * pi
	tolerance = 1e-9
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// EqualFloat64 reports whether a and b differ by at most tol.
func EqualFloat64(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

type emptier interface {
	isEmpty() bool
}

// isEmpty reports whether s is known to contain no points.
func isEmpty(s any) bool {
	e, ok := s.(emptier)
	return ok && e.isEmpty()
}

// IsEmpty reports whether the SDF2 or SDF3 s is known to contain no points.
func IsEmpty(s any) bool { return isEmpty(s) }

// WithConvexity sets the convexity hint of extrusions and revolutions
// and returns s. Other shapes are returned unchanged.
func WithConvexity[T any](s T, n int) T {
	if c, ok := any(s).(interface{ SetConvexity(int) }); ok {
		c.SetConvexity(n)
	}
	return s
}
