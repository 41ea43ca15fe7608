package gamekit

import "math"

// Step is a function f with f(0) = 0 and f(1) = 1, used to reshape the
// parameter of a linear interpolation for smoother motion:
//
//	p := a.Lerp(b, CubicStep(t))
//
// Step functions are pure and total: inputs outside [0, 1] are neither
// validated nor clamped, and the defining properties only hold on [0, 1].
type Step[T Float] func(T) T

// LinearStep is the identity step: f(t) = t.
func LinearStep[T Float](t T) T {
	return t
}

// CubicStep is the smoothstep function: f(t) = -2t³ + 3t².
// Its first derivative is zero at both endpoints.
func CubicStep[T Float](t T) T {
	return (-2*t + 3) * t * t
}

// QuinticStep is the smootherstep function: f(t) = 6t⁵ - 15t⁴ + 10t³.
// Its first and second derivatives are zero at both endpoints.
func QuinticStep[T Float](t T) T {
	return ((6*t-15)*t + 10) * t * t * t
}

// CosineStep is the cosine step: f(t) = (1 - cos(πt)) / 2.
func CosineStep[T Float](t T) T {
	return T((1 - math.Cos(Pi*float64(t))) / 2)
}
