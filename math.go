package gamekit

import "math"

// Float is the constraint satisfied by the built-in floating-point types.
type Float interface {
	~float32 | ~float64
}

// Integer is the constraint satisfied by the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is the constraint satisfied by scalar types that can represent
// negative values.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Number is the constraint satisfied by any numeric scalar type.
type Number interface {
	Integer | Float
}

// Mathematical constants. They are untyped so that T(Pi) instantiates at
// full precision for any floating-point type.
const (
	// Pi is the circle constant π.
	Pi = 3.14159265358979323846264338327950288

	// Pi2 is π/2.
	Pi2 = Pi / 2

	// Pi3 is π/3.
	Pi3 = Pi / 3

	// Pi4 is π/4.
	Pi4 = Pi / 4

	// Pi6 is π/6.
	Pi6 = Pi / 6

	// Sqrt2 is √2.
	Sqrt2 = 1.41421356237309504880168872420969808

	// InvSqrt2 is 1/√2.
	InvSqrt2 = 1 / Sqrt2

	// Sqrt3 is √3.
	Sqrt3 = 1.73205080756887729352744634150587237

	// Epsilon is the machine epsilon of the framework's default 32-bit
	// scalar. Use MachineEpsilon for the per-type value.
	Epsilon = 0x1p-23
)

// The float64 extremes are kept in variables: converting them as untyped
// constants would not compile for float32 instantiations, while the
// runtime conversion is well defined (underflow to zero, overflow to Inf).
var (
	smallestPositive64 = float64(math.SmallestNonzeroFloat64)
	maxFinite64        = float64(math.MaxFloat64)
)

// isFloat32 reports whether T is a 32-bit float. float32 cannot represent
// the smallest positive float64, so the conversion collapses to zero.
func isFloat32[T Float]() bool {
	return T(smallestPositive64) == 0
}

// MachineEpsilon returns the machine epsilon of T: the difference between
// 1 and the next larger representable value.
func MachineEpsilon[T Float]() T {
	if isFloat32[T]() {
		return T(0x1p-23)
	}
	return T(0x1p-52)
}

// smallestPositive returns the smallest positive (denormal) value of T.
func smallestPositive[T Float]() T {
	if isFloat32[T]() {
		return T(math.SmallestNonzeroFloat32)
	}
	return T(smallestPositive64)
}

// maxFinite returns the largest finite value of T.
func maxFinite[T Float]() T {
	if isFloat32[T]() {
		return T(math.MaxFloat32)
	}
	return T(maxFinite64)
}

// AlmostEquals reports whether a and b are approximately equal, using the
// machine epsilon of T as the tolerance. See AlmostEqualsEps.
func AlmostEquals[T Float](a, b T) bool {
	return AlmostEqualsEps(a, b, MachineEpsilon[T]())
}

// AlmostEqualsEps reports whether a and b are approximately equal within
// epsilon. The comparison is a hybrid of absolute and relative tolerance:
// exact equality short-circuits, values at or near zero are compared
// against a threshold scaled into the denormal range (a relative error is
// meaningless there), and everything else is compared by relative
// difference with the magnitude sum clamped to the largest finite value.
//
// See http://floating-point-gui.de/errors/comparison/ for the rationale.
func AlmostEqualsEps[T Float](a, b, epsilon T) bool {
	if a == b {
		return true
	}

	diff := a - b
	if diff < 0 {
		diff = -diff
	}

	denorm := smallestPositive[T]()
	if a == 0 || b == 0 || diff < denorm {
		return diff < epsilon*denorm
	}

	sum := abs(a) + abs(b)
	if m := maxFinite[T](); sum > m {
		sum = m
	}

	return diff/sum < epsilon
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians[T Float](degrees T) T {
	return degrees * T(Pi) / 180
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees[T Float](radians T) T {
	return radians * 180 / T(Pi)
}

// Lerp returns the linear interpolation between lhs and rhs at t: t=0
// yields lhs and t=1 yields rhs. Values of t outside [0, 1] extrapolate.
func Lerp[T Float](lhs, rhs, t T) T {
	return (1-t)*lhs + t*rhs
}

// Clamp returns val bounded to the range [lo, hi]. The result is
// unspecified if lo > hi.
func Clamp[T Number](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Square returns val².
func Square[T Number](val T) T {
	return val * val
}

// Cube returns val³.
func Cube[T Number](val T) T {
	return val * val * val
}

// Sign returns -1, 0 or 1 for negative, zero or positive val.
func Sign[T Signed](val T) int {
	switch {
	case val < 0:
		return -1
	case val > 0:
		return 1
	}
	return 0
}

// AbsDiff returns |lhs - rhs|. The operands are compared before
// subtracting, so the result is correct for unsigned types too.
func AbsDiff[T Number](lhs, rhs T) T {
	if lhs > rhs {
		return lhs - rhs
	}
	return rhs - lhs
}

func abs[T Signed](val T) T {
	if val < 0 {
		return -val
	}
	return val
}
