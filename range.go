package gamekit

// Range is a half-open-agnostic numeric interval [Lo, Hi]. A Range with
// Lo > Hi is invalid; operations on an invalid range are unspecified.
type Range[T Number] struct {
	Lo, Hi T
}

// RangeF is a Range of float64.
type RangeF = Range[float64]

// RangeI is a Range of int.
type RangeI = Range[int]

// Contains reports whether v lies in [Lo, Hi].
func (r Range[T]) Contains(v T) bool {
	return r.Lo <= v && v <= r.Hi
}

// Clamp returns v bounded to [Lo, Hi].
func (r Range[T]) Clamp(v T) T {
	return Clamp(v, r.Lo, r.Hi)
}

// Length returns the extent Hi - Lo.
func (r Range[T]) Length() T {
	return r.Hi - r.Lo
}

// Valid reports whether Lo <= Hi.
func (r Range[T]) Valid() bool {
	return r.Lo <= r.Hi
}

// Empty reports whether the range contains no interior points.
func (r Range[T]) Empty() bool {
	return r.Lo >= r.Hi
}

// Lerp returns the linear interpolation between Lo and Hi at t.
func (r Range[T]) Lerp(t float64) T {
	return T((1-t)*float64(r.Lo) + t*float64(r.Hi))
}

// Normalize returns the position of v within the range as a value in
// [0, 1] (for v inside the range). It is the inverse of Lerp; the result
// is unspecified for an empty range.
func (r Range[T]) Normalize(v T) float64 {
	return float64(v-r.Lo) / float64(r.Hi-r.Lo)
}

// ExtendTo returns the range grown just enough to contain v.
func (r Range[T]) ExtendTo(v T) Range[T] {
	if v < r.Lo {
		r.Lo = v
	}
	if v > r.Hi {
		r.Hi = v
	}
	return r
}
