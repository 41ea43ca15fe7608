package gamekit

import "time"

// LerpFunc interpolates between an origin and a target value at parameter
// t in [0, 1]. Vec2.Lerp and RGBA.Lerp satisfy this signature as method
// expressions.
type LerpFunc[T any] func(origin, target T, t float64) T

// Tween drives a value from an origin to a target over a duration,
// reshaping progress through an easing function.
//
// A Tween is not safe for concurrent use.
type Tween[T any] struct {
	origin   T
	target   T
	lerp     LerpFunc[T]
	easing   Easing[float64]
	elapsed  time.Duration
	duration time.Duration
}

// NewTween creates a tween between two scalar values. A nil easing means
// linear progression.
func NewTween[T Float](origin, target T, duration time.Duration, easing Easing[float64]) *Tween[T] {
	lerp := func(a, b T, t float64) T { return Lerp(a, b, T(t)) }
	return NewTweenWith(lerp, origin, target, duration, easing)
}

// NewTweenWith creates a tween over any value type using an explicit
// interpolation function. A nil easing means linear progression.
func NewTweenWith[T any](lerp LerpFunc[T], origin, target T, duration time.Duration, easing Easing[float64]) *Tween[T] {
	if easing == nil {
		easing = LinearStep[float64]
	}
	return &Tween[T]{
		origin:   origin,
		target:   target,
		lerp:     lerp,
		easing:   easing,
		duration: duration,
	}
}

// Update advances the tween by dt, saturating at the total duration.
// Negative dt is a caller error and leaves the tween unspecified.
func (tw *Tween[T]) Update(dt time.Duration) {
	tw.elapsed += dt
	if tw.elapsed > tw.duration {
		tw.elapsed = tw.duration
	}
}

// Value returns the current interpolated value.
func (tw *Tween[T]) Value() T {
	return tw.lerp(tw.origin, tw.target, tw.easing(tw.Progress()))
}

// Progress returns the fraction of the duration elapsed so far, in
// [0, 1]. A tween with zero duration is always at progress 1.
func (tw *Tween[T]) Progress() float64 {
	if tw.duration <= 0 {
		return 1
	}
	return float64(tw.elapsed) / float64(tw.duration)
}

// Finished reports whether the tween has reached its target.
func (tw *Tween[T]) Finished() bool {
	return tw.elapsed >= tw.duration
}

// Restart rewinds the tween to its origin.
func (tw *Tween[T]) Restart() {
	tw.elapsed = 0
}

// SetEasing replaces the easing function. A nil easing means linear
// progression.
func (tw *Tween[T]) SetEasing(easing Easing[float64]) {
	if easing == nil {
		easing = LinearStep[float64]
	}
	tw.easing = easing
}
