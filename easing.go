package gamekit

import "math"

// Easing is a synonym for Step: an easing maps [0, 1] to [0, 1] with
// f(0) = 0 and f(1) = 1. The predefined easings below follow the classic
// Penner equations; LinearStep, CubicStep and QuinticStep double as the
// linear, smooth and smoother easings.
type Easing[T Float] = Step[T]

// EaseOut derives the ease-out counterpart of an ease-in function by
// mirroring it around the center: g(t) = 1 - f(1 - t).
func EaseOut[T Float](f Easing[T]) Easing[T] {
	return func(t T) T { return easeOut(f, t) }
}

// EaseInOut derives an easing that runs f eased-in on the first half and
// eased-out on the second half.
func EaseInOut[T Float](f Easing[T]) Easing[T] {
	return func(t T) T { return easeInOut(f, t) }
}

// EaseOutIn derives an easing that runs f eased-out on the first half and
// eased-in on the second half.
func EaseOutIn[T Float](f Easing[T]) Easing[T] {
	return func(t T) T { return easeOutIn(f, t) }
}

func easeOut[T Float](f Easing[T], t T) T {
	return 1 - f(1-t)
}

func easeInOut[T Float](f Easing[T], t T) T {
	if t < 0.5 {
		return f(2*t) / 2
	}
	return 0.5 + (1-f(2-2*t))/2
}

func easeOutIn[T Float](f Easing[T], t T) T {
	if t < 0.5 {
		return (1 - f(1-2*t)) / 2
	}
	return 0.5 + f(2*t-1)/2
}

// Quadratic easing: f(t) = t².

func QuadIn[T Float](t T) T    { return t * t }
func QuadOut[T Float](t T) T   { return easeOut(QuadIn[T], t) }
func QuadInOut[T Float](t T) T { return easeInOut(QuadIn[T], t) }
func QuadOutIn[T Float](t T) T { return easeOutIn(QuadIn[T], t) }

// Cubic easing: f(t) = t³.

func CubicIn[T Float](t T) T    { return t * t * t }
func CubicOut[T Float](t T) T   { return easeOut(CubicIn[T], t) }
func CubicInOut[T Float](t T) T { return easeInOut(CubicIn[T], t) }
func CubicOutIn[T Float](t T) T { return easeOutIn(CubicIn[T], t) }

// Quartic easing: f(t) = t⁴.

func QuartIn[T Float](t T) T    { return t * t * t * t }
func QuartOut[T Float](t T) T   { return easeOut(QuartIn[T], t) }
func QuartInOut[T Float](t T) T { return easeInOut(QuartIn[T], t) }
func QuartOutIn[T Float](t T) T { return easeOutIn(QuartIn[T], t) }

// Quintic easing: f(t) = t⁵.

func QuintIn[T Float](t T) T    { return t * t * t * t * t }
func QuintOut[T Float](t T) T   { return easeOut(QuintIn[T], t) }
func QuintInOut[T Float](t T) T { return easeInOut(QuintIn[T], t) }
func QuintOutIn[T Float](t T) T { return easeOutIn(QuintIn[T], t) }

// Sine easing: f(t) = 1 - cos(tπ/2).

func SineIn[T Float](t T) T    { return T(1 - math.Cos(float64(t)*Pi2)) }
func SineOut[T Float](t T) T   { return easeOut(SineIn[T], t) }
func SineInOut[T Float](t T) T { return easeInOut(SineIn[T], t) }
func SineOutIn[T Float](t T) T { return easeOutIn(SineIn[T], t) }

// Exponential easing: f(t) = 2^(10(t-1)), with f(0) forced to 0.

func ExpoIn[T Float](t T) T {
	if t == 0 {
		return 0
	}
	return T(math.Pow(2, 10*(float64(t)-1)))
}

func ExpoOut[T Float](t T) T   { return easeOut(ExpoIn[T], t) }
func ExpoInOut[T Float](t T) T { return easeInOut(ExpoIn[T], t) }
func ExpoOutIn[T Float](t T) T { return easeOutIn(ExpoIn[T], t) }

// Circular easing: f(t) = 1 - √(1 - t²).

func CircIn[T Float](t T) T {
	x := float64(t)
	return T(1 - math.Sqrt(1-x*x))
}

func CircOut[T Float](t T) T   { return easeOut(CircIn[T], t) }
func CircInOut[T Float](t T) T { return easeInOut(CircIn[T], t) }
func CircOutIn[T Float](t T) T { return easeOutIn(CircIn[T], t) }

// backFactor controls how far the back easings overshoot.
const backFactor = 1.70158

// Back easing: f(t) = t²((k+1)t - k), overshooting below 0 before rising.

func BackIn[T Float](t T) T {
	return t * t * ((backFactor+1)*t - backFactor)
}

func BackOut[T Float](t T) T   { return easeOut(BackIn[T], t) }
func BackInOut[T Float](t T) T { return easeInOut(BackIn[T], t) }
func BackOutIn[T Float](t T) T { return easeOutIn(BackIn[T], t) }

// Elastic easing: f(t) = sin(13·π/2·t)·2^(10(t-1)), a damped oscillation.

func ElasticIn[T Float](t T) T {
	x := float64(t)
	return T(math.Sin(13*Pi2*x) * math.Pow(2, 10*(x-1)))
}

func ElasticOut[T Float](t T) T   { return easeOut(ElasticIn[T], t) }
func ElasticInOut[T Float](t T) T { return easeInOut(ElasticIn[T], t) }
func ElasticOutIn[T Float](t T) T { return easeOutIn(ElasticIn[T], t) }

// Bounce easing: a sequence of four decaying parabolic arcs.

func BounceIn[T Float](t T) T    { return 1 - bounce(1-t) }
func BounceOut[T Float](t T) T   { return bounce(t) }
func BounceInOut[T Float](t T) T { return easeInOut(BounceIn[T], t) }
func BounceOutIn[T Float](t T) T { return easeOutIn(BounceIn[T], t) }

func bounce[T Float](t T) T {
	switch {
	case t < 4/11.0:
		return (121 * t * t) / 16
	case t < 8/11.0:
		return (363/40.0)*t*t - (99/10.0)*t + 17/5.0
	case t < 9/10.0:
		return (4356/361.0)*t*t - (35442/1805.0)*t + 16061/1805.0
	default:
		return (54/5.0)*t*t - (513/25.0)*t + 268/25.0
	}
}
