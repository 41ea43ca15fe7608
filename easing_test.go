package gamekit

import (
	"math"
	"testing"
)

// approxEq compares with an absolute tolerance; easing endpoints land a
// few ulps away from 0 and 1, where a relative comparison is useless.
func approxEq(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// allEasings names every exported easing for endpoint checks.
var allEasings = []struct {
	name   string
	easing Easing[float64]
}{
	{"QuadIn", QuadIn[float64]},
	{"QuadOut", QuadOut[float64]},
	{"QuadInOut", QuadInOut[float64]},
	{"QuadOutIn", QuadOutIn[float64]},
	{"CubicIn", CubicIn[float64]},
	{"CubicOut", CubicOut[float64]},
	{"CubicInOut", CubicInOut[float64]},
	{"CubicOutIn", CubicOutIn[float64]},
	{"QuartIn", QuartIn[float64]},
	{"QuartOut", QuartOut[float64]},
	{"QuartInOut", QuartInOut[float64]},
	{"QuartOutIn", QuartOutIn[float64]},
	{"QuintIn", QuintIn[float64]},
	{"QuintOut", QuintOut[float64]},
	{"QuintInOut", QuintInOut[float64]},
	{"QuintOutIn", QuintOutIn[float64]},
	{"SineIn", SineIn[float64]},
	{"SineOut", SineOut[float64]},
	{"SineInOut", SineInOut[float64]},
	{"SineOutIn", SineOutIn[float64]},
	{"ExpoIn", ExpoIn[float64]},
	{"ExpoOut", ExpoOut[float64]},
	{"ExpoInOut", ExpoInOut[float64]},
	{"ExpoOutIn", ExpoOutIn[float64]},
	{"CircIn", CircIn[float64]},
	{"CircOut", CircOut[float64]},
	{"CircInOut", CircInOut[float64]},
	{"CircOutIn", CircOutIn[float64]},
	{"BackIn", BackIn[float64]},
	{"BackOut", BackOut[float64]},
	{"BackInOut", BackInOut[float64]},
	{"BackOutIn", BackOutIn[float64]},
	{"ElasticIn", ElasticIn[float64]},
	{"ElasticOut", ElasticOut[float64]},
	{"ElasticInOut", ElasticInOut[float64]},
	{"ElasticOutIn", ElasticOutIn[float64]},
	{"BounceIn", BounceIn[float64]},
	{"BounceOut", BounceOut[float64]},
	{"BounceInOut", BounceInOut[float64]},
	{"BounceOutIn", BounceOutIn[float64]},
}

func TestEasingEndpoints(t *testing.T) {
	const tol = 1e-9
	for _, tt := range allEasings {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.easing(0); !approxEq(got, 0, tol) {
				t.Errorf("%s(0) = %v, want 0", tt.name, got)
			}
			if got := tt.easing(1); !approxEq(got, 1, tol) {
				t.Errorf("%s(1) = %v, want 1", tt.name, got)
			}
		})
	}
}

func TestEasingValuesInRange(t *testing.T) {
	// Back and Elastic intentionally overshoot; everything else stays in
	// [0, 1] over [0, 1].
	overshooting := map[string]bool{}
	for _, name := range []string{"Back", "Elastic"} {
		for _, variant := range []string{"In", "Out", "InOut", "OutIn"} {
			overshooting[name+variant] = true
		}
	}

	const n = 200
	for _, tt := range allEasings {
		if overshooting[tt.name] {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i <= n; i++ {
				x := float64(i) / n
				got := tt.easing(x)
				if got < -1e-9 || got > 1+1e-9 {
					t.Fatalf("%s(%v) = %v, outside [0, 1]", tt.name, x, got)
				}
			}
		})
	}
}

func TestEasingKnownValues(t *testing.T) {
	tests := []struct {
		name   string
		easing Easing[float64]
		in     float64
		want   float64
	}{
		{"QuadIn", QuadIn[float64], 0.5, 0.25},
		{"QuadOut", QuadOut[float64], 0.5, 0.75},
		{"CubicIn", CubicIn[float64], 0.5, 0.125},
		{"QuartIn", QuartIn[float64], 0.5, 0.0625},
		{"QuintIn", QuintIn[float64], 0.5, 0.03125},
		{"QuadInOut", QuadInOut[float64], 0.5, 0.5},
		{"CubicInOut", CubicInOut[float64], 0.5, 0.5},
		{"SineInOut", SineInOut[float64], 0.5, 0.5},
		{"BounceOutIn", BounceOutIn[float64], 0.5, 0.5},
		{"SineIn", SineIn[float64], 0.5, 1 - math.Cos(Pi4)},
		{"ExpoIn", ExpoIn[float64], 0.5, math.Pow(2, -5)},
		{"CircIn", CircIn[float64], 0.5, 1 - math.Sqrt(0.75)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.easing(tt.in); !approxEq(got, tt.want, 1e-12) {
				t.Errorf("%s(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
			}
		})
	}
}

func TestEaseCombinators(t *testing.T) {
	// The derived variants must agree with the combinator-built ones.
	out := EaseOut(QuadIn[float64])
	inOut := EaseInOut(QuadIn[float64])
	outIn := EaseOutIn(QuadIn[float64])

	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		if got, want := out(x), QuadOut(x); got != want {
			t.Errorf("EaseOut(QuadIn)(%v) = %v, want %v", x, got, want)
		}
		if got, want := inOut(x), QuadInOut(x); got != want {
			t.Errorf("EaseInOut(QuadIn)(%v) = %v, want %v", x, got, want)
		}
		if got, want := outIn(x), QuadOutIn(x); got != want {
			t.Errorf("EaseOutIn(QuadIn)(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestEaseOutMirror(t *testing.T) {
	// g(t) = 1 - f(1-t) for every t, not only at the endpoints.
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		if got, want := CubicOut(x), 1-CubicIn(1-x); got != want {
			t.Errorf("CubicOut(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestBackInOvershoots(t *testing.T) {
	// The back easing dips below zero on the way in.
	lowest := 0.0
	for i := 0; i <= 100; i++ {
		if v := BackIn(float64(i) / 100); v < lowest {
			lowest = v
		}
	}
	if lowest >= 0 {
		t.Errorf("BackIn never dipped below 0, min = %v", lowest)
	}
}

func TestEasingFloat32(t *testing.T) {
	if got := QuadIn(float32(0.5)); got != 0.25 {
		t.Errorf("QuadIn(float32(0.5)) = %v, want 0.25", got)
	}
	if got := BounceOut(float32(1)); !approxEq(float64(got), 1, 1e-6) {
		t.Errorf("BounceOut(float32(1)) = %v, want 1", got)
	}
}
