package gamekit

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandomOption configures a Random during creation.
type RandomOption func(*randomOptions)

type randomOptions struct {
	src rand.Source
}

// WithSeed seeds the generator deterministically. Two generators created
// with the same seed produce the same sequence.
func WithSeed(seed uint64) RandomOption {
	return func(o *randomOptions) {
		o.src = rand.NewPCG(seed, seed)
	}
}

// WithSource supplies a custom random source.
func WithSource(src rand.Source) RandomOption {
	return func(o *randomOptions) {
		o.src = src
	}
}

// Random provides game-oriented helpers over a pseudo-random source:
// uniform scalars, distributions, angles and positions.
//
// A Random is not safe for concurrent use; create one per goroutine or
// synchronize externally.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a generator. Without options it is seeded from the
// process-wide source, so successive calls yield unrelated sequences.
func NewRandom(opts ...RandomOption) *Random {
	var o randomOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Random{rng: rand.New(o.src)}
}

// ComputeUniformFloat returns a float uniformly distributed in [lo, hi).
func (r *Random) ComputeUniformFloat(lo, hi float64) float64 {
	return lo + (hi-lo)*r.rng.Float64()
}

// ComputeUniformInt returns an int uniformly distributed in [lo, hi],
// bounds included. It panics if lo > hi.
func (r *Random) ComputeUniformInt(lo, hi int) int {
	return lo + r.rng.IntN(hi-lo+1)
}

// ComputeNormalFloat returns a normally distributed float with the given
// mean and standard deviation.
func (r *Random) ComputeNormalFloat(mean, stddev float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: stddev, Src: r.rng}.Rand()
}

// ComputeBernoulli returns true with probability p.
func (r *Random) ComputeBernoulli(p float64) bool {
	return distuv.Bernoulli{P: p, Src: r.rng}.Rand() == 1
}

// ComputeAngle returns an angle uniformly distributed in [0, 2π).
func (r *Random) ComputeAngle() float64 {
	return r.rng.Float64() * 2 * Pi
}

// ComputeRadius returns a radius in [lo, hi] distributed so that points
// at that radius cover an annulus uniformly by area.
func (r *Random) ComputeRadius(lo, hi float64) float64 {
	return math.Sqrt(r.ComputeUniformFloat(lo*lo, hi*hi))
}

// ComputePosition returns a position uniformly distributed over the area.
func (r *Random) ComputePosition(area RectF) Vec2 {
	rx, ry := area.RangeX(), area.RangeY()
	return Vec2{
		X: r.ComputeUniformFloat(rx.Lo, rx.Hi),
		Y: r.ComputeUniformFloat(ry.Lo, ry.Hi),
	}
}

// ComputePositionInCircle returns a position uniformly distributed over
// the disk with the given center and radius.
func (r *Random) ComputePositionInCircle(center Vec2, radius float64) Vec2 {
	return center.Add(Polar(r.ComputeRadius(0, radius), r.ComputeAngle()))
}

// ComputeID returns a non-zero random identifier.
func (r *Random) ComputeID() uint64 {
	for {
		if id := r.rng.Uint64(); id != 0 {
			return id
		}
	}
}
