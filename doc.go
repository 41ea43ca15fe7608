// Package gamekit provides the math and support utilities of a 2D game
// development framework: numeric helpers, interpolation and easing,
// lightweight geometry, color arithmetic and randomness.
//
// # Overview
//
// gamekit is a pure Go library with no rendering or windowing
// dependencies. It is meant to sit under animation, physics and gameplay
// code: everything in the root package is small, allocation-free and safe
// for unrestricted concurrent use (except where documented, such as
// Random and Tween).
//
// # Quick Start
//
//	import "github.com/gogamekit/gamekit"
//
//	// Smooth a linear interpolation with a step function
//	p := a.Lerp(b, gamekit.CubicStep(t))
//
//	// Animate a value over time
//	tw := gamekit.NewTween(0.0, 100.0, time.Second, gamekit.QuadOut)
//	tw.Update(dt)
//	x := tw.Value()
//
// # Numerics
//
// The scalar helpers (Lerp, Clamp, AlmostEquals, angle conversions) are
// generic over the built-in numeric types via the Float, Signed and
// Number constraints. All of them are total: they never return errors and
// never panic; NaN and Inf propagate per the usual floating-point rules.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Logging
//
// gamekit is silent by default. Call SetLogger to surface the few
// operating-system query failures the sysinfo sub-package can encounter.
package gamekit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
