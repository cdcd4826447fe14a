// Package vmath holds the small numeric helpers shared by the simulators:
// frame-time clamping and ε-guarded direction vectors.
package vmath

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is added to squared distances before taking a root so a zero-length
// delta yields a zero direction instead of NaN.
const Epsilon = 0.001

// Seconds converts dt to seconds, clamping it to [0, limit].
func Seconds(dt, limit time.Duration) float64 {
	if dt <= 0 {
		return 0
	}
	if dt > limit {
		dt = limit
	}
	return dt.Seconds()
}

// Steps splits a duration of seconds into n equal sub-steps no longer than maxStep.
func Steps(seconds, maxStep float64) (n int, step float64) {
	if seconds <= 0 {
		return 0, 0
	}
	n = int(math.Ceil(seconds/maxStep - 1e-9))
	if n < 1 {
		n = 1
	}
	return n, seconds / float64(n)
}

// Direction returns delta scaled by 1/sqrt(|delta|²+Epsilon) and the true length.
// The result has length < 1 and shrinks to zero as delta does.
func Direction(delta mgl32.Vec3) (mgl32.Vec3, float32) {
	distSq := delta.Dot(delta)
	inv := 1 / float32(math.Sqrt(float64(distSq+Epsilon)))
	return delta.Mul(inv), float32(math.Sqrt(float64(distSq)))
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
