package particles

import (
	"math"
	"math/rand/v2"

	"github.com/olivier-w/mercury/internal/vmath"
)

// Proportions of the head-and-shoulders silhouette, in units of scale.
const (
	headShare = 0.8

	headRadiusX = 0.75
	headRadiusY = 1.0
	headRadiusZ = 0.85
	headCenterY = 0.35
	headShell   = 0.9 // innermost fraction of the radius points land on

	shoulderY      = -1.4
	neckY          = -0.55
	shoulderRadius = 1.1
	neckRadius     = 0.32
	torsoDepth     = 0.7 // z squash of the neck/shoulder section
)

// GenerateHeadShape returns 3*count target coordinates outlining a head on a
// neck. The first 80% of points lie on an ellipsoidal head shell; the rest
// lie on a cylinder tapering from the shoulders up to the neck.
func GenerateHeadShape(count int, scale float32, rng *rand.Rand) []float32 {
	if count <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	out := make([]float32, 3*count)
	head := int(float64(count) * headShare)
	s := float64(scale)

	for i := range count {
		var x, y, z float64
		if i < head {
			u := rng.Float64() * 2 * math.Pi
			v := math.Acos(2*rng.Float64() - 1)
			r := vmath.Lerp(headShell, 1, rng.Float64())
			x = headRadiusX * r * math.Sin(v) * math.Cos(u)
			y = headRadiusY*r*math.Cos(v) + headCenterY
			z = headRadiusZ * r * math.Sin(v) * math.Sin(u)
		} else {
			t := rng.Float64()
			u := rng.Float64() * 2 * math.Pi
			r := vmath.Lerp(shoulderRadius, neckRadius, t)
			x = r * math.Cos(u)
			y = vmath.Lerp(shoulderY, neckY, t)
			z = r * math.Sin(u) * torsoDepth
		}
		out[3*i] = float32(x * s)
		out[3*i+1] = float32(y * s)
		out[3*i+2] = float32(z * s)
	}
	return out
}
