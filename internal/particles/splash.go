package particles

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Spawn is the initial state of one splash particle.
type Spawn struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
}

// CreateSplash returns count spawns seeded at impact. Each velocity points
// into the upper hemisphere, favouring steep angles, with a speed between
// half and the full force.
func (s *System) CreateSplash(impact mgl32.Vec3, count int, force float32) []Spawn {
	if count <= 0 {
		return nil
	}
	out := make([]Spawn, count)
	for i := range out {
		theta := s.rng.Float64() * 2 * math.Pi
		r := s.rng.Float64()
		phi := r * r * math.Pi / 2 // polar angle from +Y
		speed := float64(force) * (0.5 + 0.5*s.rng.Float64())

		out[i] = Spawn{
			Position: impact,
			Velocity: mgl32.Vec3{
				float32(speed * math.Sin(phi) * math.Cos(theta)),
				float32(speed * math.Cos(phi)),
				float32(speed * math.Sin(phi) * math.Sin(theta)),
			},
		}
	}
	return out
}

// Splash emits up to Count() splash particles at impact, recycling slots in
// round-robin order. It returns the number of particles emitted.
func (s *System) Splash(impact mgl32.Vec3, count int, force float32) int {
	count = min(count, s.count)
	for _, sp := range s.CreateSplash(impact, count, force) {
		i := s.cursor
		s.cursor = (s.cursor + 1) % s.count
		s.setVec(s.positions, i, sp.Position)
		s.setVec(s.velocities, i, sp.Velocity)
		s.lifetimes[i] = s.newLifetime()
	}
	return max(count, 0)
}
