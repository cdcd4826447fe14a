package particles

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCreateSplashUpperHemisphere(t *testing.T) {
	s := newTestSystem(t, testConfig(10))
	impact := mgl32.Vec3{1, 2, 3}
	const force = 4

	spawns := s.CreateSplash(impact, 200, force)
	if len(spawns) != 200 {
		t.Fatalf("len(CreateSplash) = %d, want 200", len(spawns))
	}
	var meanY float64
	for i, sp := range spawns {
		if sp.Position != impact {
			t.Fatalf("spawn %d at %v, want %v", i, sp.Position, impact)
		}
		if sp.Velocity[1] < 0 {
			t.Fatalf("spawn %d points downward: %v", i, sp.Velocity)
		}
		speed := float64(sp.Velocity.Len())
		if speed < 0.5*force-1e-4 || speed > force+1e-4 {
			t.Fatalf("spawn %d speed %v outside [%v, %v]", i, speed, 0.5*force, force)
		}
		meanY += float64(sp.Velocity[1]) / speed
	}
	meanY /= float64(len(spawns))
	// Uniform polar angles would average 2/π ≈ 0.64; the bias should beat that.
	if meanY < 0.7 {
		t.Fatalf("mean upward component %v, want upward bias", meanY)
	}
}

func TestCreateSplashEmpty(t *testing.T) {
	s := newTestSystem(t, testConfig(1))
	if got := s.CreateSplash(mgl32.Vec3{}, 0, 1); got != nil {
		t.Fatalf("CreateSplash(count=0) = %v, want nil", got)
	}
}

func TestSplashRecyclesRoundRobin(t *testing.T) {
	s := newTestSystem(t, testConfig(8))
	impact := mgl32.Vec3{0, 5, 0}

	if n := s.Splash(impact, 5, 2); n != 5 {
		t.Fatalf("Splash() = %d, want 5", n)
	}
	for i := range 5 {
		if s.Position(i) != impact {
			t.Fatalf("slot %d not respawned at impact", i)
		}
		if s.Velocities()[3*i+1] < 0 {
			t.Fatalf("slot %d velocity points down", i)
		}
	}
	if s.Position(5) == impact {
		t.Fatal("slot 5 overwritten early")
	}

	if n := s.Splash(impact.Add(mgl32.Vec3{1, 0, 0}), 20, 2); n != 8 {
		t.Fatalf("Splash() beyond count = %d, want 8", n)
	}
	if s.Count() != 8 {
		t.Fatal("splash changed the particle count")
	}
	for i := range 8 {
		if math.IsNaN(float64(s.Position(i)[0])) {
			t.Fatal("NaN position after splash")
		}
	}
}
