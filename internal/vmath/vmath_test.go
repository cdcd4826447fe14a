package vmath

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSecondsClamps(t *testing.T) {
	tests := []struct {
		dt, limit time.Duration
		want      float64
	}{
		{16 * time.Millisecond, 64 * time.Millisecond, 0.016},
		{500 * time.Millisecond, 64 * time.Millisecond, 0.064},
		{-time.Second, 64 * time.Millisecond, 0},
		{0, 33 * time.Millisecond, 0},
	}
	for _, tt := range tests {
		if got := Seconds(tt.dt, tt.limit); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Seconds(%v, %v) = %v, want %v", tt.dt, tt.limit, got, tt.want)
		}
	}
}

func TestSteps(t *testing.T) {
	tests := []struct {
		seconds, max float64
		n            int
	}{
		{0.016, 1.0 / 60, 1},
		{1.0 / 60, 1.0 / 60, 1},
		{0.064, 1.0 / 60, 4},
		{0, 1.0 / 60, 0},
	}
	for _, tt := range tests {
		n, step := Steps(tt.seconds, tt.max)
		if n != tt.n {
			t.Errorf("Steps(%v) n = %d, want %d", tt.seconds, n, tt.n)
		}
		if n > 0 && math.Abs(step*float64(n)-tt.seconds) > 1e-12 {
			t.Errorf("Steps(%v) steps sum to %v", tt.seconds, step*float64(n))
		}
	}
}

func TestDirectionAtZeroIsFinite(t *testing.T) {
	dir, dist := Direction(mgl32.Vec3{})
	if dist != 0 {
		t.Fatalf("dist = %v, want 0", dist)
	}
	for i := range 3 {
		if !Finite(float64(dir[i])) || dir[i] != 0 {
			t.Fatalf("dir = %v, want zero vector", dir)
		}
	}
}

func TestDirectionApproachesUnit(t *testing.T) {
	dir, dist := Direction(mgl32.Vec3{10, 0, 0})
	if math.Abs(float64(dist)-10) > 1e-5 {
		t.Fatalf("dist = %v, want 10", dist)
	}
	if l := dir.Len(); l >= 1 || l < 0.99 {
		t.Fatalf("|dir| = %v, want just under 1", l)
	}
}
