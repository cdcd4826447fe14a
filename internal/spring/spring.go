// Package spring implements damped harmonic oscillators used to smooth camera,
// rotation and pointer motion. A Spring integrates with semi-implicit Euler;
// Analytic uses harmonica's closed-form solution for the same parameters.
package spring

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/olivier-w/mercury/internal/vmath"
)

// MaxDelta bounds a single Update so a long frame stall (a backgrounded tab,
// a debugger pause) cannot fling the spring.
const MaxDelta = 64 * time.Millisecond

// maxStep is the longest sub-step integrated at once.
const maxStep = 1.0 / 60

var (
	ErrInvalidMass      = errors.New("spring mass must be positive")
	ErrNegativeTension  = errors.New("spring tension must not be negative")
	ErrNegativeFriction = errors.New("spring friction must not be negative")
	ErrNonFiniteConfig  = errors.New("spring configuration must be finite")
)

// Stepper is the contract shared by Spring and Analytic.
type Stepper interface {
	SetTarget(value float64)
	Update(dt time.Duration) float64
	IsAtRest(threshold float64) bool
	Position() float64
	Velocity() float64
	Snap(value float64)
}

// Spring is a single damped harmonic oscillator.
type Spring struct {
	cfg      Config
	position float64
	velocity float64
	target   float64
}

// New creates a spring resting at initial. The configuration is validated up
// front; a zero or negative mass is rejected rather than producing NaN later.
func New(initial float64, cfg Config) (*Spring, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new spring: %w", err)
	}
	return &Spring{cfg: cfg, position: initial, target: initial}, nil
}

// SetTarget moves the equilibrium point. Position and velocity are untouched.
func (s *Spring) SetTarget(value float64) { s.target = value }

func (s *Spring) Target() float64   { return s.target }
func (s *Spring) Position() float64 { return s.position }
func (s *Spring) Velocity() float64 { return s.velocity }
func (s *Spring) Config() Config    { return s.cfg }

// Snap jumps to value and stops all motion.
func (s *Spring) Snap(value float64) {
	s.position = value
	s.target = value
	s.velocity = 0
}

// Update advances the spring by dt (clamped to MaxDelta) and returns the new position.
func (s *Spring) Update(dt time.Duration) float64 {
	n, step := vmath.Steps(vmath.Seconds(dt, MaxDelta), maxStep)
	for range n {
		springForce := -s.cfg.Tension * (s.position - s.target)
		dampingForce := -s.cfg.Friction * s.velocity
		accel := (springForce + dampingForce) / s.cfg.Mass

		s.velocity += accel * step
		s.position += s.velocity * step
	}
	return s.position
}

// IsAtRest reports whether both speed and displacement are below threshold.
func (s *Spring) IsAtRest(threshold float64) bool {
	return math.Abs(s.velocity) < threshold && math.Abs(s.position-s.target) < threshold
}
