package spring

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/mercury/internal/vmath"
)

// Analytic is a Stepper backed by harmonica's closed-form damped spring.
// It is exact for any step length, so it needs no sub-stepping. Coefficients
// are cached for the last step length since frames are usually uniform.
type Analytic struct {
	cfg      Config
	spring   harmonica.Spring
	lastStep time.Duration
	position float64
	velocity float64
	target   float64
}

// NewAnalytic creates a closed-form spring resting at initial.
func NewAnalytic(initial float64, cfg Config) (*Analytic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new analytic spring: %w", err)
	}
	return &Analytic{cfg: cfg, position: initial, target: initial}, nil
}

func (a *Analytic) SetTarget(value float64) { a.target = value }

func (a *Analytic) Target() float64   { return a.target }
func (a *Analytic) Position() float64 { return a.position }
func (a *Analytic) Velocity() float64 { return a.velocity }

func (a *Analytic) Snap(value float64) {
	a.position = value
	a.target = value
	a.velocity = 0
}

// Update advances by dt (clamped to MaxDelta) and returns the new position.
func (a *Analytic) Update(dt time.Duration) float64 {
	if dt <= 0 {
		return a.position
	}
	if dt > MaxDelta {
		dt = MaxDelta
	}
	if dt != a.lastStep {
		a.spring = harmonica.NewSpring(vmath.Seconds(dt, MaxDelta), a.cfg.AngularFrequency(), a.cfg.DampingRatio())
		a.lastStep = dt
	}
	a.position, a.velocity = a.spring.Update(a.position, a.velocity, a.target)
	return a.position
}

func (a *Analytic) IsAtRest(threshold float64) bool {
	return math.Abs(a.velocity) < threshold && math.Abs(a.position-a.target) < threshold
}

// FPS returns the step length of one frame at the given frame rate.
func FPS(n int) time.Duration {
	return time.Duration(harmonica.FPS(n) * float64(time.Second))
}
