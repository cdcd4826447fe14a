package spring

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is three independent springs sharing one configuration. The axes
// never exchange force.
type Vector struct {
	axes [3]Stepper
}

// NewVector creates a semi-implicit vector spring resting at initial.
func NewVector(initial mgl64.Vec3, cfg Config) (*Vector, error) {
	var v Vector
	for i := range 3 {
		s, err := New(initial[i], cfg)
		if err != nil {
			return nil, err
		}
		v.axes[i] = s
	}
	return &v, nil
}

// NewAnalyticVector creates a vector spring whose axes use the closed-form solution.
func NewAnalyticVector(initial mgl64.Vec3, cfg Config) (*Vector, error) {
	var v Vector
	for i := range 3 {
		s, err := NewAnalytic(initial[i], cfg)
		if err != nil {
			return nil, err
		}
		v.axes[i] = s
	}
	return &v, nil
}

// SetTarget forwards each component to its axis.
func (v *Vector) SetTarget(target mgl64.Vec3) {
	for i, s := range v.axes {
		s.SetTarget(target[i])
	}
}

// Update advances all three axes and returns the new position.
func (v *Vector) Update(dt time.Duration) mgl64.Vec3 {
	var out mgl64.Vec3
	for i, s := range v.axes {
		out[i] = s.Update(dt)
	}
	return out
}

func (v *Vector) Position() mgl64.Vec3 {
	var out mgl64.Vec3
	for i, s := range v.axes {
		out[i] = s.Position()
	}
	return out
}

func (v *Vector) Velocity() mgl64.Vec3 {
	var out mgl64.Vec3
	for i, s := range v.axes {
		out[i] = s.Velocity()
	}
	return out
}

// Snap jumps every axis to value with zero velocity.
func (v *Vector) Snap(value mgl64.Vec3) {
	for i, s := range v.axes {
		s.Snap(value[i])
	}
}

// IsAtRest is true only when every axis is at rest.
func (v *Vector) IsAtRest(threshold float64) bool {
	for _, s := range v.axes {
		if !s.IsAtRest(threshold) {
			return false
		}
	}
	return true
}

// Axis exposes one component spring.
func (v *Vector) Axis(i int) Stepper { return v.axes[i] }
