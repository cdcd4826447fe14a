package spring

import (
	"fmt"
	"math"
	"sort"
)

// Config is the tension/friction/mass triple of a spring.
type Config struct {
	Tension  float64 `mapstructure:"tension"`
	Friction float64 `mapstructure:"friction"`
	Mass     float64 `mapstructure:"mass"`
}

// Named presets. Snappy is for UI feedback, Camera for slow weighty moves.
var (
	Default = Config{Tension: 170, Friction: 26, Mass: 1}
	Snappy  = Config{Tension: 400, Friction: 28, Mass: 1}
	Smooth  = Config{Tension: 120, Friction: 14, Mass: 1}
	Camera  = Config{Tension: 60, Friction: 18, Mass: 2}
	Wobbly  = Config{Tension: 180, Friction: 12, Mass: 1}
	Stiff   = Config{Tension: 210, Friction: 20, Mass: 1}
	Slow    = Config{Tension: 280, Friction: 60, Mass: 1}
)

var presets = map[string]Config{
	"default": Default,
	"snappy":  Snappy,
	"smooth":  Smooth,
	"camera":  Camera,
	"wobbly":  Wobbly,
	"stiff":   Stiff,
	"slow":    Slow,
}

// Preset looks up a named configuration.
func Preset(name string) (Config, bool) {
	c, ok := presets[name]
	return c, ok
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks mass > 0 and non-negative tension and friction.
func (c Config) Validate() error {
	for _, v := range []float64{c.Tension, c.Friction, c.Mass} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %+v", ErrNonFiniteConfig, c)
		}
	}
	if c.Mass <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidMass, c.Mass)
	}
	if c.Tension < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeTension, c.Tension)
	}
	if c.Friction < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeFriction, c.Friction)
	}
	return nil
}

// AngularFrequency is the undamped natural frequency sqrt(k/m) in rad/s.
func (c Config) AngularFrequency() float64 {
	return math.Sqrt(c.Tension / c.Mass)
}

// DampingRatio is c / (2*sqrt(k*m)); 1 is critical damping. A spring with no
// tension has no restoring force and reports 0.
func (c Config) DampingRatio() float64 {
	if c.Tension == 0 {
		return 0
	}
	return c.Friction / (2 * math.Sqrt(c.Tension*c.Mass))
}
