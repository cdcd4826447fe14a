// Package particles advances a fixed-size particle ensemble under gravity,
// drag, force fields and optional attraction toward per-particle targets.
// State is stored as flat struct-of-arrays buffers that can be uploaded to
// GPU vertex buffers as they are.
package particles

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ojrac/opensimplex-go"
	"github.com/olivier-w/mercury/internal/vmath"
	"github.com/rs/zerolog"
)

// MaxDelta bounds one Update.
const MaxDelta = 33 * time.Millisecond

var (
	ErrInvalidCount = errors.New("particle count must be positive")
	ErrTargetLength = errors.New("target positions length must be 3*count")
)

// Config describes an ensemble. Count is fixed for the life of the System.
type Config struct {
	Count           int        `mapstructure:"count"`
	Gravity         mgl32.Vec3 `mapstructure:"gravity"`
	Drag            float32    `mapstructure:"drag"`
	Magnetic        float32    `mapstructure:"magnetic"`
	CellSize        float32    `mapstructure:"cellSize"`
	Spread          float32    `mapstructure:"spread"`
	Size            float32    `mapstructure:"size"`
	Lifetime        float32    `mapstructure:"lifetime"` // seconds; 0 never expires
	Turbulence      float32    `mapstructure:"turbulence"`
	TurbulenceScale float32    `mapstructure:"turbulenceScale"`
	Seed            uint64     `mapstructure:"seed"` // 0 seeds from the runtime
}

// DefaultConfig returns a free-floating cloud of 600 particles.
func DefaultConfig() Config {
	return Config{
		Count:           600,
		Gravity:         mgl32.Vec3{0, -0.4, 0},
		Drag:            1.2,
		CellSize:        0.5,
		Spread:          2,
		Size:            1,
		Lifetime:        8,
		Turbulence:      0.3,
		TurbulenceScale: 0.8,
	}
}

// Option configures a System.
type Option func(*System)

// WithLogger sets the logger used for rejected inputs.
func WithLogger(l zerolog.Logger) Option {
	return func(s *System) { s.log = l }
}

// WithRand replaces the random source used for placement and splashes.
func WithRand(r *rand.Rand) Option {
	return func(s *System) { s.rng = r }
}

// System owns the particle buffers and the force field list.
type System struct {
	cfg   Config
	count int

	positions  []float32 // xyz per particle
	velocities []float32 // xyz per particle
	colors     []float32 // rgb per particle
	sizes      []float32
	lifetimes  []float32 // seconds remaining

	targets    []float32
	hasTargets bool
	magnetic   float32

	fields []ForceField
	grid   *SpatialHash
	noise  opensimplex.Noise
	rng    *rand.Rand
	log    zerolog.Logger

	elapsed float32
	cursor  int
}

// New allocates every buffer once and places the particles.
func New(cfg Config, opts ...Option) (*System, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("new particle system: %w: got %d", ErrInvalidCount, cfg.Count)
	}
	s := &System{
		cfg:        cfg,
		count:      cfg.Count,
		positions:  make([]float32, 3*cfg.Count),
		velocities: make([]float32, 3*cfg.Count),
		colors:     make([]float32, 3*cfg.Count),
		sizes:      make([]float32, cfg.Count),
		lifetimes:  make([]float32, cfg.Count),
		magnetic:   cfg.Magnetic,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	s.noise = opensimplex.New(int64(seed))
	if cfg.CellSize > 0 {
		s.grid = NewSpatialHash(cfg.CellSize)
	}
	s.Reset()
	s.log.Debug().Int("count", s.count).Float32("cellSize", cfg.CellSize).Msg("particle system ready")
	return s, nil
}

// Reset re-places every particle in the existing buffers.
func (s *System) Reset() {
	for i := range s.count {
		s.respawn(i)
		s.sizes[i] = s.cfg.Size * (0.5 + s.rng.Float32())
	}
	s.elapsed = 0
	s.cursor = 0
	if s.grid != nil {
		s.grid.Rebuild(s.positions)
	}
}

func (s *System) respawn(i int) {
	p := mgl32.Vec3{
		(s.rng.Float32()*2 - 1) * s.cfg.Spread,
		(s.rng.Float32()*2 - 1) * s.cfg.Spread,
		(s.rng.Float32()*2 - 1) * s.cfg.Spread,
	}
	s.setVec(s.positions, i, p)
	s.setVec(s.velocities, i, mgl32.Vec3{})
	s.setVec(s.colors, i, s.tint(p))
	s.lifetimes[i] = s.newLifetime()
}

// tint is a mercury silver shifted slightly by position.
func (s *System) tint(p mgl32.Vec3) mgl32.Vec3 {
	n := float32(s.noise.Eval3(float64(p[0]), float64(p[1]), float64(p[2]))) * 0.08
	return mgl32.Vec3{
		float32(vmath.Clamp01(float64(0.74 + n))),
		float32(vmath.Clamp01(float64(0.77 + n))),
		float32(vmath.Clamp01(float64(0.82 + n*1.5))),
	}
}

func (s *System) newLifetime() float32 {
	if s.cfg.Lifetime <= 0 {
		return 0
	}
	return s.cfg.Lifetime * (0.5 + s.rng.Float32())
}

func (s *System) vec(buf []float32, i int) mgl32.Vec3 {
	j := 3 * i
	return mgl32.Vec3{buf[j], buf[j+1], buf[j+2]}
}

func (s *System) setVec(buf []float32, i int, v mgl32.Vec3) {
	j := 3 * i
	buf[j], buf[j+1], buf[j+2] = v[0], v[1], v[2]
}

// Update advances every particle by dt, clamped to MaxDelta.
func (s *System) Update(dt time.Duration) {
	step := float32(vmath.Seconds(dt, MaxDelta))
	if step == 0 {
		return
	}
	s.elapsed += step
	seeking := s.hasTargets && s.magnetic > 0

	for i := range s.count {
		p := s.vec(s.positions, i)
		v := s.vec(s.velocities, i)

		f := s.cfg.Gravity
		if seeking {
			dir, _ := vmath.Direction(s.vec(s.targets, i).Sub(p))
			f = f.Add(dir.Mul(s.magnetic))
		}
		for k := range s.fields {
			f = f.Add(s.fields[k].ForceOn(p))
		}
		if s.cfg.Turbulence > 0 {
			f = f.Add(s.turbulence(p))
		}
		f = f.Sub(v.Mul(s.cfg.Drag))

		v = v.Add(f.Mul(step))
		p = p.Add(v.Mul(step))
		s.setVec(s.velocities, i, v)
		s.setVec(s.positions, i, p)

		if s.cfg.Lifetime > 0 && !seeking {
			s.lifetimes[i] -= step
			if s.lifetimes[i] <= 0 {
				s.respawn(i)
			}
		}
	}

	if s.grid != nil {
		s.grid.Rebuild(s.positions)
	}
}

// turbulence samples three decorrelated simplex channels drifting with time.
func (s *System) turbulence(p mgl32.Vec3) mgl32.Vec3 {
	k := float64(s.cfg.TurbulenceScale)
	t := float64(s.elapsed) * 0.25
	x, y, z := float64(p[0])*k, float64(p[1])*k, float64(p[2])*k
	return mgl32.Vec3{
		float32(s.noise.Eval3(x, y, z+t)),
		float32(s.noise.Eval3(y+31.4, z, x+t)),
		float32(s.noise.Eval3(z, x+57.2, y+t)),
	}.Mul(s.cfg.Turbulence)
}

// SetTargetPositions switches to shape-seeking mode. targets must hold exactly
// 3*Count() values; otherwise the call is rejected and nothing changes.
func (s *System) SetTargetPositions(targets []float32) error {
	if len(targets) != 3*s.count {
		s.log.Warn().Int("got", len(targets)).Int("want", 3*s.count).Msg("rejected target positions")
		return fmt.Errorf("set target positions: %w: got %d, want %d", ErrTargetLength, len(targets), 3*s.count)
	}
	if s.targets == nil {
		s.targets = make([]float32, 3*s.count)
	}
	copy(s.targets, targets)
	s.hasTargets = true
	return nil
}

// ClearTargets returns to free-floating mode.
func (s *System) ClearTargets() { s.hasTargets = false }

// Targets returns the target buffer, or nil in free-floating mode.
func (s *System) Targets() []float32 {
	if !s.hasTargets {
		return nil
	}
	return s.targets
}

// SetMagneticStrength sets the pull toward targets; 0 disables it.
func (s *System) SetMagneticStrength(v float32) { s.magnetic = max(v, 0) }

func (s *System) MagneticStrength() float32 { return s.magnetic }

// AddForceField appends a field. Fields persist until ClearForceFields.
func (s *System) AddForceField(f ForceField) { s.fields = append(s.fields, f) }

// ClearForceFields removes every field, keeping the backing storage.
func (s *System) ClearForceFields() { s.fields = s.fields[:0] }

// ForceFields returns a copy of the active fields.
func (s *System) ForceFields() []ForceField {
	out := make([]ForceField, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *System) Count() int { return s.count }

// Positions, Velocities, Colors, Sizes and Lifetimes expose the live buffers.
// Callers must not append to them.
func (s *System) Positions() []float32  { return s.positions }
func (s *System) Velocities() []float32 { return s.velocities }
func (s *System) Colors() []float32     { return s.colors }
func (s *System) Sizes() []float32      { return s.sizes }
func (s *System) Lifetimes() []float32  { return s.lifetimes }

// Position returns particle i.
func (s *System) Position(i int) mgl32.Vec3 { return s.vec(s.positions, i) }

// Grid returns the spatial index, or nil when CellSize is 0.
func (s *System) Grid() *SpatialHash { return s.grid }

// Elapsed is the simulated time since the last Reset.
func (s *System) Elapsed() time.Duration {
	return time.Duration(float64(s.elapsed) * float64(time.Second))
}
