// Package ripple models the mercury surface as a sum of decaying travelling
// waves, one per impulse. The live set is a fixed ring of Capacity events;
// the newest impulse evicts the oldest and events expire after Lifetime.
package ripple

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/olivier-w/mercury/internal/vmath"
)

// Capacity is the maximum number of live ripples. It matches the uniform
// array length declared by the surface shader.
const Capacity = 10

// DefaultLifetime is the age after which a ripple contributes nothing.
const DefaultLifetime = 5 * time.Second

var ErrInvalidStrength = errors.New("ripple strength must be positive and finite")

// Event is one impulse on the surface.
type Event struct {
	ID        uint64
	Position  mgl32.Vec2
	Strength  float64
	CreatedAt time.Duration
}

// Params shapes the travelling wave.
//
//	wave = sin(d*Frequency - age*Speed) * exp(-d*Decay) * exp(-age*AgeDecay) * strength
type Params struct {
	Frequency float64       `mapstructure:"frequency"`
	Speed     float64       `mapstructure:"speed"`
	Decay     float64       `mapstructure:"decay"`
	AgeDecay  float64       `mapstructure:"ageDecay"`
	Lifetime  time.Duration `mapstructure:"lifetime"`
}

// DefaultParams returns the tuning used by the surface shader.
func DefaultParams() Params {
	return Params{
		Frequency: 12,
		Speed:     6,
		Decay:     1.5,
		AgeDecay:  1.2,
		Lifetime:  DefaultLifetime,
	}
}

// Clock reports the current time on the owner's simulation timeline.
type Clock func() time.Duration

// Option configures a Field.
type Option func(*Field)

// WithClock stamps new ripples with c instead of wall time since New.
func WithClock(c Clock) Option {
	return func(f *Field) { f.clock = c }
}

// WithParams overrides the wave tuning.
func WithParams(p Params) Option {
	return func(f *Field) { f.params = p }
}

// Field owns the live ripples.
type Field struct {
	ring   ring
	params Params
	clock  Clock
	nextID uint64
}

// New creates an empty field.
func New(opts ...Option) *Field {
	f := &Field{params: DefaultParams()}
	for _, opt := range opts {
		opt(f)
	}
	if f.clock == nil {
		start := time.Now()
		f.clock = func() time.Duration { return time.Since(start) }
	}
	if f.params.Lifetime <= 0 {
		f.params.Lifetime = DefaultLifetime
	}
	return f
}

// Params returns the wave tuning in use.
func (f *Field) Params() Params { return f.params }

// AddRipple records an impulse at pos stamped with the field clock. When the
// ring is full the oldest ripple is evicted.
func (f *Field) AddRipple(pos mgl32.Vec2, strength float64) (Event, error) {
	if strength <= 0 || !vmath.Finite(strength) {
		return Event{}, fmt.Errorf("add ripple: %w: got %v", ErrInvalidStrength, strength)
	}
	f.nextID++
	e := Event{
		ID:        f.nextID,
		Position:  pos,
		Strength:  strength,
		CreatedAt: f.clock(),
	}
	f.ring.push(e)
	return e, nil
}

// Len returns the number of ripples held, including any not yet pruned.
func (f *Field) Len() int { return f.ring.len }

// Clear drops every ripple.
func (f *Field) Clear() { f.ring.clear() }

// Live returns the held ripples, most recent first.
func (f *Field) Live() []Event {
	out := make([]Event, f.ring.len)
	for i := range out {
		out[i] = f.ring.at(i)
	}
	return out
}

// Prune removes ripples whose age has reached the lifetime and returns how
// many were dropped. Ripples are ordered by creation, so only the tail ages out.
func (f *Field) Prune(now time.Duration) int {
	dropped := 0
	for f.ring.len > 0 && now-f.ring.oldest().CreatedAt >= f.params.Lifetime {
		f.ring.dropOldest()
		dropped++
	}
	return dropped
}

// Evaluate sums the displacement of every live ripple at p. Expired ripples
// contribute zero whether or not they have been pruned yet.
func (f *Field) Evaluate(p mgl32.Vec2, now time.Duration) float64 {
	sum := 0.0
	for i := range f.ring.len {
		sum += f.Contribution(f.ring.at(i), p, now)
	}
	return sum
}

// Contribution is the displacement one ripple adds at p. The wave is
// additive, so a sample exactly on the ripple centre needs no guard.
func (f *Field) Contribution(e Event, p mgl32.Vec2, now time.Duration) float64 {
	age := now - e.CreatedAt
	if age < 0 || age >= f.params.Lifetime {
		return 0
	}
	d := float64(p.Sub(e.Position).Len())
	a := age.Seconds()
	wave := math.Sin(d*f.params.Frequency - a*f.params.Speed)
	return wave * f.Envelope(e, d, age)
}

// Envelope is the amplitude bound of a ripple at distance d and the given age.
// It never increases with age and is zero from the lifetime on.
func (f *Field) Envelope(e Event, d float64, age time.Duration) float64 {
	if age < 0 || age >= f.params.Lifetime {
		return 0
	}
	return math.Exp(-d*f.params.Decay) * math.Exp(-age.Seconds()*f.params.AgeDecay) * e.Strength
}

// Sample fills a cols×rows row-major heightmap covering [-extent, extent]²
// and returns it, reusing dst when it is large enough.
func (f *Field) Sample(dst []float64, cols, rows int, extent float64, now time.Duration) []float64 {
	n := cols * rows
	if n <= 0 {
		return dst[:0]
	}
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	for r := range rows {
		y := cellCenter(r, rows, extent)
		for c := range cols {
			x := cellCenter(c, cols, extent)
			dst[r*cols+c] = f.Evaluate(mgl32.Vec2{float32(x), float32(y)}, now)
		}
	}
	return dst
}

func cellCenter(i, n int, extent float64) float64 {
	return -extent + (float64(i)+0.5)/float64(n)*2*extent
}
