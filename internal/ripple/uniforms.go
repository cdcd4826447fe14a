package ripple

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxSlots is the uniform array length the surface shader declares. It must
// not change independently of the shader source.
const MaxSlots = Capacity

// Uniforms is the per-frame ripple state handed to the shader. Slot 0 is the
// most recent ripple; unused trailing slots are zero, so their strength of 0
// lets the shader skip them.
type Uniforms struct {
	Positions [MaxSlots]mgl32.Vec2
	Strengths [MaxSlots]float32
	Ages      [MaxSlots]float32 // seconds
	Count     int32
}

// PackUniforms prunes expired ripples and packs the rest, newest first.
func (f *Field) PackUniforms(now time.Duration) Uniforms {
	f.Prune(now)

	var u Uniforms
	for i := range f.ring.len {
		e := f.ring.at(i)
		u.Positions[i] = e.Position
		u.Strengths[i] = float32(e.Strength)
		u.Ages[i] = float32((now - e.CreatedAt).Seconds())
	}
	u.Count = int32(f.ring.len)
	return u
}

// FlatPositions returns the positions as x0,y0,x1,y1,... for a vec2[] upload.
func (u *Uniforms) FlatPositions() [2 * MaxSlots]float32 {
	var out [2 * MaxSlots]float32
	for i, p := range u.Positions {
		out[2*i] = p[0]
		out[2*i+1] = p[1]
	}
	return out
}
