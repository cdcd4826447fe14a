package particles

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/olivier-w/mercury/internal/vmath"
)

// Kind selects how a force field pushes particles.
type Kind uint8

const (
	Attract Kind = iota
	Repel
	Vortex
)

func (k Kind) String() string {
	switch k {
	case Attract:
		return "attract"
	case Repel:
		return "repel"
	case Vortex:
		return "vortex"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "attract":
		return Attract, nil
	case "repel":
		return Repel, nil
	case "vortex":
		return Vortex, nil
	}
	return 0, fmt.Errorf("unknown force field kind %q", s)
}

var up = mgl32.Vec3{0, 1, 0}

// ForceField pushes particles within Radius of Position. The force falls off
// linearly from Strength at the centre to zero at the boundary. A vortex
// spins particles around Axis (+Y when zero).
type ForceField struct {
	Position mgl32.Vec3
	Strength float32
	Radius   float32
	Kind     Kind
	Axis     mgl32.Vec3
}

// ForceOn returns the force the field exerts on a particle at p.
func (f ForceField) ForceOn(p mgl32.Vec3) mgl32.Vec3 {
	if f.Radius <= 0 {
		return mgl32.Vec3{}
	}
	dir, dist := vmath.Direction(f.Position.Sub(p))
	if dist >= f.Radius {
		return mgl32.Vec3{}
	}
	scale := f.Strength * (1 - dist/f.Radius)

	switch f.Kind {
	case Attract:
		return dir.Mul(scale)
	case Repel:
		return dir.Mul(-scale)
	case Vortex:
		axis := up
		if f.Axis != (mgl32.Vec3{}) {
			axis = f.Axis.Normalize()
		}
		return axis.Cross(dir).Mul(scale)
	}
	return mgl32.Vec3{}
}
