// Package frame steps every simulator once per rendered frame in a fixed
// order (springs, then ripples, then particles) and hands their outputs to
// the renderer as plain data.
package frame

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/olivier-w/mercury/internal/particles"
	"github.com/olivier-w/mercury/internal/ripple"
	"github.com/olivier-w/mercury/internal/spring"
	"github.com/rs/zerolog"
)

// Config gathers what the driver needs to build its simulators.
type Config struct {
	Camera   spring.Config
	Rotation spring.Config
	Pointer  spring.Config
	Analytic bool

	Ripple          ripple.Params
	PointerStrength float64
	ClickStrength   float64

	Particles        particles.Config
	ShapeMagnetic    float32
	ShapeScale       float32
	SplashCount      int
	SplashForce      float32
	PointerField     particles.ForceField
	CameraDistance   float64
	PointerMinTravel float32
}

// DefaultConfig returns the presentation's standard tuning.
func DefaultConfig() Config {
	return Config{
		Camera:           spring.Camera,
		Rotation:         spring.Smooth,
		Pointer:          spring.Snappy,
		Ripple:           ripple.DefaultParams(),
		PointerStrength:  0.35,
		ClickStrength:    1,
		Particles:        particles.DefaultConfig(),
		ShapeMagnetic:    2.5,
		ShapeScale:       1.2,
		SplashCount:      40,
		SplashForce:      3,
		PointerField:     particles.ForceField{Strength: 2.5, Radius: 1.2, Kind: particles.Vortex},
		CameraDistance:   6,
		PointerMinTravel: 0.05,
	}
}

// Frame is everything the renderer consumes for one frame.
type Frame struct {
	Elapsed  time.Duration
	Delta    time.Duration
	Camera   mgl32.Vec3
	Rotation mgl32.Vec3 // euler angles, radians
	Pointer  mgl32.Vec3
	View     mgl32.Mat4
	Model    mgl32.Mat4
	Ripples  ripple.Uniforms

	// Particle buffers alias the system's storage and are valid until the
	// next Step.
	Positions []float32
	Colors    []float32
	Sizes     []float32

	CameraAtRest bool
}

// Driver owns one instance of every simulator.
type Driver struct {
	cfg Config
	log zerolog.Logger

	camera   *spring.Vector
	rotation *spring.Vector
	pointer  *spring.Vector

	ripples   *ripple.Field
	particles *particles.System
	static    []particles.ForceField

	elapsed    time.Duration
	lastRipple mgl32.Vec2
	shape      bool
}

// NewDriver builds the simulators described by cfg.
func NewDriver(cfg Config, log zerolog.Logger) (*Driver, error) {
	d := &Driver{cfg: cfg, log: log}

	newVector := spring.NewVector
	if cfg.Analytic {
		newVector = spring.NewAnalyticVector
	}
	var err error
	if d.camera, err = newVector(mgl64.Vec3{0, 0, cfg.CameraDistance}, cfg.Camera); err != nil {
		return nil, fmt.Errorf("camera spring: %w", err)
	}
	if d.rotation, err = newVector(mgl64.Vec3{}, cfg.Rotation); err != nil {
		return nil, fmt.Errorf("rotation spring: %w", err)
	}
	if d.pointer, err = newVector(mgl64.Vec3{}, cfg.Pointer); err != nil {
		return nil, fmt.Errorf("pointer spring: %w", err)
	}

	d.ripples = ripple.New(ripple.WithClock(d.Elapsed), ripple.WithParams(cfg.Ripple))
	if d.particles, err = particles.New(cfg.Particles, particles.WithLogger(log)); err != nil {
		return nil, err
	}
	return d, nil
}

// Elapsed is the simulated time since the driver was created.
func (d *Driver) Elapsed() time.Duration { return d.elapsed }

func (d *Driver) Ripples() *ripple.Field        { return d.ripples }
func (d *Driver) Particles() *particles.System  { return d.particles }
func (d *Driver) CameraSpring() *spring.Vector  { return d.camera }
func (d *Driver) PointerSpring() *spring.Vector { return d.pointer }

// AddForceField registers a field that is applied on every frame.
func (d *Driver) AddForceField(f particles.ForceField) { d.static = append(d.static, f) }

// PointerMove takes a pointer position on the surface in [-1, 1]². The pointer
// spring follows it, the camera leans toward it and the object tilts. Moving
// far enough from the last ripple drops a small one.
func (d *Driver) PointerMove(x, y float32) {
	d.pointer.SetTarget(mgl64.Vec3{float64(x), float64(y), 0})
	d.rotation.SetTarget(mgl64.Vec3{float64(y) * 0.4, float64(x) * 0.6, 0})
	d.camera.SetTarget(mgl64.Vec3{float64(x) * 0.8, float64(y) * 0.5, d.cfg.CameraDistance})

	p := mgl32.Vec2{x, y}
	if p.Sub(d.lastRipple).Len() < d.cfg.PointerMinTravel {
		return
	}
	d.lastRipple = p
	if _, err := d.ripples.AddRipple(p, d.cfg.PointerStrength); err != nil {
		d.log.Debug().Err(err).Msg("pointer ripple dropped")
	}
}

// Click drops a full-strength ripple and splashes particles at the point.
func (d *Driver) Click(x, y float32) {
	p := mgl32.Vec2{x, y}
	d.lastRipple = p
	if _, err := d.ripples.AddRipple(p, d.cfg.ClickStrength); err != nil {
		d.log.Debug().Err(err).Msg("click ripple dropped")
	}
	d.particles.Splash(mgl32.Vec3{x, y, 0}, d.cfg.SplashCount, d.cfg.SplashForce)
}

// ToggleShape switches the particles between free-floating and converging on
// the head silhouette. It reports the new state.
func (d *Driver) ToggleShape() bool {
	if d.shape {
		d.particles.ClearTargets()
		d.particles.SetMagneticStrength(d.cfg.Particles.Magnetic)
		d.shape = false
		return false
	}
	targets := particles.GenerateHeadShape(d.particles.Count(), d.cfg.ShapeScale, nil)
	if err := d.particles.SetTargetPositions(targets); err != nil {
		d.log.Warn().Err(err).Msg("shape mode unavailable")
		return false
	}
	d.particles.SetMagneticStrength(d.cfg.ShapeMagnetic)
	d.shape = true
	return true
}

// Shape reports whether shape-seeking mode is on.
func (d *Driver) Shape() bool { return d.shape }

// Reset snaps every spring home, clears ripples and re-places particles.
func (d *Driver) Reset() {
	d.camera.Snap(mgl64.Vec3{0, 0, d.cfg.CameraDistance})
	d.rotation.Snap(mgl64.Vec3{})
	d.pointer.Snap(mgl64.Vec3{})
	d.ripples.Clear()
	d.particles.Reset()
	d.lastRipple = mgl32.Vec2{}
}

// Step advances every simulator by dt and returns the frame to render.
func (d *Driver) Step(dt time.Duration) Frame {
	if dt < 0 {
		dt = 0
	}
	d.elapsed += dt

	// Springs first; later stages read their output.
	cam := toVec32(d.camera.Update(dt))
	rot := toVec32(d.rotation.Update(dt))
	ptr := toVec32(d.pointer.Update(dt))

	uniforms := d.ripples.PackUniforms(d.elapsed)

	d.particles.ClearForceFields()
	for _, f := range d.static {
		d.particles.AddForceField(f)
	}
	if d.cfg.PointerField.Radius > 0 {
		f := d.cfg.PointerField
		f.Position = ptr
		d.particles.AddForceField(f)
	}
	d.particles.Update(dt)

	return Frame{
		Elapsed:      d.elapsed,
		Delta:        dt,
		Camera:       cam,
		Rotation:     rot,
		Pointer:      ptr,
		View:         mgl32.LookAtV(cam, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
		Model:        modelMatrix(rot),
		Ripples:      uniforms,
		Positions:    d.particles.Positions(),
		Colors:       d.particles.Colors(),
		Sizes:        d.particles.Sizes(),
		CameraAtRest: d.camera.IsAtRest(1e-3),
	}
}

func toVec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func modelMatrix(rot mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(rot[1]).Mul4(mgl32.HomogRotate3DX(rot[0])).Mul4(mgl32.HomogRotate3DZ(rot[2]))
}

// Project maps a world point through view and a perspective projection to
// normalised device coordinates. ok is false behind the camera.
func Project(view mgl32.Mat4, aspect float32, p mgl32.Vec3) (x, y float32, ok bool) {
	proj := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100)
	clip := proj.Mul4(view).Mul4x1(p.Vec4(1))
	if clip[3] <= 1e-6 {
		return 0, 0, false
	}
	x, y = clip[0]/clip[3], clip[1]/clip[3]
	if math.IsNaN(float64(x)) || math.IsNaN(float64(y)) {
		return 0, 0, false
	}
	return x, y, true
}
