package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/olivier-w/mercury/internal/frame"
	"github.com/olivier-w/mercury/internal/particles"
	"github.com/olivier-w/mercury/internal/ripple"
	"github.com/olivier-w/mercury/internal/spring"
	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// PreviewConfig holds terminal preview settings.
type PreviewConfig struct {
	FPS int `mapstructure:"fps"`
}

// SpringsConfig names the preset used by each driven spring.
type SpringsConfig struct {
	Camera   string `mapstructure:"camera"`
	Rotation string `mapstructure:"rotation"`
	Pointer  string `mapstructure:"pointer"`
	Analytic bool   `mapstructure:"analytic"`
}

// RippleConfig is the wave tuning plus the strengths of input-driven ripples.
type RippleConfig struct {
	ripple.Params   `mapstructure:",squash"`
	PointerStrength float64 `mapstructure:"pointerStrength"`
	ClickStrength   float64 `mapstructure:"clickStrength"`
}

// Config is the full application configuration.
type Config struct {
	Log       LogConfig        `mapstructure:"log"`
	Preview   PreviewConfig    `mapstructure:"preview"`
	Springs   SpringsConfig    `mapstructure:"springs"`
	Ripple    RippleConfig     `mapstructure:"ripple"`
	Particles particles.Config `mapstructure:"particles"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "mercury.log")

	v.SetDefault("preview.fps", 60)

	v.SetDefault("springs.camera", "camera")
	v.SetDefault("springs.rotation", "smooth")
	v.SetDefault("springs.pointer", "snappy")
	v.SetDefault("springs.analytic", false)

	rp := ripple.DefaultParams()
	v.SetDefault("ripple.frequency", rp.Frequency)
	v.SetDefault("ripple.speed", rp.Speed)
	v.SetDefault("ripple.decay", rp.Decay)
	v.SetDefault("ripple.ageDecay", rp.AgeDecay)
	v.SetDefault("ripple.lifetime", rp.Lifetime.String())
	v.SetDefault("ripple.pointerStrength", 0.35)
	v.SetDefault("ripple.clickStrength", 1.0)

	pc := particles.DefaultConfig()
	v.SetDefault("particles.count", pc.Count)
	v.SetDefault("particles.gravity", []float64{float64(pc.Gravity[0]), float64(pc.Gravity[1]), float64(pc.Gravity[2])})
	v.SetDefault("particles.drag", pc.Drag)
	v.SetDefault("particles.magnetic", pc.Magnetic)
	v.SetDefault("particles.cellSize", pc.CellSize)
	v.SetDefault("particles.spread", pc.Spread)
	v.SetDefault("particles.size", pc.Size)
	v.SetDefault("particles.lifetime", pc.Lifetime)
	v.SetDefault("particles.turbulence", pc.Turbulence)
	v.SetDefault("particles.turbulenceScale", pc.TurbulenceScale)
	v.SetDefault("particles.seed", 0)
}

// Load reads the config file at path (any format viper understands, chosen
// by extension) over the defaults. An empty path uses defaults only.
// MERCURY_* environment variables override both, e.g. MERCURY_PARTICLES_COUNT.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MERCURY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail deep inside a simulator.
func (c Config) Validate() error {
	if c.Particles.Count <= 0 {
		return fmt.Errorf("%w: particles.count must be positive, got %d", ErrInvalid, c.Particles.Count)
	}
	if c.Preview.FPS <= 0 {
		return fmt.Errorf("%w: preview.fps must be positive, got %d", ErrInvalid, c.Preview.FPS)
	}
	if c.Ripple.Lifetime <= 0 {
		return fmt.Errorf("%w: ripple.lifetime must be positive, got %v", ErrInvalid, c.Ripple.Lifetime)
	}
	if c.Ripple.PointerStrength <= 0 || c.Ripple.ClickStrength <= 0 {
		return fmt.Errorf("%w: ripple strengths must be positive", ErrInvalid)
	}
	for key, name := range map[string]string{
		"springs.camera":   c.Springs.Camera,
		"springs.rotation": c.Springs.Rotation,
		"springs.pointer":  c.Springs.Pointer,
	} {
		if _, ok := spring.Preset(name); !ok {
			return fmt.Errorf("%w: %s: unknown preset %q (have %s)", ErrInvalid, key, name, strings.Join(spring.PresetNames(), ", "))
		}
	}
	return nil
}

// Driver translates the configuration into frame driver settings.
func (c Config) Driver() frame.Config {
	d := frame.DefaultConfig()
	d.Camera, _ = spring.Preset(c.Springs.Camera)
	d.Rotation, _ = spring.Preset(c.Springs.Rotation)
	d.Pointer, _ = spring.Preset(c.Springs.Pointer)
	d.Analytic = c.Springs.Analytic
	d.Ripple = c.Ripple.Params
	d.PointerStrength = c.Ripple.PointerStrength
	d.ClickStrength = c.Ripple.ClickStrength
	d.Particles = c.Particles
	return d
}
