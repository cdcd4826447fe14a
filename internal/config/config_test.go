package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/olivier-w/mercury/internal/spring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mercury.log", cfg.Log.File)
	assert.Equal(t, 60, cfg.Preview.FPS)
	assert.Equal(t, "camera", cfg.Springs.Camera)
	assert.Equal(t, "smooth", cfg.Springs.Rotation)
	assert.Equal(t, "snappy", cfg.Springs.Pointer)
	assert.False(t, cfg.Springs.Analytic)
	assert.Equal(t, 12.0, cfg.Ripple.Frequency)
	assert.Equal(t, 5*time.Second, cfg.Ripple.Lifetime)
	assert.Equal(t, 0.35, cfg.Ripple.PointerStrength)
	assert.Equal(t, 600, cfg.Particles.Count)
	assert.Equal(t, mgl32.Vec3{0, -0.4, 0}, cfg.Particles.Gravity)
	assert.Equal(t, float32(0.5), cfg.Particles.CellSize)
	assert.Equal(t, uint64(0), cfg.Particles.Seed)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mercury.toml")
	content := `
[log]
level = "debug"

[springs]
camera = "slow"
analytic = true

[ripple]
lifetime = "3s"
ageDecay = 2.5

[particles]
count = 250
gravity = [0.0, -1.0, 0.0]
seed = 9
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "slow", cfg.Springs.Camera)
	assert.True(t, cfg.Springs.Analytic)
	assert.Equal(t, 3*time.Second, cfg.Ripple.Lifetime)
	assert.Equal(t, 2.5, cfg.Ripple.AgeDecay)
	assert.Equal(t, 12.0, cfg.Ripple.Frequency, "unset keys keep defaults")
	assert.Equal(t, 250, cfg.Particles.Count)
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, cfg.Particles.Gravity)
	assert.Equal(t, uint64(9), cfg.Particles.Seed)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MERCURY_PARTICLES_COUNT", "42")
	t.Setenv("MERCURY_SPRINGS_POINTER", "wobbly")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Particles.Count)
	assert.Equal(t, "wobbly", cfg.Springs.Pointer)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/mercury.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"zero particles", "[particles]\ncount = 0\n", "particles.count"},
		{"unknown preset", "[springs]\ncamera = \"bouncy\"\n", "unknown preset"},
		{"zero fps", "[preview]\nfps = 0\n", "preview.fps"},
		{"zero lifetime", "[ripple]\nlifetime = \"0s\"\n", "ripple.lifetime"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mercury.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestDriver(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Springs.Pointer = "stiff"
	cfg.Ripple.ClickStrength = 2

	d := cfg.Driver()
	assert.Equal(t, spring.Camera, d.Camera)
	assert.Equal(t, spring.Smooth, d.Rotation)
	assert.Equal(t, spring.Stiff, d.Pointer)
	assert.Equal(t, 2.0, d.ClickStrength)
	assert.Equal(t, cfg.Particles, d.Particles)
	assert.Equal(t, cfg.Ripple.Params, d.Ripple)
}
