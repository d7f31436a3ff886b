package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1e-5, cfg.Tolerance)
	assert.Equal(t, 32, cfg.MaxIterations)
	assert.Equal(t, 0.1, cfg.Restitution)
	assert.Equal(t, 1.5, cfg.BiasFactor)
	assert.Equal(t, 1000.0, cfg.ImmovableMass)
	assert.Equal(t, mgl64.Vec3{0, -10, 0}, cfg.Gravity)
	assert.NoError(t, cfg.Validate())
}

func TestDecode(t *testing.T) {
	t.Run("partial document keeps defaults", func(t *testing.T) {
		cfg, err := Decode(strings.NewReader("restitution: 0.5\ngravity: [0, -9.81, 0]\n"))
		require.NoError(t, err)

		assert.Equal(t, 0.5, cfg.Restitution)
		assert.Equal(t, mgl64.Vec3{0, -9.81, 0}, cfg.Gravity)
		assert.Equal(t, DefaultMaxIterations, cfg.MaxIterations)
		assert.Equal(t, DefaultTolerance, cfg.Tolerance)
	})

	t.Run("empty document yields defaults", func(t *testing.T) {
		cfg, err := Decode(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		_, err := Decode(strings.NewReader("substeps: 4\n"))
		assert.Error(t, err)
	})

	t.Run("invalid value is rejected", func(t *testing.T) {
		_, err := Decode(strings.NewReader("restitution: 2\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "restitution")
	})

	t.Run("encoded defaults decode back", func(t *testing.T) {
		out, err := yaml.Marshal(Default())
		require.NoError(t, err)

		cfg, err := Decode(strings.NewReader(string(out)))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "collide.yaml")
		require.NoError(t, os.WriteFile(path, []byte("workers: 4\nmax_iterations: 64\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Workers)
		assert.Equal(t, 64, cfg.MaxIterations)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.yaml")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tolerance", func(c *Config) { c.Tolerance = 0 }},
		{"zero iterations", func(c *Config) { c.MaxIterations = 0 }},
		{"negative restitution", func(c *Config) { c.Restitution = -0.1 }},
		{"negative bias", func(c *Config) { c.BiasFactor = -1 }},
		{"zero immovable mass", func(c *Config) { c.ImmovableMass = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
