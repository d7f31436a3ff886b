// Package config holds the tolerances and physical constants shared by the
// collision query and the collision responder.
package config

import (
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTolerance     = 1e-5
	DefaultMaxIterations = 32
	DefaultRestitution   = 0.1
	DefaultBiasFactor    = 1.5
	DefaultImmovableMass = 1000.0
	DefaultWorkers       = 1
)

// Config is passed explicitly to the GJK query and to the responder.
type Config struct {
	// Tolerance is the absolute threshold under which a simplex feature is
	// considered degenerate (colinear, coplanar, or touching the origin).
	Tolerance float64 `yaml:"tolerance"`
	// MaxIterations caps the GJK loop. Past the cap the pair is reported as not colliding.
	MaxIterations int `yaml:"max_iterations"`
	// Restitution is the bounce coefficient: 0 absorbs, 1 is perfectly elastic.
	Restitution float64 `yaml:"restitution"`
	// BiasFactor scales the penetration depth subtracted from each impulse.
	BiasFactor float64 `yaml:"bias_factor"`
	// ImmovableMass is the mass above which a body gets an inverse mass of 0.
	ImmovableMass float64 `yaml:"immovable_mass"`
	// Gravity acceleration (m/s²)
	Gravity mgl64.Vec3 `yaml:"gravity"`
	// Workers bounds the goroutines used to integrate bodies.
	Workers int `yaml:"workers"`
}

// Default returns the reference tuning.
func Default() Config {
	return Config{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Restitution:   DefaultRestitution,
		BiasFactor:    DefaultBiasFactor,
		ImmovableMass: DefaultImmovableMass,
		Gravity:       mgl64.Vec3{0, -10, 0},
		Workers:       DefaultWorkers,
	}
}

// Decode reads a YAML document on top of the defaults: omitted keys keep their default value.
// Unknown keys are rejected. An empty document yields Default().
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load decodes the YAML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "open config %q", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %q", path)
	}

	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.Tolerance <= 0:
		return errors.Errorf("invalid config: tolerance must be > 0, got %v", c.Tolerance)
	case c.MaxIterations <= 0:
		return errors.Errorf("invalid config: max_iterations must be > 0, got %d", c.MaxIterations)
	case c.Restitution < 0 || c.Restitution > 1:
		return errors.Errorf("invalid config: restitution must be in [0, 1], got %v", c.Restitution)
	case c.BiasFactor < 0:
		return errors.Errorf("invalid config: bias_factor must be >= 0, got %v", c.BiasFactor)
	case c.ImmovableMass <= 0:
		return errors.Errorf("invalid config: immovable_mass must be > 0, got %v", c.ImmovableMass)
	case c.Workers < 0:
		return errors.Errorf("invalid config: workers must be >= 0, got %d", c.Workers)
	}

	return nil
}
