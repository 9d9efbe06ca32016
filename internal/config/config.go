package config

import (
	"fmt"
	"os"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const (
	DefaultG             = physics.DefaultG
	DefaultRadMassFactor = physics.DefaultRadMassFactor
	DefaultMinSeparation = physics.DefaultMinSeparation
	DefaultTicks         = 2000
	DefaultSampleEvery   = 10
	DefaultCount         = 400
	DefaultMass          = 0.005
	DefaultSpeed         = 0.01
	DefaultExtent        = 1.0
	DefaultDamping       = 0.5
	DefaultPanStep       = 0.01
	DefaultZoomRatio     = 1.02
)

// Boundary mode names.
const (
	BoundaryNone           = "none"
	BoundarySquare         = "square"
	BoundaryCircular       = "circular"
	BoundaryTeleportCenter = "teleport-center"
	BoundaryTeleportRandom = "teleport-random"
)

// Generator mode names.
const (
	GeneratorRandomStill    = "random-still"
	GeneratorRandomVelocity = "random-velocity"
	GeneratorOutward        = "outward"
	GeneratorAsteroidBelt   = "asteroid-belt"
)

var (
	BoundaryModes  = []string{BoundaryNone, BoundarySquare, BoundaryCircular, BoundaryTeleportCenter, BoundaryTeleportRandom}
	GeneratorModes = []string{GeneratorRandomStill, GeneratorRandomVelocity, GeneratorOutward, GeneratorAsteroidBelt}
)

type Config struct {
	GravitationalConstant float64         `yaml:"gravitational_constant"`
	RadMassFactor         float64         `yaml:"rad_mass_factor"`
	Merge                 bool            `yaml:"merge"`
	MinSeparation         float64         `yaml:"min_separation"`
	Seed                  int64           `yaml:"seed"`
	Ticks                 int             `yaml:"ticks"`
	SampleEvery           int             `yaml:"sample_every"`
	Boundary              BoundaryConfig  `yaml:"boundary"`
	Generator             GeneratorConfig `yaml:"generator"`
	View                  ViewConfig      `yaml:"view"`
}

type BoundaryConfig struct {
	Mode    string  `yaml:"mode"`
	Extent  float64 `yaml:"extent"`
	Damping float64 `yaml:"damping"`
}

type GeneratorConfig struct {
	Mode          string  `yaml:"mode"`
	Count         int     `yaml:"count"`
	Mass          float64 `yaml:"mass"`
	Speed         float64 `yaml:"speed"`
	InnerRadius   float64 `yaml:"inner_radius"`
	OuterRadius   float64 `yaml:"outer_radius"`
	CentralFactor float64 `yaml:"central_factor"`
	OrbitBoost    float64 `yaml:"orbit_boost"`
}

type ViewConfig struct {
	PanStep   float64 `yaml:"pan_step"`
	ZoomRatio float64 `yaml:"zoom_ratio"`
	Zoom      float64 `yaml:"zoom"`
}

func DefaultConfig() *Config {
	return &Config{
		GravitationalConstant: DefaultG,
		RadMassFactor:         DefaultRadMassFactor,
		Merge:                 true,
		MinSeparation:         DefaultMinSeparation,
		Ticks:                 DefaultTicks,
		SampleEvery:           DefaultSampleEvery,
		Boundary: BoundaryConfig{
			Mode:    BoundarySquare,
			Extent:  DefaultExtent,
			Damping: DefaultDamping,
		},
		Generator: GeneratorConfig{
			Mode:          GeneratorOutward,
			Count:         DefaultCount,
			Mass:          DefaultMass,
			Speed:         DefaultSpeed,
			InnerRadius:   1.7,
			OuterRadius:   2.9,
			CentralFactor: 10,
			OrbitBoost:    1.1,
		},
		View: ViewConfig{
			PanStep:   DefaultPanStep,
			ZoomRatio: DefaultZoomRatio,
			Zoom:      1.0,
		},
	}
}

// Load reads a YAML file on top of the defaults, so a file only needs the
// keys it changes.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the keys present in a YAML file onto cfg, leaving the
// rest of cfg as it was.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a copy that can be modified without touching c, which
// matters for the shared preset table.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Validate reports every problem in c at once.
func (c *Config) Validate() error {
	var errs error
	bounds := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s", dynamo.ErrParameterBounds, fmt.Sprintf(format, args...)))
	}

	if c.GravitationalConstant < 0 {
		bounds("gravitational_constant must be non-negative, got %g", c.GravitationalConstant)
	}
	if c.RadMassFactor <= 0 {
		bounds("rad_mass_factor must be positive, got %g", c.RadMassFactor)
	}
	if c.MinSeparation <= 0 {
		bounds("min_separation must be positive, got %g", c.MinSeparation)
	}
	if c.Ticks < 0 {
		bounds("ticks must be non-negative, got %d", c.Ticks)
	}
	if c.SampleEvery <= 0 {
		bounds("sample_every must be positive, got %d", c.SampleEvery)
	}

	if !contains(BoundaryModes, c.Boundary.Mode) {
		errs = multierr.Append(errs, fmt.Errorf("%w: boundary %q", dynamo.ErrUnknownMode, c.Boundary.Mode))
	}
	if c.Boundary.Mode != BoundaryNone && c.Boundary.Extent <= 0 {
		bounds("boundary.extent must be positive, got %g", c.Boundary.Extent)
	}
	if c.Boundary.Damping < 0 {
		bounds("boundary.damping must be non-negative, got %g", c.Boundary.Damping)
	}

	g := c.Generator
	if !contains(GeneratorModes, g.Mode) {
		errs = multierr.Append(errs, fmt.Errorf("%w: generator %q", dynamo.ErrUnknownMode, g.Mode))
	}
	if g.Count < 0 {
		bounds("generator.count must be non-negative, got %d", g.Count)
	}
	if g.Mass <= 0 {
		bounds("generator.mass must be positive, got %g", g.Mass)
	}
	if g.Speed < 0 {
		bounds("generator.speed must be non-negative, got %g", g.Speed)
	}
	if g.Mode == GeneratorAsteroidBelt {
		if g.InnerRadius <= 0 || g.OuterRadius < g.InnerRadius {
			bounds("generator radii must satisfy 0 < inner <= outer, got [%g, %g]", g.InnerRadius, g.OuterRadius)
		}
		if g.CentralFactor <= 0 {
			bounds("generator.central_factor must be positive, got %g", g.CentralFactor)
		}
	}

	if c.View.PanStep < 0 {
		bounds("view.pan_step must be non-negative, got %g", c.View.PanStep)
	}
	if c.View.ZoomRatio <= 0 {
		bounds("view.zoom_ratio must be positive, got %g", c.View.ZoomRatio)
	}
	if c.View.Zoom <= 0 {
		bounds("view.zoom must be positive, got %g", c.View.Zoom)
	}

	return errs
}

// CycleMode returns the mode n steps after current in modes, wrapping in
// both directions. An unknown current yields the first mode.
func CycleMode(modes []string, current string, n int) string {
	for i, m := range modes {
		if m == current {
			k := (i + n) % len(modes)
			if k < 0 {
				k += len(modes)
			}
			return modes[k]
		}
	}
	return modes[0]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
