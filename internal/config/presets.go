package config

import "sort"

// Presets are complete configurations selectable by name.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"box": with(func(c *Config) {
		c.Generator.Mode = GeneratorRandomVelocity
		c.Generator.Count = 300
		c.Generator.Mass = 0.01
		c.Generator.Speed = 0.005
	}),
	"calm": with(func(c *Config) {
		c.Generator.Mode = GeneratorRandomStill
		c.Generator.Count = 250
	}),
	"ring": with(func(c *Config) {
		c.Boundary.Mode = BoundaryCircular
		c.Generator.Mode = GeneratorRandomVelocity
		c.Generator.Count = 300
	}),
	"fountain": with(func(c *Config) {
		c.Boundary.Mode = BoundaryTeleportCenter
		c.Generator.Mode = GeneratorOutward
	}),
	"scatter": with(func(c *Config) {
		c.Boundary.Mode = BoundaryTeleportRandom
		c.Generator.Mode = GeneratorOutward
		c.Generator.Speed = 0.02
	}),
	"belt": with(func(c *Config) {
		c.Boundary.Mode = BoundaryNone
		c.Generator.Mode = GeneratorAsteroidBelt
		c.Generator.Count = 300
		c.View.Zoom = 0.3
	}),
	"binary": with(func(c *Config) {
		c.Boundary.Mode = BoundaryNone
		c.Generator.Mode = GeneratorRandomStill
		c.Generator.Count = 2
		c.Seed = 4
	}),
}

func with(fn func(*Config)) *Config {
	c := DefaultConfig()
	fn(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
