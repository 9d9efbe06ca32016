package gui

import (
	"fmt"

	"github.com/san-kum/gravsim/internal/config"
)

// param is one line of the configure screen, stepped with the arrow keys.
type param struct {
	name   string
	show   func(*config.Config) string
	adjust func(c *config.Config, steps int)
}

var params = []param{
	{
		name:   "count",
		show:   func(c *config.Config) string { return fmt.Sprint(c.Generator.Count) },
		adjust: func(c *config.Config, n int) { c.Generator.Count = max(0, c.Generator.Count+10*n) },
	},
	{
		name:   "mass",
		show:   func(c *config.Config) string { return fmt.Sprintf("%.4f", c.Generator.Mass) },
		adjust: func(c *config.Config, n int) { c.Generator.Mass = max(0.0005, c.Generator.Mass+0.0005*float64(n)) },
	},
	{
		name:   "speed",
		show:   func(c *config.Config) string { return fmt.Sprintf("%.3f", c.Generator.Speed) },
		adjust: func(c *config.Config, n int) { c.Generator.Speed = max(0, c.Generator.Speed+0.001*float64(n)) },
	},
	{
		name:   "seed",
		show:   func(c *config.Config) string { return fmt.Sprint(c.Seed) },
		adjust: func(c *config.Config, n int) { c.Seed += int64(n) },
	},
	{
		name:   "merge",
		show:   func(c *config.Config) string { return fmt.Sprint(c.Merge) },
		adjust: func(c *config.Config, _ int) { c.Merge = !c.Merge },
	},
	{
		name:   "boundary",
		show:   func(c *config.Config) string { return c.Boundary.Mode },
		adjust: func(c *config.Config, n int) { c.Boundary.Mode = config.CycleMode(config.BoundaryModes, c.Boundary.Mode, n) },
	},
	{
		name:   "generator",
		show:   func(c *config.Config) string { return c.Generator.Mode },
		adjust: func(c *config.Config, n int) { c.Generator.Mode = config.CycleMode(config.GeneratorModes, c.Generator.Mode, n) },
	},
}
