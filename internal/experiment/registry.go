package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/physics"
)

// Registry maps configuration mode names to boundary and generator variants.
type Registry struct {
	boundaries map[string]func(config.BoundaryConfig) physics.Boundary
	generators map[string]func(config.GeneratorConfig) physics.Generator
}

func NewRegistry() *Registry {
	r := &Registry{
		boundaries: make(map[string]func(config.BoundaryConfig) physics.Boundary),
		generators: make(map[string]func(config.GeneratorConfig) physics.Generator),
	}

	r.boundaries[config.BoundaryNone] = func(config.BoundaryConfig) physics.Boundary { return physics.None{} }
	r.boundaries[config.BoundarySquare] = func(c config.BoundaryConfig) physics.Boundary {
		return physics.Square{HalfExtent: c.Extent, Damping: c.Damping}
	}
	r.boundaries[config.BoundaryCircular] = func(c config.BoundaryConfig) physics.Boundary {
		return physics.Circular{Radius: c.Extent}
	}
	r.boundaries[config.BoundaryTeleportCenter] = func(c config.BoundaryConfig) physics.Boundary {
		return physics.TeleportCenter{Radius: c.Extent}
	}
	r.boundaries[config.BoundaryTeleportRandom] = func(c config.BoundaryConfig) physics.Boundary {
		return physics.TeleportRandom{Radius: c.Extent}
	}

	r.generators[config.GeneratorRandomStill] = func(c config.GeneratorConfig) physics.Generator {
		return physics.RandomStill{Mass: c.Mass}
	}
	r.generators[config.GeneratorRandomVelocity] = func(c config.GeneratorConfig) physics.Generator {
		return physics.RandomVelocity{Mass: c.Mass, MaxSpeed: c.Speed}
	}
	r.generators[config.GeneratorOutward] = func(c config.GeneratorConfig) physics.Generator {
		return physics.Outward{Mass: c.Mass, Speed: c.Speed}
	}
	r.generators[config.GeneratorAsteroidBelt] = func(c config.GeneratorConfig) physics.Generator {
		return physics.AsteroidBelt{
			Mass:          c.Mass,
			InnerRadius:   c.InnerRadius,
			OuterRadius:   c.OuterRadius,
			CentralFactor: c.CentralFactor,
			OrbitBoost:    c.OrbitBoost,
		}
	}

	return r
}

func (r *Registry) GetBoundary(c config.BoundaryConfig) (physics.Boundary, error) {
	fn, ok := r.boundaries[c.Mode]
	if !ok {
		return nil, fmt.Errorf("%w: boundary %q", dynamo.ErrUnknownMode, c.Mode)
	}
	return fn(c), nil
}

func (r *Registry) GetGenerator(c config.GeneratorConfig) (physics.Generator, error) {
	fn, ok := r.generators[c.Mode]
	if !ok {
		return nil, fmt.Errorf("%w: generator %q", dynamo.ErrUnknownMode, c.Mode)
	}
	return fn(c), nil
}

func (r *Registry) ListBoundaries() []string { return sortedKeys(r.boundaries) }
func (r *Registry) ListGenerators() []string { return sortedKeys(r.generators) }

func (r *Registry) DefaultMetrics(params physics.Params) []dynamo.Metric {
	return []dynamo.Metric{
		metrics.NewMassDrift(),
		metrics.NewMomentumDrift(),
		metrics.NewEnergyDrift(params),
		metrics.NewSurvivors(),
		metrics.NewLargest(),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
