package automation

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/experiment"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var setters = map[string]func(*config.Config, float64){
	"count":           func(c *config.Config, v float64) { c.Generator.Count = int(v) },
	"mass":            func(c *config.Config, v float64) { c.Generator.Mass = v },
	"speed":           func(c *config.Config, v float64) { c.Generator.Speed = v },
	"g":               func(c *config.Config, v float64) { c.GravitationalConstant = v },
	"rad_mass_factor": func(c *config.Config, v float64) { c.RadMassFactor = v },
	"damping":         func(c *config.Config, v float64) { c.Boundary.Damping = v },
	"extent":          func(c *config.Config, v float64) { c.Boundary.Extent = v },
}

// wholeParams only take integer values.
var wholeParams = map[string]bool{"count": true}

// SweepParams lists the parameter names a Grid accepts.
func SweepParams() []string {
	names := make([]string, 0, len(setters))
	for k := range setters {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Axis is one swept parameter.
type Axis struct {
	Param  string
	Values []float64
}

// ParseAxis reads "name=v1,v2,...".
func ParseAxis(s string) (Axis, error) {
	name, list, ok := strings.Cut(s, "=")
	if !ok || list == "" {
		return Axis{}, fmt.Errorf("axis %q: want name=v1,v2", s)
	}
	if _, ok := setters[name]; !ok {
		return Axis{}, fmt.Errorf("%w: sweep parameter %q (have %v)", dynamo.ErrUnknownMode, name, SweepParams())
	}
	var vals []float64
	for _, f := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Axis{}, fmt.Errorf("axis %q: %w", s, err)
		}
		if wholeParams[name] && v != math.Trunc(v) {
			return Axis{}, fmt.Errorf("%w: axis %q: %s needs whole numbers, got %g", dynamo.ErrParameterBounds, s, name, v)
		}
		vals = append(vals, v)
	}
	return Axis{Param: name, Values: vals}, nil
}

// Grid runs every combination of axis values, each with Seeds consecutive
// seeds starting at Base.Seed.
type Grid struct {
	Base    *config.Config
	Axes    []Axis
	Seeds   int
	Workers int
}

// Point is one run of the grid.
type Point struct {
	Values map[string]float64
	Seed   int64
	Result *dynamo.Result
}

// Points expands the grid without running it.
func (g *Grid) Points() ([]Point, error) {
	for _, a := range g.Axes {
		if _, ok := setters[a.Param]; !ok {
			return nil, fmt.Errorf("%w: sweep parameter %q", dynamo.ErrUnknownMode, a.Param)
		}
	}
	seeds := max(1, g.Seeds)

	var points []Point
	var expand func(depth int, current map[string]float64)
	expand = func(depth int, current map[string]float64) {
		if depth == len(g.Axes) {
			for s := 0; s < seeds; s++ {
				vals := make(map[string]float64, len(current))
				for k, v := range current {
					vals[k] = v
				}
				points = append(points, Point{Values: vals, Seed: g.Base.Seed + int64(s)})
			}
			return
		}
		axis := g.Axes[depth]
		for _, v := range axis.Values {
			current[axis.Param] = v
			expand(depth+1, current)
		}
		delete(current, axis.Param)
	}
	expand(0, map[string]float64{})
	return points, nil
}

func (g *Grid) configFor(p Point) (*config.Config, error) {
	cfg := g.Base.Clone()
	cfg.Seed = p.Seed
	for name, v := range p.Values {
		setters[name](cfg, v)
	}
	return cfg, cfg.Validate()
}

// Run executes all points, at most Workers at a time. Every simulation
// still runs on a single goroutine.
func (g *Grid) Run(ctx context.Context, registry *experiment.Registry) ([]Point, error) {
	points, err := g.Points()
	if err != nil {
		return nil, err
	}

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range points {
		eg.Go(func() error {
			cfg, err := g.configFor(points[i])
			if err != nil {
				return fmt.Errorf("point %v: %w", points[i].Values, err)
			}
			exp := experiment.New(cfg)
			if err := exp.Setup(registry); err != nil {
				return err
			}
			rec, err := exp.Run(ctx)
			if err != nil {
				return err
			}
			points[i].Result = rec.Result
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// MetricValue reads a named metric from a result. final_count, merges and
// ticks are taken from the result itself.
func MetricValue(r *dynamo.Result, name string) (float64, bool) {
	switch name {
	case "final_count":
		return float64(r.FinalCount), true
	case "merges":
		return float64(r.Merges), true
	case "ticks":
		return float64(r.TicksTaken), true
	}
	v, ok := r.Metrics[name]
	return v, ok
}

// Summary aggregates one metric over the seeds of a grid cell.
type Summary struct {
	Values map[string]float64
	Runs   int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize groups points by their axis values, in grid order.
func Summarize(points []Point, metric string) ([]Summary, error) {
	var order []string
	groups := map[string][]Point{}
	for _, p := range points {
		k := cellKey(p.Values)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], p)
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		group := groups[k]
		xs := make([]float64, 0, len(group))
		for _, p := range group {
			if p.Result == nil {
				return nil, fmt.Errorf("point %v has not run", p.Values)
			}
			v, ok := MetricValue(p.Result, metric)
			if !ok {
				return nil, fmt.Errorf("unknown metric %q", metric)
			}
			xs = append(xs, v)
		}
		mean, std := stat.MeanStdDev(xs, nil)
		if len(xs) < 2 {
			std = 0
		}
		out = append(out, Summary{
			Values: group[0].Values,
			Runs:   len(xs),
			Mean:   mean,
			StdDev: std,
			Min:    floats.Min(xs),
			Max:    floats.Max(xs),
		})
	}
	return out, nil
}

// Best returns the summary with the lowest mean, or the highest when
// maximize is set.
func Best(summaries []Summary, maximize bool) (Summary, bool) {
	if len(summaries) == 0 {
		return Summary{}, false
	}
	best, bestVal := 0, math.Inf(1)
	for i, s := range summaries {
		v := s.Mean
		if maximize {
			v = -v
		}
		if v < bestVal {
			best, bestVal = i, v
		}
	}
	return summaries[best], true
}

func cellKey(values map[string]float64) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%g;", k, values[k])
	}
	return b.String()
}

// FormatValues renders axis values in a stable order, e.g. "count=100 mass=0.005".
func FormatValues(values map[string]float64) string {
	return strings.ReplaceAll(strings.TrimSuffix(cellKey(values), ";"), ";", " ")
}
