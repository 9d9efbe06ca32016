package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/physics"
	"golang.org/x/exp/rand"
)

// Params converts the file-level constants into engine parameters.
func Params(cfg *config.Config) physics.Params {
	return physics.Params{
		G:             cfg.GravitationalConstant,
		RadMassFactor: cfg.RadMassFactor,
		Merge:         cfg.Merge,
		MinSeparation: cfg.MinSeparation,
	}
}

// Build validates cfg, seeds the initial population and returns a simulator
// ready for its first tick.
func (r *Registry) Build(cfg *config.Config) (*dynamo.Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	boundary, err := r.GetBoundary(cfg.Boundary)
	if err != nil {
		return nil, err
	}
	gen, err := r.GetGenerator(cfg.Generator)
	if err != nil {
		return nil, err
	}

	params := Params(cfg)
	rnd := rand.New(rand.NewSource(uint64(cfg.Seed)))
	pop, err := physics.Generate(gen, cfg.Generator.Count, params, rnd)
	if err != nil {
		return nil, fmt.Errorf("generate population: %w", err)
	}

	simCfg := dynamo.Config{
		Params:        params,
		Boundary:      boundary,
		PanStep:       cfg.View.PanStep,
		ZoomRatio:     cfg.View.ZoomRatio,
		Zoom:          cfg.View.Zoom,
		Seed:          cfg.Seed + 1,
		ValidateState: true,
	}
	return dynamo.New(pop, simCfg)
}

// Experiment is a headless run that records periodic samples.
type Experiment struct {
	cfg       *config.Config
	simulator *dynamo.Simulator
	sampler   *metrics.Sampler
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(r *Registry) error {
	sim, err := r.Build(e.cfg)
	if err != nil {
		return err
	}
	params := Params(e.cfg)
	for _, m := range r.DefaultMetrics(params) {
		sim.AddMetric(m)
	}
	e.sampler = metrics.NewSampler(e.cfg.SampleEvery, params)
	e.sampler.Record(0, sim.Population())
	sim.AddObserver(e.sampler)
	e.simulator = sim
	return nil
}

// Record is the outcome of a headless run.
type Record struct {
	Config  *config.Config
	Result  *dynamo.Result
	Samples []metrics.Sample
}

func (e *Experiment) Run(ctx context.Context) (*Record, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	result, err := e.simulator.Run(ctx, e.cfg.Ticks)
	return &Record{Config: e.cfg, Result: result, Samples: e.sampler.Samples}, err
}

// GetSimulator returns the underlying simulator for adding observers.
func (e *Experiment) GetSimulator() *dynamo.Simulator {
	return e.simulator
}
