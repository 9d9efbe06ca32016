package dynamo

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/vecmath"
	"golang.org/x/exp/rand"
)

type Simulator struct {
	cfg  Config
	pop  *physics.Population
	rnd  *rand.Rand
	diag io.Writer

	zoom      float64
	ticks     int
	merges    int
	debugHeld bool

	metrics   []Metric
	observers []Observer
}

// New takes ownership of pop. Diagnostics go to stdout until
// SetDiagnostics is called.
func New(pop *physics.Population, cfg Config) (*Simulator, error) {
	if pop == nil {
		return nil, fmt.Errorf("%w: population is nil", ErrParameterBounds)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Boundary == nil {
		cfg.Boundary = physics.None{}
	}
	return &Simulator{
		cfg:       cfg,
		pop:       pop,
		rnd:       rand.New(rand.NewSource(uint64(cfg.Seed))),
		diag:      os.Stdout,
		zoom:      cfg.Zoom,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}, nil
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) SetDiagnostics(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.diag = w
}

func (s *Simulator) Config() Config                  { return s.cfg }
func (s *Simulator) Population() *physics.Population { return s.pop }
func (s *Simulator) Count() int                      { return s.pop.Len() }
func (s *Simulator) Ticks() int                      { return s.ticks }
func (s *Simulator) Zoom() float64                   { return s.zoom }

func (s *Simulator) Stats() Stats {
	return Stats{
		Tick:      s.ticks,
		Count:     s.pop.Len(),
		Merges:    s.merges,
		TotalMass: s.pop.TotalMass(),
		Zoom:      s.zoom,
	}
}

// Tick advances the simulation by one step.
func (s *Simulator) Tick(in Input) error {
	s.applyInput(in)

	s.merges += physics.Interact(s.pop, s.cfg.Params)
	physics.Advance(s.pop, s.cfg.Boundary, s.rnd)
	s.pop.Compact()
	s.ticks++

	if s.cfg.ValidateState {
		if err := s.validate(); err != nil {
			return err
		}
	}

	for _, m := range s.metrics {
		m.Observe(s.ticks, s.pop)
	}
	for _, obs := range s.observers {
		obs.OnTick(s.ticks, s.pop)
	}
	return nil
}

func (s *Simulator) applyInput(in Input) {
	var pan vecmath.Vec2
	if in.PanUp {
		pan.Y += s.cfg.PanStep
	}
	if in.PanDown {
		pan.Y -= s.cfg.PanStep
	}
	if in.PanLeft {
		pan.X -= s.cfg.PanStep
	}
	if in.PanRight {
		pan.X += s.cfg.PanStep
	}
	if pan != vecmath.Zero {
		s.pop.Each(func(_ int, p *physics.Particle) {
			p.Position.X += pan.X
			p.Position.Y += pan.Y
		})
	}

	if in.ZoomIn {
		s.zoom *= s.cfg.ZoomRatio
	}
	if in.ZoomOut {
		s.zoom /= s.cfg.ZoomRatio
	}

	if in.Debug && !s.debugHeld {
		s.printDebug()
	}
	s.debugHeld = in.Debug
}

// DebugAngles returns the direction from the first live particle to the
// second and back.
func (s *Simulator) DebugAngles() (forward, backward float64, err error) {
	if s.pop.Len() < 2 {
		return 0, 0, fmt.Errorf("%w: have %d, need 2", ErrNotEnoughParticles, s.pop.Len())
	}
	live := make([]*physics.Particle, 0, 2)
	s.pop.Each(func(_ int, p *physics.Particle) {
		if len(live) < 2 {
			live = append(live, p)
		}
	})
	a, b := live[0].Position, live[1].Position
	return vecmath.Angle(a, b), vecmath.Angle(b, a), nil
}

func (s *Simulator) printDebug() {
	fwd, back, err := s.DebugAngles()
	if err != nil {
		fmt.Fprintf(s.diag, "debug: %v\n", err)
		return
	}
	fmt.Fprintf(s.diag, "angle(p0, p1) = %f\n", fwd)
	fmt.Fprintf(s.diag, "angle(p1, p0) = %f\n", back)
	fmt.Fprintln(s.diag, "-----")
}

func (s *Simulator) validate() error {
	var bad error
	s.pop.Each(func(i int, p *physics.Particle) {
		if bad == nil && !p.IsValid() {
			bad = fmt.Errorf("%w: slot %d: %s", ErrInvalidState, i, p)
		}
	})
	if bad != nil {
		return &SimulationError{Tick: s.ticks, Wrapped: bad}
	}
	return nil
}

// Frame returns the current scene scaled by the zoom factor.
func (s *Simulator) Frame() Frame {
	ring, hasRing := s.cfg.Boundary.Overlay()
	extra := 0
	if hasRing {
		extra = 1
	}

	n := s.pop.Len() + extra
	f := Frame{
		X:     make([]float64, 0, n),
		Y:     make([]float64, 0, n),
		R:     make([]float64, 0, n),
		Count: n,
		Extra: extra,
	}

	s.pop.Each(func(_ int, p *physics.Particle) {
		f.X = append(f.X, p.Position.X*s.zoom)
		f.Y = append(f.Y, p.Position.Y*s.zoom)
		f.R = append(f.R, p.Radius*s.zoom)
	})
	if hasRing {
		f.X = append(f.X, ring.Center.X*s.zoom)
		f.Y = append(f.Y, ring.Center.Y*s.zoom)
		f.R = append(f.R, ring.Radius*s.zoom)
	}
	return f
}

// Run ticks the simulation headlessly with no input, stopping early if the
// context is canceled or a tick fails.
func (s *Simulator) Run(ctx context.Context, ticks int) (*Result, error) {
	if ticks < 0 {
		return nil, fmt.Errorf("%w: ticks must be non-negative, got %d", ErrParameterBounds, ticks)
	}

	for _, m := range s.metrics {
		m.Reset()
		m.Observe(s.ticks, s.pop)
	}

	result := &Result{
		InitialCount: s.pop.Len(),
		Metrics:      make(map[string]float64),
	}
	startMerges := s.merges

	var runErr error
	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
		default:
			runErr = s.Tick(Input{})
		}
		if runErr != nil {
			break
		}
		result.TicksTaken++
	}

	result.FinalCount = s.pop.Len()
	result.Merges = s.merges - startMerges
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, runErr
}
