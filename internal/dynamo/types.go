package dynamo

import (
	"fmt"

	"github.com/san-kum/gravsim/internal/physics"
)

// Input is the viewer's key state for one tick. Pan and zoom act while held;
// Debug fires once per press.
type Input struct {
	PanUp    bool
	PanDown  bool
	PanLeft  bool
	PanRight bool
	ZoomIn   bool
	ZoomOut  bool
	Debug    bool
}

// Frame is what a viewer draws after a tick: parallel arrays of zoomed
// centers and radii. The first Count-Extra entries are particles, the last
// Extra entries are static boundary overlays.
type Frame struct {
	X     []float64
	Y     []float64
	R     []float64
	Count int
	Extra int
}

// Particles returns the number of particle entries in the frame.
func (f Frame) Particles() int { return f.Count - f.Extra }

type Metric interface {
	Name() string
	Observe(tick int, pop *physics.Population)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(tick int, pop *physics.Population)
}

type Config struct {
	Params   physics.Params
	Boundary physics.Boundary

	PanStep   float64
	ZoomRatio float64
	Zoom      float64

	Seed          int64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Params:        physics.DefaultParams(),
		Boundary:      physics.NewSquare(),
		PanStep:       0.01,
		ZoomRatio:     1.02,
		Zoom:          1.0,
		ValidateState: true,
	}
}

func (c Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrParameterBounds, err)
	}
	if c.PanStep < 0 {
		return fmt.Errorf("%w: pan step must be non-negative, got %g", ErrParameterBounds, c.PanStep)
	}
	if c.ZoomRatio <= 0 {
		return fmt.Errorf("%w: zoom ratio must be positive, got %g", ErrParameterBounds, c.ZoomRatio)
	}
	if c.Zoom <= 0 {
		return fmt.Errorf("%w: zoom must be positive, got %g", ErrParameterBounds, c.Zoom)
	}
	return nil
}

// Stats is a snapshot of the simulation after the last tick.
type Stats struct {
	Tick      int
	Count     int
	Merges    int
	TotalMass float64
	Zoom      float64
}

type Result struct {
	TicksTaken   int
	InitialCount int
	FinalCount   int
	Merges       int
	Metrics      map[string]float64
}
