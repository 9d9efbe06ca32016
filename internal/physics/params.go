package physics

import "fmt"

const (
	DefaultG             = 1e-6
	DefaultRadMassFactor = 20.0
	DefaultMinSeparation = 1e-6
)

// Params holds the constants shared by every pass of a tick.
type Params struct {
	G             float64
	RadMassFactor float64
	Merge         bool
	// MinSeparation clamps the pair distance used by the force formula.
	MinSeparation float64
}

func DefaultParams() Params {
	return Params{
		G:             DefaultG,
		RadMassFactor: DefaultRadMassFactor,
		Merge:         true,
		MinSeparation: DefaultMinSeparation,
	}
}

func (p Params) Validate() error {
	if p.G < 0 {
		return fmt.Errorf("%w: gravitational constant must be non-negative, got %g", ErrParameterBounds, p.G)
	}
	if p.RadMassFactor <= 0 {
		return fmt.Errorf("%w: radius-mass factor must be positive, got %g", ErrParameterBounds, p.RadMassFactor)
	}
	if p.MinSeparation <= 0 {
		return fmt.Errorf("%w: minimum separation must be positive, got %g", ErrParameterBounds, p.MinSeparation)
	}
	return nil
}
