package dynamo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is returned when a live particle holds a non-finite value.
	ErrInvalidState = errors.New("dynamo: non-finite particle state")

	// ErrParameterBounds marks a config or constructor argument outside its valid range.
	ErrParameterBounds = errors.New("dynamo: config value out of range")

	// ErrUnknownMode indicates an unrecognized boundary or generator name.
	ErrUnknownMode = errors.New("dynamo: unknown mode")

	// ErrNotEnoughParticles indicates an operation that needs two live particles.
	ErrNotEnoughParticles = errors.New("dynamo: not enough particles")
)

// SimulationError records the tick on which the simulator failed.
type SimulationError struct {
	Tick    int
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("tick %d: %v", e.Tick, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
