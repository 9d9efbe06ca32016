package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/gravsim/internal/vecmath"
	"golang.org/x/exp/rand"
)

// Generator seeds the initial population. The set of variants is closed:
// RandomStill, RandomVelocity, Outward and AsteroidBelt.
type Generator interface {
	Name() string
	generate(n int, params Params, rnd *rand.Rand) ([]Particle, error)
}

// Generate builds a population of n particles. It is meant to run once,
// before the first tick.
func Generate(g Generator, n int, params Params, rnd *rand.Rand) (*Population, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: particle count must be non-negative, got %d", ErrParameterBounds, n)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	particles, err := g.generate(n, params, rnd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.Name(), err)
	}
	return NewPopulation(particles), nil
}

func checkMass(m float64) error {
	if m <= 0 {
		return fmt.Errorf("%w: mass must be positive, got %g", ErrParameterBounds, m)
	}
	return nil
}

// randomPosition is uniform in [-1, 1]².
func randomPosition(rnd *rand.Rand) vecmath.Vec2 {
	return vecmath.Vec2{
		X: rnd.Float64()*2 - 1,
		Y: rnd.Float64()*2 - 1,
	}
}

// RandomStill scatters particles at rest.
type RandomStill struct {
	Mass float64
}

func (RandomStill) Name() string { return "random-still" }

func (g RandomStill) generate(n int, params Params, rnd *rand.Rand) ([]Particle, error) {
	if err := checkMass(g.Mass); err != nil {
		return nil, err
	}
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = NewParticle(g.Mass, randomPosition(rnd), vecmath.Zero, params.RadMassFactor)
	}
	return ps, nil
}

// RandomVelocity scatters particles with a random speed in [0, MaxSpeed)
// and a random direction.
type RandomVelocity struct {
	Mass     float64
	MaxSpeed float64
}

func (RandomVelocity) Name() string { return "random-velocity" }

func (g RandomVelocity) generate(n int, params Params, rnd *rand.Rand) ([]Particle, error) {
	if err := checkMass(g.Mass); err != nil {
		return nil, err
	}
	if g.MaxSpeed < 0 {
		return nil, fmt.Errorf("%w: max speed must be non-negative, got %g", ErrParameterBounds, g.MaxSpeed)
	}
	ps := make([]Particle, n)
	for i := range ps {
		pos := randomPosition(rnd)
		vel := vecmath.Polar(rnd.Float64()*g.MaxSpeed, rnd.Float64()*2*math.Pi)
		ps[i] = NewParticle(g.Mass, pos, vel, params.RadMassFactor)
	}
	return ps, nil
}

// Outward scatters particles moving radially away from the origin at Speed.
type Outward struct {
	Mass  float64
	Speed float64
}

func (Outward) Name() string { return "outward" }

func (g Outward) generate(n int, params Params, rnd *rand.Rand) ([]Particle, error) {
	if err := checkMass(g.Mass); err != nil {
		return nil, err
	}
	ps := make([]Particle, n)
	for i := range ps {
		pos := randomPosition(rnd)
		vel := vecmath.Polar(g.Speed, vecmath.Angle(vecmath.Zero, pos))
		ps[i] = NewParticle(g.Mass, pos, vel, params.RadMassFactor)
	}
	return ps, nil
}

// AsteroidBelt puts a heavy central body in slot 0 and rings the others
// around it on near-circular orbits.
type AsteroidBelt struct {
	Mass        float64
	InnerRadius float64
	OuterRadius float64
	// CentralFactor scales the central mass: Mass * n * CentralFactor.
	CentralFactor float64
	// OrbitBoost multiplies the circular orbit speed sqrt(G*M/r).
	OrbitBoost float64
}

func NewAsteroidBelt(mass float64) AsteroidBelt {
	return AsteroidBelt{
		Mass:          mass,
		InnerRadius:   1.7,
		OuterRadius:   2.9,
		CentralFactor: 10,
		OrbitBoost:    1.1,
	}
}

func (AsteroidBelt) Name() string { return "asteroid-belt" }

func (g AsteroidBelt) generate(n int, params Params, rnd *rand.Rand) ([]Particle, error) {
	if err := checkMass(g.Mass); err != nil {
		return nil, err
	}
	if g.InnerRadius <= 0 || g.OuterRadius < g.InnerRadius {
		return nil, fmt.Errorf("%w: belt radii must satisfy 0 < inner <= outer, got [%g, %g]",
			ErrParameterBounds, g.InnerRadius, g.OuterRadius)
	}
	if g.CentralFactor <= 0 {
		return nil, fmt.Errorf("%w: central factor must be positive, got %g", ErrParameterBounds, g.CentralFactor)
	}
	if n == 0 {
		return nil, nil
	}

	centralMass := g.Mass * float64(n) * g.CentralFactor
	ps := make([]Particle, n)
	ps[0] = NewParticle(centralMass, vecmath.Zero, vecmath.Zero, params.RadMassFactor)

	for i := 1; i < n; i++ {
		theta := rnd.Float64() * 2 * math.Pi
		r := g.InnerRadius + rnd.Float64()*(g.OuterRadius-g.InnerRadius)
		speed := math.Sqrt(params.G*centralMass/r) * g.OrbitBoost
		pos := vecmath.Polar(r, theta)
		vel := vecmath.Polar(speed, theta+math.Pi/2)
		ps[i] = NewParticle(g.Mass, pos, vel, params.RadMassFactor)
	}
	return ps, nil
}
