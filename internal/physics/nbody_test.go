package physics

import (
	"math"
	"testing"

	"github.com/san-kum/gravsim/internal/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairForceSymmetric(t *testing.T) {
	a := NewParticle(2, vecmath.Vec2{X: -0.3, Y: 0.1}, vecmath.Zero, 20)
	b := NewParticle(5, vecmath.Vec2{X: 0.4, Y: -0.2}, vecmath.Zero, 20)

	fab := PairForce(&a, &b, 1e-3, DefaultMinSeparation)
	fba := PairForce(&b, &a, 1e-3, DefaultMinSeparation)

	assert.InDelta(t, -fab.X, fba.X, 1e-15)
	assert.InDelta(t, -fab.Y, fba.Y, 1e-15)

	d := vecmath.Distance(a.Position, b.Position)
	assert.InDelta(t, 1e-3*2*5/(d*d), vecmath.Magnitude(fab), 1e-12)
	assert.Greater(t, fab.X, 0.0, "a is pulled toward b")
	assert.Less(t, fab.Y, 0.0)
}

func TestPairForceCoincidentIsFinite(t *testing.T) {
	a := NewParticle(1, vecmath.Vec2{X: 0.5, Y: 0.5}, vecmath.Zero, 20)
	b := NewParticle(1, vecmath.Vec2{X: 0.5, Y: 0.5}, vecmath.Zero, 20)

	f := PairForce(&a, &b, DefaultG, DefaultMinSeparation)

	assert.True(t, vecmath.IsFinite(f))
	assert.InDelta(t, DefaultG/(DefaultMinSeparation*DefaultMinSeparation), f.X, 1e-6)
	assert.Zero(t, f.Y)
}

func TestInteractMergesOverlapping(t *testing.T) {
	params := DefaultParams()
	pop := NewPopulation([]Particle{
		NewParticle(math.Pi, vecmath.Vec2{X: 0}, vecmath.Vec2{X: 0.01}, 20),
		NewParticle(math.Pi, vecmath.Vec2{X: 0.05}, vecmath.Vec2{X: -0.01}, 20),
		NewParticle(math.Pi, vecmath.Vec2{X: 5}, vecmath.Zero, 20),
	})

	merges := Interact(pop, params)

	assert.Equal(t, 1, merges)
	assert.Equal(t, 2, pop.Len())
	assert.True(t, pop.Alive(0))
	assert.False(t, pop.Alive(1))

	merged := pop.At(0)
	assert.InDelta(t, 2*math.Pi, merged.Mass, tol)
	assert.InDelta(t, 0.025, merged.Position.X, tol, "equal masses merge at the midpoint")
	assert.InDelta(t, 0, merged.Velocity.X, tol)

	pop.Compact()
	assert.Equal(t, 2, pop.Slots())
	assert.InDelta(t, 3*math.Pi, pop.TotalMass(), tol)
}

func TestInteractMergeChain(t *testing.T) {
	params := DefaultParams()
	ps := make([]Particle, 4)
	for i := range ps {
		ps[i] = NewParticle(math.Pi, vecmath.Vec2{X: float64(i) * 0.01}, vecmath.Zero, 20)
	}
	pop := NewPopulation(ps)

	merges := Interact(pop, params)

	assert.Equal(t, 3, merges)
	assert.Equal(t, 1, pop.Len())
	assert.InDelta(t, 4*math.Pi, pop.TotalMass(), tol)
}

func TestInteractMergeDisabled(t *testing.T) {
	params := DefaultParams()
	params.Merge = false
	pop := NewPopulation([]Particle{
		NewParticle(math.Pi, vecmath.Zero, vecmath.Zero, 20),
		NewParticle(math.Pi, vecmath.Zero, vecmath.Zero, 20),
	})

	assert.Zero(t, Interact(pop, params))
	assert.Equal(t, 2, pop.Len())
	assert.True(t, vecmath.IsFinite(pop.At(0).Force))
	assert.True(t, vecmath.IsFinite(pop.At(1).Force))
}

func TestInteractSmallPopulations(t *testing.T) {
	params := DefaultParams()

	empty := NewPopulation(nil)
	assert.Zero(t, Interact(empty, params))

	single := NewPopulation([]Particle{NewParticle(1, vecmath.Zero, vecmath.Vec2{X: 0.1}, 20)})
	assert.Zero(t, Interact(single, params))
	assert.Equal(t, vecmath.Zero, single.At(0).Force)
}

func TestAdvanceStationaryParticle(t *testing.T) {
	pop := NewPopulation([]Particle{NewParticle(1, vecmath.Vec2{X: 0.2, Y: -0.4}, vecmath.Zero, 20)})

	for i := 0; i < 100; i++ {
		Interact(pop, DefaultParams())
		Advance(pop, None{}, nil)
	}

	p := pop.At(0)
	assert.Equal(t, vecmath.Vec2{X: 0.2, Y: -0.4}, p.Position)
	assert.Equal(t, vecmath.Zero, p.Velocity)
}

func TestIntegrateEuler(t *testing.T) {
	p := NewParticle(2, vecmath.Vec2{X: 1}, vecmath.Vec2{Y: 0.5}, 20)
	p.Force = vecmath.Vec2{X: 4}

	Integrate(&p, nil, nil)

	assert.Equal(t, vecmath.Vec2{X: 2}, p.Acceleration)
	assert.Equal(t, vecmath.Vec2{X: 2, Y: 0.5}, p.Velocity)
	assert.Equal(t, vecmath.Vec2{X: 3, Y: 0.5}, p.Position)
	assert.Equal(t, vecmath.Zero, p.Force)
}

func TestConservedQuantities(t *testing.T) {
	pop := NewPopulation([]Particle{
		NewParticle(1, vecmath.Vec2{X: 1}, vecmath.Vec2{Y: 1}, 20),
		NewParticle(3, vecmath.Vec2{X: -1}, vecmath.Vec2{Y: -1}, 20),
	})
	params := DefaultParams()
	params.G = 1

	px, py := pop.Momentum()
	require.InDelta(t, 0, px, tol)
	assert.InDelta(t, -2, py, tol)
	assert.InDelta(t, 1+3, pop.AngularMomentum(), tol)
	assert.InDelta(t, 0.5+1.5, pop.KineticEnergy(), tol)
	assert.InDelta(t, -1.5, pop.PotentialEnergy(params), tol)
	assert.InDelta(t, 0.5, pop.Energy(params), tol)
}
