package physics

import (
	"github.com/san-kum/gravsim/internal/vecmath"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"
)

// Integrate advances one particle by an explicit Euler step of unit length,
// applies the boundary and clears the force accumulator.
func Integrate(p *Particle, b Boundary, rnd *rand.Rand) {
	p.Acceleration = r2.Scale(1/p.Mass, p.Force)
	p.Velocity = r2.Add(p.Velocity, p.Acceleration)
	p.Position = r2.Add(p.Position, p.Velocity)
	if b != nil {
		b.Apply(p, rnd)
	}
	p.Force = vecmath.Zero
}

// Advance integrates every live particle.
func Advance(pop *Population, b Boundary, rnd *rand.Rand) {
	pop.Each(func(_ int, p *Particle) {
		Integrate(p, b, rnd)
	})
}
