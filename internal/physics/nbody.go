package physics

import (
	"math"

	"github.com/san-kum/gravsim/internal/vecmath"
	"gonum.org/v1/gonum/spatial/r2"
)

// PairForce returns the gravitational pull exerted on a by b. The distance is
// clamped to minSep, so coincident bodies produce a finite force along
// angle 0 instead of a division by zero.
func PairForce(a, b *Particle, g, minSep float64) vecmath.Vec2 {
	d := vecmath.Distance(a.Position, b.Position)
	if d < minSep {
		d = minSep
	}
	f := g * a.Mass * b.Mass / (d * d)
	return vecmath.Polar(f, vecmath.Angle(a.Position, b.Position))
}

// Accumulate adds the pull of b onto a's force accumulator.
func Accumulate(a, b *Particle, params Params) {
	a.Force = r2.Add(a.Force, PairForce(a, b, params.G, params.MinSeparation))
}

// Overlapping reports whether the two discs touch or intersect.
func Overlapping(a, b *Particle) bool {
	return vecmath.Distance(a.Position, b.Position)-(a.Radius+b.Radius) <= 0
}

// Resolve merges slot k into slot i when both are alive, merging is enabled
// and the discs overlap. It reports whether a merge happened.
func Resolve(pop *Population, i, k int, params Params) bool {
	if !params.Merge || i == k || !pop.Alive(i) || !pop.Alive(k) {
		return false
	}
	a, b := pop.At(i), pop.At(k)
	if !Overlapping(a, b) {
		return false
	}
	*a = Merge(*a, *b, params.RadMassFactor)
	pop.Kill(k)
	return true
}

// Interact runs the pair pass of a tick. Every ordered pair of live
// particles first accumulates gravity on i, then is checked for a merge.
// Merges take effect immediately: the absorbed slot is skipped by every
// later pair, and the merged body keeps iterating with its new mass and a
// cleared force. It returns the number of merges.
func Interact(pop *Population, params Params) int {
	merges := 0
	for i := 0; i < pop.Slots(); i++ {
		for k := 0; k < pop.Slots(); k++ {
			if i == k || !pop.Alive(i) || !pop.Alive(k) {
				continue
			}
			Accumulate(pop.At(i), pop.At(k), params)
			if Resolve(pop, i, k, params) {
				merges++
			}
		}
	}
	return merges
}

func (p *Population) TotalMass() float64 {
	m := 0.0
	p.Each(func(_ int, pt *Particle) { m += pt.Mass })
	return m
}

func (p *Population) Momentum() (px, py float64) {
	p.Each(func(_ int, pt *Particle) {
		px += pt.Mass * pt.Velocity.X
		py += pt.Mass * pt.Velocity.Y
	})
	return
}

func (p *Population) AngularMomentum() float64 {
	L := 0.0
	p.Each(func(_ int, pt *Particle) {
		L += pt.Mass * (pt.Position.X*pt.Velocity.Y - pt.Position.Y*pt.Velocity.X)
	})
	return L
}

func (p *Population) KineticEnergy() float64 {
	ke := 0.0
	p.Each(func(_ int, pt *Particle) {
		ke += 0.5 * pt.Mass * (pt.Velocity.X*pt.Velocity.X + pt.Velocity.Y*pt.Velocity.Y)
	})
	return ke
}

// PotentialEnergy sums -G*m_i*m_j/r over unordered live pairs, with r
// clamped the same way as the force pass.
func (p *Population) PotentialEnergy(params Params) float64 {
	pe := 0.0
	for i := 0; i < p.Slots(); i++ {
		if !p.Alive(i) {
			continue
		}
		for j := i + 1; j < p.Slots(); j++ {
			if !p.Alive(j) {
				continue
			}
			r := math.Max(vecmath.Distance(p.slots[i].Position, p.slots[j].Position), params.MinSeparation)
			pe -= params.G * p.slots[i].Mass * p.slots[j].Mass / r
		}
	}
	return pe
}

func (p *Population) Energy(params Params) float64 {
	return p.KineticEnergy() + p.PotentialEnergy(params)
}
