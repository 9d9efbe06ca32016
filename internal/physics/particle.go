package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/gravsim/internal/vecmath"
	"gonum.org/v1/gonum/spatial/r2"
)

// Particle is a circular body. Radius is derived from Mass and must only
// change together with it, through NewParticle or Merge.
type Particle struct {
	Radius       float64
	Mass         float64
	Position     vecmath.Vec2
	Velocity     vecmath.Vec2
	Acceleration vecmath.Vec2
	Force        vecmath.Vec2
}

// RadiusForMass returns sqrt(mass/π) / radMassFactor.
func RadiusForMass(mass, radMassFactor float64) float64 {
	return math.Sqrt(mass/math.Pi) / radMassFactor
}

func NewParticle(mass float64, pos, vel vecmath.Vec2, radMassFactor float64) Particle {
	return Particle{
		Radius:   RadiusForMass(mass, radMassFactor),
		Mass:     mass,
		Position: pos,
		Velocity: vel,
	}
}

// Merge combines two bodies. The result sits on the strictly heavier input,
// or on the midpoint when masses tie, and carries the combined momentum.
// Force and acceleration start from zero.
func Merge(a, b Particle, radMassFactor float64) Particle {
	mass := a.Mass + b.Mass

	var pos vecmath.Vec2
	switch {
	case a.Mass > b.Mass:
		pos = a.Position
	case a.Mass < b.Mass:
		pos = b.Position
	default:
		pos = r2.Scale(0.5, r2.Add(a.Position, b.Position))
	}

	vel := vecmath.Vec2{
		X: (a.Mass*a.Velocity.X + b.Mass*b.Velocity.X) / mass,
		Y: (a.Mass*a.Velocity.Y + b.Mass*b.Velocity.Y) / mass,
	}

	return NewParticle(mass, pos, vel, radMassFactor)
}

// Momentum returns mass * velocity.
func (p Particle) Momentum() vecmath.Vec2 {
	return r2.Scale(p.Mass, p.Velocity)
}

func (p Particle) IsValid() bool {
	return vecmath.IsFinite(p.Position) && vecmath.IsFinite(p.Velocity) &&
		!math.IsNaN(p.Mass) && !math.IsInf(p.Mass, 0)
}

func (p Particle) String() string {
	return fmt.Sprintf("particle r=%f m=%f pos=(%f, %f) vel=(%f, %f) acc=(%f, %f) force=(%f, %f)",
		p.Radius, p.Mass,
		p.Position.X, p.Position.Y,
		p.Velocity.X, p.Velocity.Y,
		p.Acceleration.X, p.Acceleration.Y,
		p.Force.X, p.Force.Y)
}
