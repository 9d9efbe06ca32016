package physics

import (
	"math"

	"github.com/san-kum/gravsim/internal/vecmath"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"
)

// Circle is a static shape drawn to visualize a boundary. It is never
// simulated.
type Circle struct {
	Center vecmath.Vec2
	Radius float64
}

// Boundary is the rule applied to a particle after it has moved. The set of
// variants is closed: None, Square, Circular, TeleportCenter and
// TeleportRandom.
type Boundary interface {
	Name() string
	Apply(p *Particle, rnd *rand.Rand)
	// Overlay returns the ring to draw for this boundary, if it has one.
	Overlay() (Circle, bool)
	boundary()
}

type None struct{}

func (None) Name() string                { return "none" }
func (None) Apply(*Particle, *rand.Rand) {}
func (None) Overlay() (Circle, bool)     { return Circle{}, false }
func (None) boundary()                   {}

// Square clamps particles inside [-HalfExtent, HalfExtent]² and reflects the
// offending velocity component scaled by -Damping.
type Square struct {
	HalfExtent float64
	Damping    float64
}

func NewSquare() Square { return Square{HalfExtent: 1.0, Damping: 0.5} }

func (Square) Name() string            { return "square" }
func (Square) Overlay() (Circle, bool) { return Circle{}, false }
func (Square) boundary()               {}

func (s Square) Apply(p *Particle, _ *rand.Rand) {
	if p.Position.X+p.Radius > s.HalfExtent {
		p.Position.X = s.HalfExtent - p.Radius
		p.Velocity.X = -s.Damping * p.Velocity.X
	}
	if p.Position.Y+p.Radius > s.HalfExtent {
		p.Position.Y = s.HalfExtent - p.Radius
		p.Velocity.Y = -s.Damping * p.Velocity.Y
	}
	if p.Position.X-p.Radius < -s.HalfExtent {
		p.Position.X = -s.HalfExtent + p.Radius
		p.Velocity.X = -s.Damping * p.Velocity.X
	}
	if p.Position.Y-p.Radius < -s.HalfExtent {
		p.Position.Y = -s.HalfExtent + p.Radius
		p.Velocity.Y = -s.Damping * p.Velocity.Y
	}
}

// Circular pushes escaping particles back inside the ring along the radial
// direction and reverses their velocity, undamped.
type Circular struct {
	Radius float64
}

func (Circular) Name() string { return "circular" }
func (Circular) boundary()    {}

func (c Circular) Overlay() (Circle, bool) {
	return Circle{Radius: c.Radius}, true
}

func (c Circular) Apply(p *Particle, _ *rand.Rand) {
	d := vecmath.Magnitude(p.Position)
	overflow := d + p.Radius - c.Radius
	if overflow <= 0 {
		return
	}
	if d > 0 {
		p.Position = r2.Sub(p.Position, r2.Scale(overflow/d, p.Position))
	}
	p.Velocity = r2.Scale(-1, p.Velocity)
}

// TeleportCenter moves escaping particles back to the origin. Velocity is
// left untouched.
type TeleportCenter struct {
	Radius float64
}

func (TeleportCenter) Name() string { return "teleport-center" }
func (TeleportCenter) boundary()    {}

func (t TeleportCenter) Overlay() (Circle, bool) {
	return Circle{Radius: t.Radius}, true
}

func (t TeleportCenter) Apply(p *Particle, _ *rand.Rand) {
	if vecmath.Magnitude(p.Position)+p.Radius > t.Radius {
		p.Position = vecmath.Zero
	}
}

// TeleportRandom moves escaping particles to a uniformly random angle and
// random distance in [0, Radius) from the origin. Velocity is left untouched.
type TeleportRandom struct {
	Radius float64
}

func (TeleportRandom) Name() string { return "teleport-random" }
func (TeleportRandom) boundary()    {}

func (t TeleportRandom) Overlay() (Circle, bool) {
	return Circle{Radius: t.Radius}, true
}

func (t TeleportRandom) Apply(p *Particle, rnd *rand.Rand) {
	if vecmath.Magnitude(p.Position)+p.Radius <= t.Radius {
		return
	}
	theta := rnd.Float64() * 2 * math.Pi
	r := rnd.Float64() * t.Radius
	p.Position = vecmath.Polar(r, theta)
}
