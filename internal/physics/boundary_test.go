package physics

import (
	"math"
	"testing"

	"github.com/san-kum/gravsim/internal/vecmath"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestSquareClampsAndDamps(t *testing.T) {
	tests := []struct {
		name        string
		pos, vel    vecmath.Vec2
		expectedPos vecmath.Vec2
		expectedVel vecmath.Vec2
	}{
		{
			name:        "right edge",
			pos:         vecmath.Vec2{X: 0.94},
			vel:         vecmath.Vec2{X: 0.02},
			expectedPos: vecmath.Vec2{X: 0.95},
			expectedVel: vecmath.Vec2{X: -0.01},
		},
		{
			name:        "top edge",
			pos:         vecmath.Vec2{Y: 0.97},
			vel:         vecmath.Vec2{X: 0.01, Y: 0.04},
			expectedPos: vecmath.Vec2{X: 0.01, Y: 0.95},
			expectedVel: vecmath.Vec2{X: 0.01, Y: -0.02},
		},
		{
			name:        "bottom left corner",
			pos:         vecmath.Vec2{X: -0.96, Y: -0.96},
			vel:         vecmath.Vec2{X: -0.02, Y: -0.04},
			expectedPos: vecmath.Vec2{X: -0.95, Y: -0.95},
			expectedVel: vecmath.Vec2{X: 0.01, Y: 0.02},
		},
		{
			name:        "inside is untouched",
			pos:         vecmath.Vec2{X: 0.9},
			vel:         vecmath.Vec2{X: 0.02},
			expectedPos: vecmath.Vec2{X: 0.92},
			expectedVel: vecmath.Vec2{X: 0.02},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParticle(math.Pi, tt.pos, tt.vel, 20)
			Integrate(&p, NewSquare(), nil)

			assert.InDelta(t, tt.expectedPos.X, p.Position.X, 1e-12)
			assert.InDelta(t, tt.expectedPos.Y, p.Position.Y, 1e-12)
			assert.InDelta(t, tt.expectedVel.X, p.Velocity.X, 1e-12)
			assert.InDelta(t, tt.expectedVel.Y, p.Velocity.Y, 1e-12)
		})
	}
}

func TestSquareKeepsParticlesInside(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	pop, err := Generate(RandomVelocity{Mass: 0.01, MaxSpeed: 0.3}, 50, DefaultParams(), rnd)
	assert.NoError(t, err)

	sq := NewSquare()
	for tick := 0; tick < 200; tick++ {
		Advance(pop, sq, rnd)
		pop.Each(func(i int, p *Particle) {
			assert.LessOrEqual(t, math.Abs(p.Position.X)+p.Radius, sq.HalfExtent+1e-12)
			assert.LessOrEqual(t, math.Abs(p.Position.Y)+p.Radius, sq.HalfExtent+1e-12)
		})
	}
}

func TestCircularReflects(t *testing.T) {
	c := Circular{Radius: 1}
	p := NewParticle(math.Pi, vecmath.Vec2{X: 0.98}, vecmath.Vec2{X: 0.03, Y: 0.01}, 20)

	c.Apply(&p, nil)

	assert.InDelta(t, 0.95, p.Position.X, 1e-12)
	assert.InDelta(t, 0, p.Position.Y, 1e-12)
	assert.Equal(t, vecmath.Vec2{X: -0.03, Y: -0.01}, p.Velocity)

	inside := NewParticle(math.Pi, vecmath.Vec2{Y: 0.5}, vecmath.Vec2{Y: 0.1}, 20)
	c.Apply(&inside, nil)
	assert.Equal(t, vecmath.Vec2{Y: 0.5}, inside.Position)
	assert.Equal(t, vecmath.Vec2{Y: 0.1}, inside.Velocity)
}

func TestTeleportCenter(t *testing.T) {
	b := TeleportCenter{Radius: 1}
	p := NewParticle(math.Pi, vecmath.Vec2{X: 0.7, Y: 0.7}, vecmath.Vec2{X: 0.2}, 20)

	b.Apply(&p, nil)

	assert.Equal(t, vecmath.Zero, p.Position)
	assert.Equal(t, vecmath.Vec2{X: 0.2}, p.Velocity, "velocity is kept")
}

func TestTeleportRandom(t *testing.T) {
	b := TeleportRandom{Radius: 2}
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		p := NewParticle(0.01, vecmath.Vec2{X: 3}, vecmath.Vec2{Y: -0.1}, 20)
		b.Apply(&p, rnd)

		assert.Less(t, vecmath.Magnitude(p.Position), b.Radius+1e-12)
		assert.Equal(t, vecmath.Vec2{Y: -0.1}, p.Velocity)
	}
}

func TestNoneLeavesParticlesFree(t *testing.T) {
	p := NewParticle(1, vecmath.Vec2{X: 1e6}, vecmath.Vec2{X: 1}, 20)
	None{}.Apply(&p, nil)
	assert.Equal(t, vecmath.Vec2{X: 1e6}, p.Position)
}

func TestBoundaryOverlay(t *testing.T) {
	tests := []struct {
		boundary Boundary
		hasRing  bool
		radius   float64
	}{
		{None{}, false, 0},
		{NewSquare(), false, 0},
		{Circular{Radius: 1}, true, 1},
		{TeleportCenter{Radius: 1.5}, true, 1.5},
		{TeleportRandom{Radius: 2}, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.boundary.Name(), func(t *testing.T) {
			ring, ok := tt.boundary.Overlay()
			assert.Equal(t, tt.hasRing, ok)
			assert.Equal(t, tt.radius, ring.Radius)
			assert.Equal(t, vecmath.Zero, ring.Center)
		})
	}
}
