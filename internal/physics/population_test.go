package physics

import (
	"testing"

	"github.com/san-kum/gravsim/internal/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(n int) []Particle {
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = NewParticle(float64(i+1), vecmath.Vec2{X: float64(i)}, vecmath.Zero, 20)
	}
	return ps
}

func TestPopulationKillAndCompact(t *testing.T) {
	pop := NewPopulation(line(5))
	require.Equal(t, 5, pop.Len())
	require.Equal(t, 5, pop.Slots())

	pop.Kill(1)
	pop.Kill(3)
	pop.Kill(3)

	assert.Equal(t, 3, pop.Len())
	assert.Equal(t, 5, pop.Slots(), "slots stay stable until compaction")
	assert.False(t, pop.Alive(1))
	assert.True(t, pop.Alive(2))

	removed := pop.Compact()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 3, pop.Slots())

	masses := []float64{}
	for _, p := range pop.Particles() {
		masses = append(masses, p.Mass)
	}
	assert.Equal(t, []float64{1, 3, 5}, masses, "survivors keep their order")
}

func TestPopulationAliveBounds(t *testing.T) {
	pop := NewPopulation(line(2))
	assert.False(t, pop.Alive(-1))
	assert.False(t, pop.Alive(2))
}

func TestPopulationCompactNoop(t *testing.T) {
	pop := NewPopulation(line(3))
	assert.Zero(t, pop.Compact())
	assert.Equal(t, 3, pop.Len())
}

func TestPopulationCopiesInput(t *testing.T) {
	ps := line(2)
	pop := NewPopulation(ps)
	ps[0].Mass = 100

	assert.Equal(t, 1.0, pop.At(0).Mass)

	clone := pop.Clone()
	clone.At(0).Mass = 42
	assert.Equal(t, 1.0, pop.At(0).Mass)
}

func TestPopulationEmpty(t *testing.T) {
	pop := NewPopulation(nil)
	assert.Zero(t, pop.Len())
	assert.Empty(t, pop.Particles())
	assert.Zero(t, pop.Compact())
	assert.Zero(t, pop.TotalMass())
}
