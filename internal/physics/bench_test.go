package physics

import (
	"testing"

	"golang.org/x/exp/rand"
)

func benchPopulation(b *testing.B, n int) (*Population, Params) {
	b.Helper()
	params := DefaultParams()
	params.Merge = false
	pop, err := Generate(RandomVelocity{Mass: 0.005, MaxSpeed: 0.01}, n, params, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}
	return pop, params
}

func BenchmarkInteract400(b *testing.B) {
	pop, params := benchPopulation(b, 400)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Interact(pop, params)
	}
}

func BenchmarkAdvance400(b *testing.B) {
	pop, _ := benchPopulation(b, 400)
	bound := NewSquare()
	rnd := rand.New(rand.NewSource(2))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Advance(pop, bound, rnd)
	}
}
