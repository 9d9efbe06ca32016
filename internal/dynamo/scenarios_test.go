package dynamo_test

import (
	"bytes"
	"context"
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/exp/rand"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/vecmath"
)

func newSim(pop *physics.Population, cfg dynamo.Config) *dynamo.Simulator {
	sim, err := dynamo.New(pop, cfg)
	Expect(err).NotTo(HaveOccurred())
	sim.SetDiagnostics(GinkgoWriter)
	return sim
}

var _ = Describe("Simulator", func() {
	var cfg dynamo.Config

	BeforeEach(func() {
		cfg = dynamo.DefaultConfig()
		cfg.Boundary = physics.None{}
	})

	Context("with two equal bodies at rest", func() {
		var sim *dynamo.Simulator

		BeforeEach(func() {
			pop := physics.NewPopulation([]physics.Particle{
				physics.NewParticle(0.005, vecmath.Vec2{X: -0.1}, vecmath.Zero, cfg.Params.RadMassFactor),
				physics.NewParticle(0.005, vecmath.Vec2{X: 0.1}, vecmath.Zero, cfg.Params.RadMassFactor),
			})
			sim = newSim(pop, cfg)
		})

		It("pulls them together and merges them at the midpoint", func() {
			for i := 0; i < 5000 && sim.Count() > 1; i++ {
				Expect(sim.Tick(dynamo.Input{})).To(Succeed())
			}

			Expect(sim.Count()).To(Equal(1))
			merged := sim.Population().At(0)
			Expect(merged.Mass).To(BeNumerically("~", 0.01, 1e-15))
			Expect(merged.Radius).To(BeNumerically("~", physics.RadiusForMass(0.01, cfg.Params.RadMassFactor), 1e-15))
			Expect(merged.Position.X).To(BeNumerically("~", 0, 1e-9))
			Expect(merged.Position.Y).To(BeNumerically("~", 0, 1e-9))
			Expect(vecmath.Magnitude(merged.Velocity)).To(BeNumerically("<", 1e-9))
		})

		It("moves them symmetrically toward each other", func() {
			Expect(sim.Tick(dynamo.Input{})).To(Succeed())

			a, b := sim.Population().At(0), sim.Population().At(1)
			Expect(a.Velocity.X).To(BeNumerically(">", 0))
			Expect(b.Velocity.X).To(BeNumerically("~", -a.Velocity.X, 1e-18))
			Expect(a.Force).To(Equal(vecmath.Zero))
		})
	})

	Context("with a single stationary particle", func() {
		It("never moves it", func() {
			pop := physics.NewPopulation([]physics.Particle{
				physics.NewParticle(0.3, vecmath.Vec2{X: 0.25, Y: 0.5}, vecmath.Zero, cfg.Params.RadMassFactor),
			})
			sim := newSim(pop, cfg)

			_, err := sim.Run(context.Background(), 250)
			Expect(err).NotTo(HaveOccurred())

			p := sim.Population().At(0)
			Expect(p.Position).To(Equal(vecmath.Vec2{X: 0.25, Y: 0.5}))
			Expect(p.Velocity).To(Equal(vecmath.Zero))
		})
	})

	Context("with a random population", func() {
		var pop *physics.Population

		BeforeEach(func() {
			var err error
			pop, err = physics.Generate(
				physics.RandomVelocity{Mass: 0.05, MaxSpeed: 0.01},
				150, cfg.Params, rand.New(rand.NewSource(9)))
			Expect(err).NotTo(HaveOccurred())
		})

		It("never grows and conserves mass", func() {
			cfg.Boundary = physics.NewSquare()
			sim := newSim(pop, cfg)
			mass := pop.TotalMass()

			prev := sim.Count()
			for i := 0; i < 300; i++ {
				Expect(sim.Tick(dynamo.Input{})).To(Succeed())
				Expect(sim.Count()).To(BeNumerically("<=", prev))
				prev = sim.Count()
			}
			Expect(sim.Count()).To(BeNumerically("<", 150))
			Expect(sim.Stats().TotalMass).To(BeNumerically("~", mass, 1e-9))
		})

		It("keeps the count constant when merging is disabled", func() {
			cfg.Params.Merge = false
			sim := newSim(pop, cfg)

			for i := 0; i < 100; i++ {
				Expect(sim.Tick(dynamo.Input{})).To(Succeed())
				Expect(sim.Count()).To(Equal(150))
			}
		})

		It("keeps every particle inside the square", func() {
			cfg.Boundary = physics.NewSquare()
			sim := newSim(pop, cfg)

			for i := 0; i < 200; i++ {
				Expect(sim.Tick(dynamo.Input{})).To(Succeed())
				sim.Population().Each(func(_ int, p *physics.Particle) {
					Expect(math.Abs(p.Position.X) + p.Radius).To(BeNumerically("<=", 1+1e-12))
					Expect(math.Abs(p.Position.Y) + p.Radius).To(BeNumerically("<=", 1+1e-12))
				})
			}
		})
	})

	Context("with a particle heading into the right wall", func() {
		It("clamps it and reflects its velocity with damping", func() {
			cfg.Boundary = physics.NewSquare()
			pop := physics.NewPopulation([]physics.Particle{
				physics.NewParticle(math.Pi, vecmath.Vec2{X: 0.94}, vecmath.Vec2{X: 0.02}, cfg.Params.RadMassFactor),
			})
			sim := newSim(pop, cfg)

			Expect(sim.Tick(dynamo.Input{})).To(Succeed())

			p := sim.Population().At(0)
			Expect(p.Radius).To(BeNumerically("~", 0.05, 1e-15))
			Expect(p.Position.X).To(BeNumerically("~", 0.95, 1e-12))
			Expect(p.Velocity.X).To(BeNumerically("~", -0.01, 1e-12))
		})
	})

	Context("with the asteroid belt", func() {
		It("orbits the belt around a fixed heavy center", func() {
			cfg.Boundary = physics.None{}
			pop, err := physics.Generate(physics.NewAsteroidBelt(0.005), 40, cfg.Params, rand.New(rand.NewSource(1)))
			Expect(err).NotTo(HaveOccurred())
			sim := newSim(pop, cfg)

			_, err = sim.Run(context.Background(), 50)
			Expect(err).NotTo(HaveOccurred())

			center := sim.Population().At(0)
			Expect(center.Mass).To(BeNumerically(">=", 0.005*40*10))
			Expect(vecmath.Magnitude(center.Position)).To(BeNumerically("<", 0.01))
		})
	})

	Context("with the debug key held", func() {
		It("prints once per press", func() {
			pop := physics.NewPopulation([]physics.Particle{
				physics.NewParticle(1, vecmath.Vec2{X: -1}, vecmath.Zero, cfg.Params.RadMassFactor),
				physics.NewParticle(1, vecmath.Vec2{Y: 1}, vecmath.Zero, cfg.Params.RadMassFactor),
			})
			sim := newSim(pop, cfg)
			var buf bytes.Buffer
			sim.SetDiagnostics(&buf)

			for i := 0; i < 10; i++ {
				Expect(sim.Tick(dynamo.Input{Debug: true})).To(Succeed())
			}

			Expect(buf.String()).To(ContainSubstring("angle(p0, p1) = 0.785398"))
			Expect(buf.String()).To(ContainSubstring("angle(p1, p0) = -2.356194"))
			Expect(strings.Count(buf.String(), "-----")).To(Equal(1))
		})
	})
})
