package metrics

import (
	"github.com/san-kum/gravsim/internal/physics"
)

// Sample is a snapshot of the population's aggregate quantities.
type Sample struct {
	Tick            int
	Count           int
	TotalMass       float64
	KineticEnergy   float64
	PotentialEnergy float64
	MomentumX       float64
	MomentumY       float64
	AngularMomentum float64
}

// Energy is the total mechanical energy.
func (s Sample) Energy() float64 { return s.KineticEnergy + s.PotentialEnergy }

// SampleColumns names the fields of Sample in Row order.
var SampleColumns = []string{
	"tick", "count", "total_mass", "kinetic_energy", "potential_energy",
	"momentum_x", "momentum_y", "angular_momentum",
}

func (s Sample) Row() []float64 {
	return []float64{
		float64(s.Tick), float64(s.Count), s.TotalMass, s.KineticEnergy, s.PotentialEnergy,
		s.MomentumX, s.MomentumY, s.AngularMomentum,
	}
}

// SampleFromRow is the inverse of Row. Missing trailing columns stay zero.
func SampleFromRow(row []float64) Sample {
	get := func(i int) float64 {
		if i < len(row) {
			return row[i]
		}
		return 0
	}
	return Sample{
		Tick:            int(get(0)),
		Count:           int(get(1)),
		TotalMass:       get(2),
		KineticEnergy:   get(3),
		PotentialEnergy: get(4),
		MomentumX:       get(5),
		MomentumY:       get(6),
		AngularMomentum: get(7),
	}
}

func Measure(tick int, pop *physics.Population, params physics.Params) Sample {
	px, py := pop.Momentum()
	return Sample{
		Tick:            tick,
		Count:           pop.Len(),
		TotalMass:       pop.TotalMass(),
		KineticEnergy:   pop.KineticEnergy(),
		PotentialEnergy: pop.PotentialEnergy(params),
		MomentumX:       px,
		MomentumY:       py,
		AngularMomentum: pop.AngularMomentum(),
	}
}

// Sampler records a Sample every Every ticks. It is attached to a
// simulator as an observer.
type Sampler struct {
	Every   int
	Params  physics.Params
	Samples []Sample
}

func NewSampler(every int, params physics.Params) *Sampler {
	if every < 1 {
		every = 1
	}
	return &Sampler{Every: every, Params: params}
}

// Record takes a sample unconditionally, typically for tick 0.
func (s *Sampler) Record(tick int, pop *physics.Population) {
	s.Samples = append(s.Samples, Measure(tick, pop, s.Params))
}

func (s *Sampler) OnTick(tick int, pop *physics.Population) {
	if tick%s.Every == 0 {
		s.Record(tick, pop)
	}
}

// Series extracts one column from the recorded samples.
func Series(samples []Sample, fn func(Sample) float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = fn(s)
	}
	return out
}
