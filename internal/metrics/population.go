package metrics

import "github.com/san-kum/gravsim/internal/physics"

// Survivors reports the fraction of the first observed population still
// alive at the last observation.
type Survivors struct {
	initial int
	current int
	samples int
}

func NewSurvivors() *Survivors { return &Survivors{} }

func (s *Survivors) Name() string { return "survivors" }

func (s *Survivors) Observe(_ int, pop *physics.Population) {
	if s.samples == 0 {
		s.initial = pop.Len()
	}
	s.current = pop.Len()
	s.samples++
}

func (s *Survivors) Value() float64 {
	if s.initial == 0 {
		return 1.0
	}
	return float64(s.current) / float64(s.initial)
}

func (s *Survivors) Reset() {
	s.initial = 0
	s.current = 0
	s.samples = 0
}

// Largest reports the heaviest mass seen so far.
type Largest struct {
	max float64
}

func NewLargest() *Largest { return &Largest{} }

func (l *Largest) Name() string { return "largest_mass" }

func (l *Largest) Observe(_ int, pop *physics.Population) {
	pop.Each(func(_ int, p *physics.Particle) {
		if p.Mass > l.max {
			l.max = p.Mass
		}
	})
}

func (l *Largest) Value() float64 { return l.max }
func (l *Largest) Reset()         { l.max = 0 }
