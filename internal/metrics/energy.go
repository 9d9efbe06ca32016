package metrics

import (
	"math"

	"github.com/san-kum/gravsim/internal/physics"
)

// Drift tracks the largest relative change of a conserved quantity from its
// first observed value.
type Drift struct {
	name     string
	quantity func(*physics.Population) float64
	initial  float64
	maxDrift float64
	samples  int
}

func NewDrift(name string, quantity func(*physics.Population) float64) *Drift {
	return &Drift{name: name, quantity: quantity}
}

func NewEnergyDrift(params physics.Params) *Drift {
	return NewDrift("energy_drift", func(p *physics.Population) float64 {
		return p.Energy(params)
	})
}

func NewMassDrift() *Drift {
	return NewDrift("mass_drift", (*physics.Population).TotalMass)
}

func NewMomentumDrift() *Drift {
	return NewDrift("momentum_drift", func(p *physics.Population) float64 {
		px, py := p.Momentum()
		return math.Hypot(px, py)
	})
}

func (d *Drift) Name() string { return d.name }

func (d *Drift) Observe(_ int, pop *physics.Population) {
	v := d.quantity(pop)
	if d.samples == 0 {
		d.initial = v
	}
	d.samples++

	if d.initial != 0 {
		drift := math.Abs(v-d.initial) / math.Abs(d.initial)
		d.maxDrift = math.Max(d.maxDrift, drift)
	}
}

func (d *Drift) Value() float64 {
	return d.maxDrift
}

func (d *Drift) Reset() {
	d.initial = 0
	d.maxDrift = 0
	d.samples = 0
}
