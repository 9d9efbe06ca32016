package physics

// Population is an ordered, fixed-capacity buffer of particles.
//
// Particles removed during a tick are tombstoned so slot indices stay stable
// while pairs are being visited; Compact drops the tombstones afterwards and
// keeps the survivors in their original order. The buffer never grows.
type Population struct {
	slots []Particle
	alive []bool
	live  int
}

func NewPopulation(particles []Particle) *Population {
	p := &Population{
		slots: make([]Particle, len(particles)),
		alive: make([]bool, len(particles)),
		live:  len(particles),
	}
	copy(p.slots, particles)
	for i := range p.alive {
		p.alive[i] = true
	}
	return p
}

// Len is the number of live particles.
func (p *Population) Len() int { return p.live }

// Slots is the number of slots, live or tombstoned.
func (p *Population) Slots() int { return len(p.slots) }

func (p *Population) Alive(i int) bool {
	return i >= 0 && i < len(p.slots) && p.alive[i]
}

// At returns the particle stored in slot i. The pointer is valid until the
// next Compact.
func (p *Population) At(i int) *Particle {
	return &p.slots[i]
}

// Kill tombstones slot i. Killing a dead slot is a no-op.
func (p *Population) Kill(i int) {
	if !p.Alive(i) {
		return
	}
	p.alive[i] = false
	p.live--
}

// Compact removes tombstoned slots and returns how many were dropped.
func (p *Population) Compact() int {
	if p.live == len(p.slots) {
		return 0
	}
	n := 0
	for i := range p.slots {
		if !p.alive[i] {
			continue
		}
		p.slots[n] = p.slots[i]
		p.alive[n] = true
		n++
	}
	removed := len(p.slots) - n
	p.slots = p.slots[:n]
	p.alive = p.alive[:n]
	return removed
}

// Each calls fn for every live particle in slot order.
func (p *Population) Each(fn func(i int, pt *Particle)) {
	for i := range p.slots {
		if p.alive[i] {
			fn(i, &p.slots[i])
		}
	}
}

// Particles returns a copy of the live particles in order.
func (p *Population) Particles() []Particle {
	out := make([]Particle, 0, p.live)
	p.Each(func(_ int, pt *Particle) {
		out = append(out, *pt)
	})
	return out
}

func (p *Population) Clone() *Population {
	return NewPopulation(p.Particles())
}
