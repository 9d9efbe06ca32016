package render

import "math"

// TrigTable holds (sin, cos) pairs for n evenly spaced angles over a full
// turn. Tessellation reads exact entries with At; SinCos interpolates
// linearly for arbitrary angles.
type TrigTable struct {
	entries [][2]float64
	step    float64
}

// DefaultTrigTable has 4096 entries, about 0.0015 rad apart.
var DefaultTrigTable = NewTrigTable(4096)

func NewTrigTable(n int) *TrigTable {
	n = max(n, 1)
	t := &TrigTable{
		entries: make([][2]float64, n),
		step:    2 * math.Pi / float64(n),
	}
	for i := range t.entries {
		t.entries[i][0], t.entries[i][1] = math.Sincos(float64(i) * t.step)
	}
	return t
}

func (t *TrigTable) Len() int { return len(t.entries) }

// At returns entry i; i wraps modulo Len.
func (t *TrigTable) At(i int) (sin, cos float64) {
	n := len(t.entries)
	e := t.entries[((i%n)+n)%n]
	return e[0], e[1]
}

func (t *TrigTable) SinCos(x float64) (sin, cos float64) {
	pos := x / t.step
	base := math.Floor(pos)
	frac := pos - base

	// Indices stay exact for any angle that fits an int.
	i := int(math.Mod(base, float64(len(t.entries))))
	s0, c0 := t.At(i)
	s1, c1 := t.At(i + 1)
	return s0 + (s1-s0)*frac, c0 + (c1-c0)*frac
}
