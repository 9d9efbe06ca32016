package viz

import (
	"math"
	"strings"

	"github.com/san-kum/gravsim/internal/render"
)

const brailleBlank = 0x2800

// dotBit maps a dot inside a cell (row 0-3, column 0-1) to its Braille bit.
// Dots 1-3 and 4-6 run down the left and right columns, dots 7 and 8 form
// the bottom row.
var dotBit = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of Braille cells addressed in dots: Width*2 across,
// Height*4 down, y growing downward.
type Canvas struct {
	Width, Height int
	cells         []uint8
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{Width: w, Height: h, cells: make([]uint8, w*h)}
}

// Dots returns the canvas size in sub-pixels.
func (c *Canvas) Dots() (w, h int) { return c.Width * 2, c.Height * 4 }

// cell returns the index of the cell holding dot (x, y), or -1 off canvas.
func (c *Canvas) cell(x, y int) int {
	if x < 0 || y < 0 || x >= c.Width*2 || y >= c.Height*4 {
		return -1
	}
	return (y/4)*c.Width + x/2
}

// Pattern returns the lit dots of the cell at (row, col) as Braille bits.
func (c *Canvas) Pattern(row, col int) uint8 { return c.cells[row*c.Width+col] }

func (c *Canvas) Set(x, y int) {
	if i := c.cell(x, y); i >= 0 {
		c.cells[i] |= dotBit[y%4][x%2]
	}
}

// IsSet reports whether the dot at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	i := c.cell(x, y)
	return i >= 0 && c.cells[i]&dotBit[y%4][x%2] != 0
}

func (c *Canvas) Clear() { clear(c.cells) }

// DrawLine lights every dot on the segment, stepping once per dot along
// the longer axis.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := x1-x0, y1-y0
	n := max(abs(dx), abs(dy))
	if n == 0 {
		c.Set(x0, y0)
		return
	}
	fx, fy := float64(dx)/float64(n), float64(dy)/float64(n)
	for i := 0; i <= n; i++ {
		c.Set(x0+int(math.Round(fx*float64(i))), y0+int(math.Round(fy*float64(i))))
	}
}

// FillCircle lights every dot within r of (cx, cy). Discs smaller than a
// dot still light their center.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	x0, y0 := int(math.Round(cx)), int(math.Round(cy))
	c.Set(x0, y0)
	if r < 1 {
		return
	}
	ri := int(math.Ceil(r))
	for oy := -ri; oy <= ri; oy++ {
		for ox := -ri; ox <= ri; ox++ {
			if float64(ox*ox+oy*oy) <= r*r {
				c.Set(x0+ox, y0+oy)
			}
		}
	}
}

// DrawCircle outlines a circle, stepping around it with the shared trig
// table.
func (c *Canvas) DrawCircle(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	steps := max(16, int(2*math.Pi*r))
	prevX, prevY := int(math.Round(cx+r)), int(math.Round(cy))
	for i := 1; i <= steps; i++ {
		sin, cos := render.DefaultTrigTable.SinCos(2 * math.Pi * float64(i) / float64(steps))
		x, y := int(math.Round(cx+r*cos)), int(math.Round(cy-r*sin))
		c.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(len(c.cells)*3 + c.Height)
	for i, bits := range c.cells {
		b.WriteRune(brailleBlank + rune(bits))
		if (i+1)%c.Width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
