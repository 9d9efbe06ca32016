// Package export renders simulation frames and recorded series as SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/gravsim/internal/dynamo"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`

// FrameToSVG draws a frame the way the window viewer does: the square
// [-1, 1]² fills the image, y points up. Particles are filled discs and
// boundary overlays are rings.
func FrameToSVG(f dynamo.Frame, size int, fill, ring string) string {
	if size <= 0 {
		return ""
	}

	half := float64(size) / 2
	toPx := func(x, y float64) (float64, float64) {
		return (x + 1) * half, (1 - y) * half
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(header, size, size, size, size))

	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", fill))
	for i := 0; i < f.Particles(); i++ {
		cx, cy := toPx(f.X[i], f.Y[i])
		r := f.R[i] * half
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f"/>
`, cx, cy, r))
	}
	sb.WriteString("</g>\n")

	if f.Extra > 0 {
		sb.WriteString(fmt.Sprintf("<g fill=\"none\" stroke=\"%s\" stroke-width=\"1\">\n", ring))
		for i := f.Particles(); i < f.Count; i++ {
			cx, cy := toPx(f.X[i], f.Y[i])
			sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f"/>
`, cx, cy, f.R[i]*half))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG plots ys against xs as a polyline scaled to fit the image.
func SeriesToSVG(xs, ys []float64, width, height int, strokeColor string) string {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 2 {
		return ""
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 0; i < n; i++ {
		minX = min(minX, xs[i])
		maxX = max(maxX, xs[i])
		minY = min(minY, ys[i])
		maxY = max(maxY, ys[i])
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(header, width, height, width, height))
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))

	for i := 0; i < n; i++ {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := float64(height) - (ys[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
