package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/render"
)

// Viewport maps world space onto the window. The square [-1, 1]² fills the
// shorter side, y points up.
type Viewport struct {
	Width, Height float32
}

func (v Viewport) Scale() float32 { return min(v.Width, v.Height) / 2 }

func (v Viewport) Project(x, y float32) rl.Vector2 {
	s := v.Scale()
	return rl.NewVector2(v.Width/2+x*s, v.Height/2-y*s)
}

// drawFrame renders overlays first, then the particles on top.
func (a *App) drawFrame(f dynamo.Frame) {
	a.mesh.Build(f)
	perCircle := a.mesh.Sectors
	split := f.Particles() * perCircle

	for t := split; t < a.mesh.Triangles(); t++ {
		a.drawTriangle(t, ColOverlay)
	}
	if sq, ok := a.sim.Config().Boundary.(physics.Square); ok {
		e := float32(sq.HalfExtent * a.sim.Zoom())
		tl := a.view.Project(-e, e)
		br := a.view.Project(e, -e)
		rl.DrawRectangleLinesEx(rl.NewRectangle(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y), 1, ColGrid)
	}
	for t := 0; t < split; t++ {
		a.drawTriangle(t, ColParticle)
	}
}

// drawTriangle draws one mesh triangle. Flipping y keeps the on-screen
// winding counter-clockwise.
func (a *App) drawTriangle(t int, col rl.Color) {
	p, q, r := a.mesh.Triangle(t)
	rl.DrawTriangle(
		a.view.Project(p[0], p[1]),
		a.view.Project(q[0], q[1]),
		a.view.Project(r[0], r[1]),
		col,
	)
}

func newMesh() *render.Mesh { return render.NewMesh(render.DefaultSectors) }
