// Package gui is the raylib window viewer.
package gui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/experiment"
	"github.com/san-kum/gravsim/internal/render"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	fontPath     = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
)

var (
	ColBg       = rl.NewColor(10, 10, 10, 255)
	ColAccent   = rl.NewColor(180, 180, 180, 255)
	ColSelect   = rl.NewColor(255, 255, 255, 255)
	ColText     = rl.NewColor(140, 140, 140, 255)
	ColTextDim  = rl.NewColor(60, 60, 60, 255)
	ColGrid     = rl.NewColor(30, 30, 30, 255)
	ColParticle = rl.NewColor(235, 235, 235, 255)
	ColOverlay  = rl.NewColor(24, 24, 32, 255)
)

type App struct {
	registry *experiment.Registry
	sim      *dynamo.Simulator
	cfg      *config.Config
	mesh     *render.Mesh
	view     Viewport
	font     rl.Font

	Presets  []string
	Selected int
	Preset   string
	InMenu   bool
	InConfig bool
	ParamSel int
	Running  bool
	Err      error
}

func initWindow() {
	rl.InitWindow(windowWidth, windowHeight, "gravsim")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp creates the viewer. With interactive set it opens on the preset
// menu, otherwise it starts cfg right away under the given name.
func NewApp(name string, cfg *config.Config, interactive bool) *App {
	a := &App{
		registry: experiment.NewRegistry(),
		mesh:     newMesh(),
		view:     Viewport{Width: windowWidth, Height: windowHeight},
		Presets:  config.ListPresets(),
		Preset:   name,
		cfg:      cfg,
		InMenu:   interactive,
	}
	if !interactive {
		a.start()
	}
	return a
}

// Run opens a window on cfg and blocks until it is closed.
func Run(name string, cfg *config.Config) error {
	initWindow()
	defer rl.CloseWindow()
	a := NewApp(name, cfg, false)
	a.font = loadFont()
	a.RunLoop()
	return a.Err
}

// RunInteractive opens the window on the preset menu.
func RunInteractive() error {
	initWindow()
	defer rl.CloseWindow()
	a := NewApp("", nil, true)
	a.font = loadFont()
	a.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() {
			return
		}
		a.Draw()
	}
}

func (a *App) start() {
	sim, err := a.registry.Build(a.cfg)
	a.Err = err
	if err != nil {
		a.Running = false
		return
	}
	a.sim = sim
	a.InMenu, a.InConfig, a.Running = false, false, true
}

// Update handles one frame of input and reports whether to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return true
	}
	switch {
	case a.InMenu:
		a.updateMenu()
	case a.InConfig:
		a.updateConfig()
	default:
		a.updateSim()
	}
	return false
}

func (a *App) updateMenu() {
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.Selected = min(a.Selected+1, len(a.Presets)-1)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.Selected = max(a.Selected-1, 0)
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		a.Preset = a.Presets[a.Selected]
		a.cfg = config.GetPreset(a.Preset)
		a.InMenu, a.InConfig, a.ParamSel, a.Err = false, true, 0, nil
	}
}

func (a *App) updateConfig() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.InConfig, a.InMenu = false, true
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		a.start()
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.ParamSel = min(a.ParamSel+1, len(params)-1)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.ParamSel = max(a.ParamSel-1, 0)
	}
	step := 1
	if rl.IsKeyDown(rl.KeyLeftShift) {
		step = 10
	}
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
		params[a.ParamSel].adjust(a.cfg, step)
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
		params[a.ParamSel].adjust(a.cfg, -step)
	}
}

func (a *App) updateSim() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.InMenu, a.Running = true, false
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.start()
	}
	if a.sim == nil || !a.Running {
		return
	}
	if err := a.sim.Tick(ReadInput(rl.IsKeyDown)); err != nil {
		a.Err, a.Running = err, false
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	switch {
	case a.InMenu:
		a.drawMenu()
	case a.InConfig:
		a.drawConfig()
	case a.sim != nil:
		a.drawFrame(a.sim.Frame())
		a.drawHUD()
	default:
		a.drawError()
	}

	rl.EndDrawing()
}

func (a *App) drawHUD() {
	a.drawText("gravsim", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %s", a.Preset), 150, 34, 16, ColText)

	status, col := "RUNNING", ColSelect
	switch {
	case a.Err != nil:
		status, col = "FAILED", rl.Red
	case !a.Running:
		status, col = "PAUSED", ColTextDim
	}
	a.drawText(status, 1150, 30, 16, col)

	st := a.sim.Stats()
	a.drawText(fmt.Sprintf("tick   %d", st.Tick), 30, 80, 16, ColText)
	a.drawText(fmt.Sprintf("count  %d", st.Count), 30, 100, 16, ColText)
	a.drawText(fmt.Sprintf("merges %d", st.Merges), 30, 120, 16, ColText)
	a.drawText(fmt.Sprintf("mass   %.4f", st.TotalMass), 30, 140, 16, ColText)
	a.drawText(fmt.Sprintf("zoom   %.3fx", st.Zoom), 30, 160, 16, ColText)
	if a.Err != nil {
		a.drawText(a.Err.Error(), 30, 620, 14, rl.Red)
	}

	a.drawText("[ARROWS] PAN  [+/-] ZOOM  [P] DEBUG  [SPACE] PAUSE  [R] RESET  [ESC] MENU  [Q] QUIT", 420, 680, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, ColTextDim)
}

func (a *App) drawError() {
	a.drawText("gravsim", 50, 50, 40, ColTextDim)
	if a.Err != nil {
		a.drawText(a.Err.Error(), 50, 120, 16, rl.Red)
	}
	a.drawText("ESC: MENU  Q: QUIT", 1050, 680, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawMenu() {
	a.drawText("gravsim", 50, 50, 40, ColSelect)
	a.drawText("Select Preset", 50, 100, 16, ColTextDim)

	y := 160
	for i, name := range a.Presets {
		if i == a.Selected {
			a.drawText(fmt.Sprintf("> %s", name), 50, y, 20, ColSelect)
		} else {
			a.drawText(fmt.Sprintf("  %s", name), 50, y, 20, ColText)
		}
		y += 28
	}

	a.drawText("ARROWS: NAVIGATE  ENTER: SELECT  Q: QUIT", 850, 680, 14, ColTextDim)
}

func (a *App) drawConfig() {
	a.drawText("gravsim", 50, 50, 40, ColTextDim)
	a.drawText("configure", 240, 65, 20, ColSelect)
	a.drawText(fmt.Sprintf("Preset: %s", a.Preset), 50, 110, 16, ColAccent)

	y := 180
	for i, p := range params {
		line := fmt.Sprintf("%-15s %s", p.name, p.show(a.cfg))
		if i == a.ParamSel {
			a.drawText("> "+line, 50, y, 20, ColSelect)
		} else {
			a.drawText("  "+line, 50, y, 20, ColText)
		}
		y += 28
	}
	if a.Err != nil {
		a.drawText(a.Err.Error(), 50, y+20, 16, rl.Red)
	}

	a.drawText("ARROWS: ADJUST  SHIFT: x10  ENTER: RUN  ESC: BACK", 760, 680, 14, ColTextDim)
}
