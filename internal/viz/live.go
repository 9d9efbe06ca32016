package viz

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	logLines        = 4
)

type TickMsg time.Time

// Builder creates a fresh simulator. The viewer calls it on start and on
// every reset.
type Builder func() (*dynamo.Simulator, error)

// Model is the terminal viewer. Key presses between two ticks are folded
// into one dynamo.Input, so every press reaches the simulator exactly once.
type Model struct {
	build         Builder
	sim           *dynamo.Simulator
	name          string
	width, height int
	canvas        *Canvas
	theme         Theme
	pending       dynamo.Input
	running       bool
	err           error
	diag          *bytes.Buffer
	log           []string
	initialCount  int
	lastMerges    int
	countHistory  []float64
	mergeHistory  []float64
	recorder      *Recorder
	showHelp      bool
}

func NewModel(name string, build Builder) (Model, error) {
	m := Model{
		build:   build,
		name:    name,
		width:   width,
		height:  height,
		canvas:  NewCanvas(width, height),
		theme:   ThemeStarfield,
		running: true,
		diag:    &bytes.Buffer{},
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.recorder != nil {
				_ = m.recorder.Save()
			}
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			if err := m.reset(); err != nil {
				m.err = err
			}
		case "up", "w":
			m.pending.PanUp = true
		case "down", "s":
			m.pending.PanDown = true
		case "left", "a":
			m.pending.PanLeft = true
		case "right", "d":
			m.pending.PanRight = true
		case "+", "=":
			m.pending.ZoomIn = true
		case "-", "_":
			m.pending.ZoomOut = true
		case "p":
			m.pending.Debug = true
		case "t":
			m.theme = NextTheme(m.theme)
		case "g":
			m.toggleRecording()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		w := max(20, msg.Width-54)
		h := max(8, msg.Height-4)
		if w != m.width || h != m.height {
			m.width, m.height = w, h
			m.canvas = NewCanvas(w, h)
		}
	case TickMsg:
		if m.running && m.err == nil {
			m.step()
		}
		m.draw()
		if m.recorder != nil {
			m.recorder.Capture(m.canvas)
		}
		return m, tick()
	}
	return m, nil
}

// step feeds the pending input to the simulator and records history.
func (m *Model) step() {
	in := m.pending
	m.pending = dynamo.Input{}

	if err := m.sim.Tick(in); err != nil {
		m.err = err
		m.running = false
	}
	m.drainDiagnostics()

	stats := m.sim.Stats()
	m.countHistory = appendCapped(m.countHistory, float64(stats.Count))
	m.mergeHistory = appendCapped(m.mergeHistory, float64(stats.Merges-m.lastMerges))
	m.lastMerges = stats.Merges
}

func (m *Model) drainDiagnostics() {
	if m.diag.Len() == 0 {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(m.diag.String(), "\n"), "\n") {
		m.log = append(m.log, line)
	}
	m.diag.Reset()
	if len(m.log) > logLines {
		m.log = m.log[len(m.log)-logLines:]
	}
}

func appendCapped(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

func (m *Model) reset() error {
	sim, err := m.build()
	if err != nil {
		return err
	}
	sim.SetDiagnostics(m.diag)
	m.sim = sim
	m.err = nil
	m.pending = dynamo.Input{}
	m.initialCount = sim.Count()
	m.lastMerges = 0
	m.countHistory = m.countHistory[:0]
	m.mergeHistory = m.mergeHistory[:0]
	m.log = m.log[:0]
	m.diag.Reset()
	return nil
}

func (m *Model) toggleRecording() {
	if m.recorder == nil {
		m.recorder = NewRecorder("gravsim.gif")
		return
	}
	if err := m.recorder.Save(); err != nil {
		m.log = append(m.log, fmt.Sprintf("gif: %v", err))
	}
	m.recorder = nil
}

// project maps world coordinates to canvas dots. The square [-1, 1]² fits
// the shorter canvas side, y points up.
func (m *Model) project(x, y float64) (float64, float64, float64) {
	cw, ch := m.canvas.Dots()
	scale := float64(min(cw, ch)) / 2
	return float64(cw)/2 + x*scale, float64(ch)/2 - y*scale, scale
}

func (m *Model) draw() {
	m.canvas.Clear()
	f := m.sim.Frame()

	if sq, ok := m.sim.Config().Boundary.(physics.Square); ok {
		e := sq.HalfExtent * m.sim.Zoom()
		x0, y0, _ := m.project(-e, e)
		x1, y1, _ := m.project(e, -e)
		ix0, iy0, ix1, iy1 := int(x0), int(y0), int(x1), int(y1)
		m.canvas.DrawLine(ix0, iy0, ix1, iy0)
		m.canvas.DrawLine(ix1, iy0, ix1, iy1)
		m.canvas.DrawLine(ix1, iy1, ix0, iy1)
		m.canvas.DrawLine(ix0, iy1, ix0, iy0)
	}

	for i := 0; i < f.Count; i++ {
		x, y, scale := m.project(f.X[i], f.Y[i])
		if i < f.Particles() {
			m.canvas.FillCircle(x, y, f.R[i]*scale)
		} else {
			m.canvas.DrawCircle(x, y, f.R[i]*scale)
		}
	}
}

func (m Model) status() string {
	switch {
	case m.err != nil:
		return badge("#ff3030", "FAILED")
	case m.recorder != nil:
		return badge("#ff5050", "● REC")
	case !m.running:
		return badge("#ffb020", "PAUSED")
	}
	return badge("#30e090", "RUNNING")
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(
		lipgloss.NewStyle().Foreground(m.theme.Particle).Render(m.canvas.String()))

	var s strings.Builder
	title := lipgloss.NewStyle().Foreground(m.theme.Title).Bold(true)
	s.WriteString(title.Render("GRAVSIM · "+strings.ToUpper(m.name)) + "\n")
	s.WriteString(m.status() + "\n")

	if len(m.countHistory) > 1 {
		chart := asciigraph.Plot(m.countHistory, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("Particles"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	st := m.sim.Stats()
	s.WriteString(Row("Tick", "%d", st.Tick))
	s.WriteString(Row("Count", "%d", st.Count))
	s.WriteString(Row("Merges", "%d", st.Merges))
	s.WriteString(Row("Mass", "%.4f", st.TotalMass))
	s.WriteString(Row("Zoom", "%.3fx", st.Zoom))
	s.WriteString(Row("Boundary", "%s", m.sim.Config().Boundary.Name()))
	if m.initialCount > 0 {
		s.WriteString(labelStyle.Render("Survivors") + ProgressBar(float64(st.Count)/float64(m.initialCount), 20) + "\n")
	}
	s.WriteString(labelStyle.Render("Merge rate") + SparklineChart(m.mergeHistory, 20) + "\n")

	if m.err != nil {
		s.WriteString("\n" + badge("#ff3030", m.err.Error()) + "\n")
	}
	if len(m.log) > 0 {
		s.WriteString("\n" + Rule(30) + "\n")
		muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
		for _, line := range m.log {
			s.WriteString(muted.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("─────────────────────\n←↑↓→:Pan +/-:Zoom P:Debug\nSP:Pause R:Reset Q:Quit\nT:Theme  G:Record ?:Help"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Arrows/WASD - Pan the view          ║
║  + / -       - Zoom in / out         ║
║  P           - Print debug angles    ║
║  Space       - Pause/Resume          ║
║  R           - Reset simulation      ║
║  G           - Toggle GIF recording  ║
║  T           - Cycle themes          ║
║  Q           - Quit                  ║
║  ?           - Toggle this help      ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run starts the terminal viewer in the alternate screen.
func Run(name string, build Builder) error {
	m, err := NewModel(name, build)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
