package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/experiment"
)

var (
	headStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

var presetInfo = map[string]string{
	"default":  "outward burst in a box",
	"box":      "random velocities, bouncy walls",
	"calm":     "still dust, no walls",
	"ring":     "circular wall",
	"fountain": "recycled through the center",
	"scatter":  "random re-entry",
	"belt":     "asteroid belt around a star",
	"binary":   "two heavy bodies",
}

const (
	stateMenu = iota
	stateConfig
	stateSim
)

// field is one editable line of the config screen. Numeric fields are
// typed in, mode fields cycle with h/l.
type field struct {
	name  string
	get   func(*config.Config) string
	set   func(*config.Config, float64)
	cycle func(*config.Config, int)
}

var fields = []field{
	{
		name: "count",
		get:  func(c *config.Config) string { return strconv.Itoa(c.Generator.Count) },
		set:  func(c *config.Config, v float64) { c.Generator.Count = int(v) },
	},
	{
		name: "mass",
		get:  func(c *config.Config) string { return strconv.FormatFloat(c.Generator.Mass, 'g', 4, 64) },
		set:  func(c *config.Config, v float64) { c.Generator.Mass = v },
	},
	{
		name: "speed",
		get:  func(c *config.Config) string { return strconv.FormatFloat(c.Generator.Speed, 'g', 4, 64) },
		set:  func(c *config.Config, v float64) { c.Generator.Speed = v },
	},
	{
		name: "G",
		get:  func(c *config.Config) string { return strconv.FormatFloat(c.GravitationalConstant, 'g', 4, 64) },
		set:  func(c *config.Config, v float64) { c.GravitationalConstant = v },
	},
	{
		name: "seed",
		get:  func(c *config.Config) string { return strconv.FormatInt(c.Seed, 10) },
		set:  func(c *config.Config, v float64) { c.Seed = int64(v) },
	},
	{
		name:  "merge",
		get:   func(c *config.Config) string { return strconv.FormatBool(c.Merge) },
		cycle: func(c *config.Config, _ int) { c.Merge = !c.Merge },
	},
	{
		name:  "boundary",
		get:   func(c *config.Config) string { return c.Boundary.Mode },
		cycle: func(c *config.Config, d int) { c.Boundary.Mode = config.CycleMode(config.BoundaryModes, c.Boundary.Mode, d) },
	},
	{
		name:  "generator",
		get:   func(c *config.Config) string { return c.Generator.Mode },
		cycle: func(c *config.Config, d int) { c.Generator.Mode = config.CycleMode(config.GeneratorModes, c.Generator.Mode, d) },
	},
}

// App picks a preset, lets the user tweak it, then hands over to a live
// Model.
type App struct {
	state, cursor int
	presets       []string
	selected      string
	cfg           *config.Config
	registry      *experiment.Registry
	fieldCursor   int
	editing       bool
	editBuf       string
	err           error
	live          Model
}

func NewInteractiveApp() *App {
	return &App{
		state:    stateMenu,
		presets:  config.ListPresets(),
		registry: experiment.NewRegistry(),
	}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.state == stateSim {
		next, cmd := a.live.Update(msg)
		a.live = next.(Model)
		return a, cmd
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch a.state {
		case stateMenu:
			return a.menuKey(msg)
		case stateConfig:
			return a.configKey(msg)
		}
	}
	return a, nil
}

func (a App) menuKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.presets)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.selected = a.presets[a.cursor]
		a.cfg = config.GetPreset(a.selected)
		a.state, a.fieldCursor, a.err = stateConfig, 0, nil
	}
	return a, nil
}

func (a App) configKey(msg tea.KeyMsg) (App, tea.Cmd) {
	f := fields[a.fieldCursor]
	if a.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(a.editBuf, 64); err == nil {
				f.set(a.cfg, v)
			}
			a.editing, a.editBuf = false, ""
		case "esc":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && strings.ContainsAny(s, "0123456789.-e") {
				a.editBuf += s
			}
		}
		return a, nil
	}
	switch msg.String() {
	case "q", "esc":
		a.state = stateMenu
	case "up", "k":
		if a.fieldCursor > 0 {
			a.fieldCursor--
		}
	case "down", "j":
		if a.fieldCursor < len(fields)-1 {
			a.fieldCursor++
		}
	case "enter", " ":
		if f.cycle != nil {
			f.cycle(a.cfg, 1)
		} else {
			a.editing, a.editBuf = true, f.get(a.cfg)
		}
	case "left", "h":
		if f.cycle != nil {
			f.cycle(a.cfg, -1)
		}
	case "right", "l":
		if f.cycle != nil {
			f.cycle(a.cfg, 1)
		}
	case "s":
		return a.start()
	}
	return a, nil
}

func (a App) start() (App, tea.Cmd) {
	cfg := a.cfg.Clone()
	live, err := NewModel(a.selected, func() (*dynamo.Simulator, error) {
		return a.registry.Build(cfg)
	})
	if err != nil {
		a.err = err
		return a, nil
	}
	a.live, a.state = live, stateSim
	return a, a.live.Init()
}

func (a App) View() string {
	switch a.state {
	case stateMenu:
		return a.viewMenu()
	case stateConfig:
		return a.viewConfig()
	case stateSim:
		return a.live.View()
	}
	return ""
}

func header(title, sub string) string {
	return "\n\n    " + headStyle.Render(title) + "\n    " + subStyle.Render(sub) + "\n    " + subStyle.Render("─────────────────────────") + "\n\n"
}

func hint(pairs ...string) string {
	var b strings.Builder
	b.WriteString("\n    ")
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(keyStyle.Render(pairs[i]) + idleStyle.Render(" "+pairs[i+1]+"  "))
	}
	return b.String() + "\n"
}

func (a App) viewMenu() string {
	var b strings.Builder
	b.WriteString(header("GRAVSIM", "2d gravity sandbox"))
	for i, name := range a.presets {
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", cursorStyle.Render("▸"), activeStyle.Render(fmt.Sprintf("%-10s", name)), accentStyle.Render(presetInfo[name])))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", idleStyle.Render(fmt.Sprintf("  %-10s", name)), faintStyle.Render(presetInfo[name])))
		}
	}
	b.WriteString(hint("j/k", "navigate", "enter", "select", "q", "quit"))
	return b.String()
}

func (a App) viewConfig() string {
	var b strings.Builder
	b.WriteString(header(strings.ToUpper(a.selected), presetInfo[a.selected]))
	for i, f := range fields {
		val := f.get(a.cfg)
		if a.editing && i == a.fieldCursor {
			val = a.editBuf + "_"
		}
		if i == a.fieldCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", cursorStyle.Render("▸"), activeStyle.Render(fmt.Sprintf("%-10s", f.name)), accentStyle.Bold(true).Render(fmt.Sprintf("%16s", val))))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", idleStyle.Render(fmt.Sprintf("  %-10s", f.name)), faintStyle.Render(fmt.Sprintf("%16s", val))))
		}
	}
	if a.err != nil {
		b.WriteString("\n    " + badge("#ff3030", a.err.Error()) + "\n")
	}
	b.WriteString(hint("j/k", "select", "enter", "edit", "h/l", "cycle", "s", "start", "esc", "back"))
	return b.String()
}

func RunInteractive() error {
	_, err := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen()).Run()
	return err
}
