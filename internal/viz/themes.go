package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the particle field and the boundary overlay.
type Theme struct {
	Name     string
	Particle lipgloss.Color
	Overlay  lipgloss.Color
	Title    lipgloss.Color
	Muted    lipgloss.Color
}

var (
	ThemeStarfield = Theme{
		Name:     "starfield",
		Particle: lipgloss.Color("#ffffff"),
		Overlay:  lipgloss.Color("#4466ff"),
		Title:    lipgloss.Color("#00ffff"),
		Muted:    lipgloss.Color("#666688"),
	}

	ThemeRetroGreen = Theme{
		Name:     "retro",
		Particle: lipgloss.Color("#00ff00"),
		Overlay:  lipgloss.Color("#005500"),
		Title:    lipgloss.Color("#88ff88"),
		Muted:    lipgloss.Color("#005500"),
	}

	ThemeSunset = Theme{
		Name:     "sunset",
		Particle: lipgloss.Color("#feca57"),
		Overlay:  lipgloss.Color("#ff6b6b"),
		Title:    lipgloss.Color("#ff9ff3"),
		Muted:    lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{ThemeStarfield, ThemeRetroGreen, ThemeSunset}
)

func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeStarfield
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
