package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(46)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
)

// badge renders a bold status word in the given color.
func badge(hex, text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex)).Render(text)
}

// gauge colors, lowest level first.
var gauge = [...]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#e05555")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#e0b040")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#40d090")),
}

// gaugeStyle picks a gauge color for a normalized value: above hi is the
// top level, above mid the middle one.
func gaugeStyle(v, mid, hi float64) lipgloss.Style {
	switch {
	case v > hi:
		return gauge[2]
	case v > mid:
		return gauge[1]
	}
	return gauge[0]
}

// Row renders a label/value line of the stats panel.
func Row(label, format string, args ...any) string {
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, args...)) + "\n"
}

// ProgressBar renders a fraction in [0, 1] as a colored bar.
func ProgressBar(fraction float64, width int) string {
	filled := max(0, min(int(fraction*float64(width)), width))
	return gaugeStyle(fraction, 0.4, 0.8).Render(
		strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled))
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// SparklineChart renders the last width values as a one-line bar chart,
// scaled between their own minimum and maximum.
func SparklineChart(values []float64, width int) string {
	if len(values) > width {
		values = values[len(values)-width:]
	}
	if len(values) == 0 {
		return ruleStyle.Render(strings.Repeat("·", width))
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo, hi = min(lo, v), max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	top := len(sparkLevels) - 1
	var out strings.Builder
	for _, v := range values {
		norm := (v - lo) / span
		level := max(0, min(int(norm*float64(top)), top))
		out.WriteString(gaugeStyle(norm, 0.3, 0.7).Render(string(sparkLevels[level])))
	}
	return out.String()
}

// Rule renders a horizontal divider of the given width.
func Rule(width int) string {
	return ruleStyle.Render(strings.Repeat("─", max(0, width)))
}
