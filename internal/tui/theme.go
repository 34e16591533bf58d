package tui

import (
	"github.com/akyairhashvil/multitimer/internal/config"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Category  lipgloss.Style
	Timer     lipgloss.Style
	Running   lipgloss.Style
	Completed lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style
	Modal     lipgloss.Style
	Input     lipgloss.Style
}

var Themes = map[string]Theme{
	config.ThemeLight: {
		Name:      "Light",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("57")).Bold(true),
		Category:  lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Running:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Strikethrough(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("162")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("162")).Padding(1, 3),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1).Width(50),
	},
	config.ThemeDark: {
		Name:      "Dark",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Category:  lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Running:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(1, 3),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes[config.ThemeLight]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// nextTheme flips between light and dark.
func nextTheme(name string) string {
	if name == config.ThemeDark {
		return config.ThemeLight
	}
	return config.ThemeDark
}
