package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette used by the mark listings and messages. Every
// color adapts to light and dark terminals.
type Theme struct {
	Heading lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Code    lipgloss.AdaptiveColor
	Path    lipgloss.AdaptiveColor
	Key     lipgloss.AdaptiveColor
	Dir     lipgloss.AdaptiveColor
	Project lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor
}

// DefaultTheme is the palette the package level styles are built from.
var DefaultTheme = Theme{
	Heading: lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"},
	Muted:   lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"},
	Code:    lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"},
	Path:    lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#A0A8B0"},
	Key:     lipgloss.AdaptiveColor{Light: "#8B5CF6", Dark: "#A78BFA"},
	Dir:     lipgloss.AdaptiveColor{Light: "#0EA5E9", Dark: "#38BDF8"},
	Project: lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"},
	Success: lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"},
	Warning: lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#FFD54F"},
	Error:   lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"},
	Info:    lipgloss.AdaptiveColor{Light: "#17A2B8", Dark: "#4DD0E1"},
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Code    lipgloss.Style
	Path    lipgloss.Style
	Key     lipgloss.Style
	Dir     lipgloss.Style
	Project lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// NewStyles builds the styles of t.
func NewStyles(t Theme) Styles {
	fg := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	return Styles{
		Title:   fg(t.Heading).Bold(true),
		Muted:   fg(t.Muted),
		Code:    fg(t.Code),
		Path:    fg(t.Path),
		Key:     fg(t.Key).Bold(true),
		Dir:     fg(t.Dir),
		Project: fg(t.Project).Bold(true),
		Success: fg(t.Success).Bold(true),
		Warning: fg(t.Warning).Bold(true),
		Error:   fg(t.Error).Bold(true),
		Info:    fg(t.Info),
	}
}
