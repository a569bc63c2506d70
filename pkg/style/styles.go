package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var defaultStyles = NewStyles(DefaultTheme)

// Package level styles, built from DefaultTheme
var (
	TitleStyle   = defaultStyles.Title
	MutedStyle   = defaultStyles.Muted
	CodeStyle    = defaultStyles.Code
	PathStyle    = defaultStyles.Path
	KeyStyle     = defaultStyles.Key
	DirStyle     = defaultStyles.Dir
	ProjectStyle = defaultStyles.Project
	SuccessStyle = defaultStyles.Success
	WarningStyle = defaultStyles.Warning
	ErrorStyle   = defaultStyles.Error
	InfoStyle    = defaultStyles.Info
)

// Status indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator    = InfoStyle.Render("•")
)

// Indent pads s by two spaces per level.
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

// PadRight pads s with spaces up to width visible cells.
func PadRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
