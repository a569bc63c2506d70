package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// tagPattern matches the innermost [tag]...[/tag] pair.
var tagPattern = regexp.MustCompile(`\[([a-z]+)\]([^\[]*)\[/([a-z]+)\]`)

// Markup renders messages written with [tag]...[/tag] markers, e.g.
// "[key]m[/key] set to [path]src/main.go[/path]".
type Markup struct {
	styles map[string]lipgloss.Style
}

// NewMarkup creates a Markup with the default tags.
func NewMarkup() *Markup {
	return &Markup{
		styles: map[string]lipgloss.Style{
			"title":   TitleStyle,
			"success": SuccessStyle,
			"error":   ErrorStyle,
			"warning": WarningStyle,
			"info":    InfoStyle,
			"code":    CodeStyle,
			"path":    PathStyle,
			"muted":   MutedStyle,
			"bold":    lipgloss.NewStyle().Bold(true),
			"key":     KeyStyle,
			"dir":     DirStyle,
			"project": ProjectStyle,
		},
	}
}

// AddStyle registers or replaces a tag.
func (m *Markup) AddStyle(tag string, style lipgloss.Style) {
	m.styles[tag] = style
}

// Render applies the styles of known tags. Unknown or mismatched tags are
// left as they are.
func (m *Markup) Render(text string) string {
	return m.rewrite(text, func(tag, content string) (string, bool) {
		style, ok := m.styles[tag]
		if !ok {
			return "", false
		}
		return style.Render(content), true
	})
}

// Strip removes known tags, keeping their content.
func (m *Markup) Strip(text string) string {
	return m.rewrite(text, func(tag, content string) (string, bool) {
		_, ok := m.styles[tag]
		return content, ok
	})
}

// rewrite replaces tag pairs from the inside out until none are left.
func (m *Markup) rewrite(text string, fn func(tag, content string) (string, bool)) string {
	for {
		changed := false
		text = tagPattern.ReplaceAllStringFunc(text, func(match string) string {
			sub := tagPattern.FindStringSubmatch(match)
			if sub[1] != sub[3] {
				return match
			}
			out, ok := fn(sub[1], sub[2])
			if !ok {
				return match
			}
			changed = true
			return out
		})
		if !changed {
			return text
		}
	}
}

var defaultMarkup = NewMarkup()

// Render renders markup with the default tags.
func Render(text string) string {
	return defaultMarkup.Render(text)
}

// Strip removes markup with the default tags.
func Strip(text string) string {
	return defaultMarkup.Strip(text)
}
