package style_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/projmarks/pkg/style"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "nothing here", "nothing here"},
		{"single tag", "[key]m[/key] set", "m set"},
		{"two tags", "[key]m[/key] -> [path]src/main.go[/path]", "m -> src/main.go"},
		{"nested", "[bold]mark [key]m[/key][/bold]", "mark m"},
		{"unknown tag kept", "[nope]x[/nope]", "[nope]x[/nope]"},
		{"mismatched kept", "[key]x[/path]", "[key]x[/path]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, style.Strip(tt.in))
		})
	}
}

func TestRender_AsciiProfile(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "m -> src", style.Render("[key]m[/key] -> [path]src[/path]"))
}

func TestMarkup_AddStyle(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	m := style.NewMarkup()
	m.AddStyle("shout", lipgloss.NewStyle())
	assert.Equal(t, "hey", m.Render("[shout]hey[/shout]"))
	assert.Equal(t, "hey", m.Strip("[shout]hey[/shout]"))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "Hello", style.Indent("Hello", 0))
	assert.Equal(t, "  Hello", style.Indent("Hello", 1))
	assert.Equal(t, "    Hello", style.Indent("Hello", 2))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", style.PadRight("ab", 5))
	assert.Equal(t, "abcdef", style.PadRight("abcdef", 3))
}

func TestNewStyles(t *testing.T) {
	s := style.NewStyles(style.DefaultTheme)
	assert.True(t, s.Key.GetBold())
	assert.True(t, s.Project.GetBold())
	assert.False(t, s.Path.GetBold())
	assert.Equal(t, style.DefaultTheme.Dir, s.Dir.GetForeground())
}
