package keybind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/keybind"
)

func TestShellBinder_BindRejectsInvalidNames(t *testing.T) {
	b := keybind.NewShellBinder()

	require.NoError(t, b.Bind("ma", "a"))
	require.NoError(t, b.Bind("m1", "1"))

	for _, lhs := range []string{"m a", "m'", "m$x", "-m", "m/x"} {
		err := b.Bind(lhs, "k")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidKey), lhs)
	}

	assert.Equal(t, map[string]string{"ma": "a", "m1": "1"}, b.Aliases())
}

func TestShellBinder_Unbind(t *testing.T) {
	b := keybind.NewShellBinder()
	require.NoError(t, b.Bind("ma", "a"))
	require.NoError(t, b.Unbind("ma"))
	require.NoError(t, b.Unbind("ma"))
	assert.Empty(t, b.Aliases())
}

func TestShellBinder_ScriptBash(t *testing.T) {
	b := keybind.NewShellBinder()
	reg := keybind.NewRegistry("m", b)
	require.NoError(t, reg.Rebuild([]string{"b", "a"}))

	script, err := b.Script(keybind.ScriptOptions{Shell: keybind.ShellBash, ActionPrefix: "M"})
	require.NoError(t, err)

	assert.Contains(t, script, "__projmarks_jump() {")
	assert.Contains(t, script, `projmarks open --print -- "$1"`)
	assert.Contains(t, script, "alias ma='__projmarks_jump a'\nalias mb='__projmarks_jump b'\n")
	assert.Contains(t, script, "alias Ma='projmarks add'")
	assert.Contains(t, script, "alias Md='projmarks add-dir'")
	assert.Contains(t, script, "alias Mr='projmarks rm'")
	assert.Contains(t, script, "alias Ml='projmarks edit'")
}

func TestShellBinder_ScriptFish(t *testing.T) {
	b := keybind.NewShellBinder()
	require.NoError(t, b.Bind("ma", "a"))

	script, err := b.Script(keybind.ScriptOptions{Shell: keybind.ShellFish, Program: "pm"})
	require.NoError(t, err)

	assert.Contains(t, script, "function __projmarks_jump")
	assert.Contains(t, script, "pm open --print -- $argv[1]")
	assert.Contains(t, script, "alias ma '__projmarks_jump a'")
	assert.NotContains(t, script, "add-dir")
}

func TestShellBinder_ScriptUnsupportedShell(t *testing.T) {
	_, err := keybind.NewShellBinder().Script(keybind.ScriptOptions{Shell: "tcsh"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
