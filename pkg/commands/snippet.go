package commands

import (
	"github.com/arthur-debert/projmarks/pkg/keybind"
)

// SnippetOptions defines the options for Snippet.
type SnippetOptions struct {
	Shell string

	// Program is the name the aliases call; default "projmarks".
	Program string
}

// Snippet renders the shell integration: the jump function, one alias per
// mark key and the action aliases.
func Snippet(app *App, opts SnippetOptions) (string, error) {
	app.Store.Load()
	return app.Binder.Script(keybind.ScriptOptions{
		Shell:        opts.Shell,
		Program:      opts.Program,
		ActionPrefix: app.Config.ActionPrefix,
	})
}
