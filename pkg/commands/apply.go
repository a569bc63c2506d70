package commands

import (
	"fmt"

	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/logging"
	"github.com/arthur-debert/projmarks/pkg/ui/display"
)

// ApplyOptions defines the options for Apply.
type ApplyOptions struct {
	Hint string

	// Text is a full bulk-edit document for the project.
	Text string
}

// Apply replaces the current project's marks with the ones in a bulk-edit
// document. A document with any bad line changes nothing.
func Apply(app *App, opts ApplyOptions) (*display.ActionResult, error) {
	root, err := app.Store.ProjectRoot(opts.Hint)
	if err != nil {
		return nil, err
	}
	return commit(app, root, opts.Text)
}

func commit(app *App, root, text string) (*display.ActionResult, error) {
	pm, err := app.Editor.Commit(text, root, app.Store)
	if err != nil && !errors.IsErrorCode(err, errors.ErrPersistWrite) {
		return nil, err
	}

	logger := logging.GetLogger("commands.apply")
	logger.Info().
		Str("project", root).
		Int("marks", len(pm)).
		Msg("bulk edit committed")

	msg := fmt.Sprintf("[project]%s[/project] now has %d marks", root, len(pm))
	if len(pm) == 0 {
		msg = fmt.Sprintf("removed all marks of [project]%s[/project]", root)
	}
	return &display.ActionResult{
		Command: "apply",
		Status:  "committed",
		Message: msg,
		Project: root,
	}, err
}
