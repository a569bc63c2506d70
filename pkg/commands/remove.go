package commands

import (
	"fmt"

	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/logging"
	"github.com/arthur-debert/projmarks/pkg/ui/display"
)

// RemoveOptions defines the options for Remove.
type RemoveOptions struct {
	Key string

	// Hint locates the project; empty means the working directory.
	Hint string
}

// Remove deletes a mark from the current project. A failed write still
// returns the result, since the mark is gone for the rest of the session.
func Remove(app *App, opts RemoveOptions) (*display.ActionResult, error) {
	logger := logging.GetLogger("commands.rm")
	logger.Debug().Str("key", opts.Key).Msg("Executing command")

	root, err := app.Store.ProjectRoot(opts.Hint)
	if err != nil {
		return nil, err
	}

	err = app.Store.Remove(opts.Key, root)
	if err != nil && !errors.IsErrorCode(err, errors.ErrPersistWrite) {
		return nil, err
	}

	return &display.ActionResult{
		Command: "rm",
		Status:  "removed",
		Message: fmt.Sprintf("removed [key]%s[/key]", opts.Key),
		Project: root,
		Key:     opts.Key,
	}, err
}
