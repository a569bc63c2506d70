package commands

import (
	"github.com/arthur-debert/projmarks/pkg/logging"
	"github.com/arthur-debert/projmarks/pkg/types"
)

// OpenOptions defines the options for Open.
type OpenOptions struct {
	Key  string
	Hint string
}

// Open resolves a mark to its absolute target.
func Open(app *App, opts OpenOptions) (types.Target, error) {
	target, err := app.Store.Open(opts.Key, opts.Hint)
	if err != nil {
		return types.Target{}, err
	}
	logger := logging.GetLogger("commands.open")
	logger.Debug().
		Str("key", opts.Key).
		Str("path", target.Path).
		Bool("dir", target.IsDir).
		Msg("mark resolved")
	return target, nil
}
