package commands

import (
	"fmt"

	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/logging"
	"github.com/arthur-debert/projmarks/pkg/marks"
	"github.com/arthur-debert/projmarks/pkg/paths"
	"github.com/arthur-debert/projmarks/pkg/ui/display"
)

// AddOptions defines the options for Add.
type AddOptions struct {
	Key string

	// Path is the target. For directory marks an empty path means the
	// working directory.
	Path string

	// Dir restricts the target to directories.
	Dir bool

	// Confirm approves overwrites; nil declines them.
	Confirm marks.Confirmer
}

// Add sets a mark in the project the target belongs to.
func Add(app *App, opts AddOptions) (*display.ActionResult, error) {
	logger := logging.GetLogger("commands.add")
	logger.Debug().Str("key", opts.Key).Str("path", opts.Path).Bool("dir", opts.Dir).Msg("Executing command")

	command := "add"
	var (
		res marks.AddResult
		err error
	)
	if opts.Dir {
		command = "add-dir"
		target := opts.Path
		if target == "" {
			if target, err = app.Resolver.Cwd(); err != nil {
				return nil, err
			}
		}
		res, err = app.Store.AddDirectory(opts.Key, target, opts.Confirm)
	} else {
		if opts.Path == "" {
			return nil, errors.New(errors.ErrInvalidInput, "a path is required")
		}
		res, err = app.Store.Add(opts.Key, opts.Path, opts.Confirm)
	}
	if res.Project == "" {
		return nil, err
	}

	result := &display.ActionResult{
		Command: command,
		Status:  res.Status.String(),
		Message: addMessage(res),
		Project: res.Project,
		Key:     res.Key,
	}
	return result, err
}

func addMessage(res marks.AddResult) string {
	target := paths.Relativize(res.Target, res.Project)
	current := paths.Relativize(res.Current, res.Project)
	switch res.Status {
	case marks.Applied:
		return fmt.Sprintf("[key]%s[/key] -> [path]%s[/path]", res.Key, target)
	case marks.AlreadySet:
		return fmt.Sprintf("[key]%s[/key] already points to [path]%s[/path]", res.Key, target)
	case marks.Declined:
		return fmt.Sprintf("[key]%s[/key] still points to [path]%s[/path]", res.Key, current)
	default:
		return res.Message()
	}
}
