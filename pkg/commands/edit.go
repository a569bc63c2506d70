package commands

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/logging"
	"github.com/arthur-debert/projmarks/pkg/ui/display"
)

// EditOptions defines the options for Edit.
type EditOptions struct {
	Hint string

	// Open shows the listing file to the user and returns when they are
	// done with it.
	Open func(path string) error

	// Retry is asked whether to reopen the file after a rejected edit.
	// Nil means never.
	Retry func(err error) bool

	// TempDir holds the listing file; empty means os.TempDir().
	TempDir string
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Edit renders the current project's marks to a file, lets the user edit
// it and commits the result. Rejected documents can be edited again.
func Edit(app *App, opts EditOptions) (*display.ActionResult, error) {
	logger := logging.GetLogger("commands.edit")

	root, err := app.Store.ProjectRoot(opts.Hint)
	if err != nil {
		return nil, err
	}

	original := app.Editor.RenderText(root, app.Store.Project(root))

	dir := opts.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	name := unsafeNameChars.ReplaceAllString(filepath.Base(root), "_")
	path := filepath.Join(dir, fmt.Sprintf("projmarks-%d-%s.marks", os.Getpid(), name))

	if err := app.FS.WriteFile(path, []byte(original), 0600); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot write listing to %s", path)
	}
	defer func() {
		if err := app.FS.Remove(path); err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("listing file not removed")
		}
	}()

	for {
		if err := opts.Open(path); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "editor exited with an error")
		}

		data, err := app.FS.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "cannot read listing from %s", path)
		}

		if string(data) == original {
			logger.Debug().Str("project", root).Msg("listing unchanged")
			return &display.ActionResult{
				Command: "edit",
				Status:  "unchanged",
				Message: "no changes",
				Project: root,
			}, nil
		}

		res, err := commit(app, root, string(data))
		if err == nil || !errors.IsErrorCode(err, errors.ErrLine) || opts.Retry == nil || !opts.Retry(err) {
			if res != nil {
				res.Command = "edit"
			}
			return res, err
		}
		logger.Debug().Err(err).Msg("reopening listing")
	}
}

// EditorCommand picks the command that opens the listing: the configured
// opener, then $VISUAL, then $EDITOR, then vi.
func EditorCommand(configured string) []string {
	for _, candidate := range []string{configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields
		}
	}
	return []string{"vi"}
}

// ExecOpener returns an Open function that runs command with the file
// appended, attached to the given streams.
func ExecOpener(command []string, stdin io.Reader, stdout, stderr io.Writer) func(string) error {
	return func(path string) error {
		args := append(append([]string(nil), command[1:]...), path)
		cmd := exec.Command(command[0], args...)
		cmd.Stdin = stdin
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		return cmd.Run()
	}
}
