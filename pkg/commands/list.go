package commands

import (
	"github.com/arthur-debert/projmarks/pkg/types"
	"github.com/arthur-debert/projmarks/pkg/ui/display"
)

// ListOptions defines the options for List and ListAll.
type ListOptions struct {
	Hint string
}

// List returns the marks of the current project.
func List(app *App, opts ListOptions) (*display.Listing, error) {
	root, err := app.Store.ProjectRoot(opts.Hint)
	if err != nil {
		return nil, err
	}
	listing := listing(app, root, app.Store.Project(root))
	return &listing, nil
}

// ListAll returns the marks of every project, sorted by root.
func ListAll(app *App) *display.Overview {
	snapshot := app.Store.Snapshot()
	overview := &display.Overview{Projects: make([]display.Listing, 0, len(snapshot))}
	for _, root := range snapshot.Projects() {
		overview.Projects = append(overview.Projects, listing(app, root, snapshot[root]))
	}
	return overview
}

func listing(app *App, root string, pm types.ProjectMarks) display.Listing {
	l := display.Listing{Project: root, Marks: make([]display.Mark, 0, len(pm))}
	for _, key := range pm.Keys() {
		stored := pm[key]
		m := display.Mark{
			Key:      key,
			Path:     app.Editor.DisplayPath(stored, root),
			Absolute: stored,
		}
		if abs, err := app.Resolver.ResolveProjectPath(stored, root); err == nil {
			m.Absolute = abs
			m.IsDir = app.Resolver.IsDir(abs)
		}
		l.Marks = append(l.Marks, m)
	}
	return l
}

// Keys returns the keys in use across all projects.
func Keys(app *App) *display.KeySet {
	return &display.KeySet{Keys: app.Store.Keys()}
}
