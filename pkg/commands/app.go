package commands

import (
	"github.com/arthur-debert/projmarks/pkg/bulkedit"
	"github.com/arthur-debert/projmarks/pkg/config"
	"github.com/arthur-debert/projmarks/pkg/datastore"
	"github.com/arthur-debert/projmarks/pkg/keybind"
	"github.com/arthur-debert/projmarks/pkg/marks"
	"github.com/arthur-debert/projmarks/pkg/paths"
	"github.com/arthur-debert/projmarks/pkg/types"
)

// App holds the collaborators shared by all commands.
type App struct {
	Config   *config.Config
	FS       types.FS
	Resolver *paths.Resolver
	Binder   *keybind.ShellBinder
	Registry *keybind.Registry
	Store    *marks.Store
	Editor   *bulkedit.Editor
}

// NewApp wires an App from a validated configuration.
func NewApp(cfg *config.Config, fs types.FS, opts ...paths.Option) *App {
	resolver := paths.NewResolver(fs, cfg.ProjectMarkers, opts...)
	binder := keybind.NewShellBinder()
	registry := keybind.NewRegistry(cfg.JumpPrefix, binder)

	return &App{
		Config:   cfg,
		FS:       fs,
		Resolver: resolver,
		Binder:   binder,
		Registry: registry,
		Store: marks.New(marks.Options{
			Resolver:  resolver,
			DataStore: datastore.New(fs, cfg.StorageFile),
			Registry:  registry,
		}),
		Editor: bulkedit.New(resolver),
	}
}
