package config

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/paths"
)

// Config holds the user settings.
type Config struct {
	// JumpPrefix precedes a mark key to form its jump alias. Default "m".
	JumpPrefix string `koanf:"jump_prefix" toml:"jump_prefix" comment:"Prefix for jump aliases, empty disables them"`

	// ActionPrefix precedes the action alias suffixes. Default "M".
	ActionPrefix string `koanf:"action_prefix" toml:"action_prefix" comment:"Prefix for action aliases, empty disables them"`

	// StorageFile is the marks file. Default $XDG_DATA_HOME/projmarks/marks.json.
	StorageFile string `koanf:"storage_file" toml:"storage_file" comment:"Marks file; .json, .yaml/.yml or .toml"`

	// ProjectMarkers are the names identifying a project root, in lookup
	// order. Default [".git", ".hg", ".svn"].
	ProjectMarkers []string `koanf:"project_markers" toml:"project_markers" comment:"Names that identify a project root"`

	// ListOpener is the command that opens the bulk-edit listing. Empty
	// means $VISUAL, then $EDITOR, then vi.
	ListOpener string `koanf:"list_opener" toml:"list_opener" comment:"Command for projmarks edit, empty uses $VISUAL or $EDITOR"`
}

// Default returns the built-in settings, with the storage file resolved
// against p.
func Default(p paths.Paths) *Config {
	return &Config{
		JumpPrefix:     "m",
		ActionPrefix:   "M",
		StorageFile:    p.StorageFile(),
		ProjectMarkers: append([]string(nil), paths.DefaultMarkers...),
	}
}

// Validate normalizes the settings in place and rejects unusable ones.
func (c *Config) Validate() error {
	if strings.IndexFunc(c.JumpPrefix, unicode.IsSpace) >= 0 {
		return errors.Newf(errors.ErrConfigValid, "jump_prefix %q cannot contain whitespace", c.JumpPrefix)
	}
	if strings.IndexFunc(c.ActionPrefix, unicode.IsSpace) >= 0 {
		return errors.Newf(errors.ErrConfigValid, "action_prefix %q cannot contain whitespace", c.ActionPrefix)
	}

	markers := make([]string, 0, len(c.ProjectMarkers))
	for _, m := range c.ProjectMarkers {
		if m = strings.TrimSpace(m); m != "" {
			markers = append(markers, m)
		}
	}
	if len(markers) == 0 {
		return errors.New(errors.ErrConfigValid, "project_markers cannot be empty")
	}
	c.ProjectMarkers = markers

	storage := strings.TrimSpace(c.StorageFile)
	if storage == "" {
		return errors.New(errors.ErrConfigValid, "storage_file cannot be empty")
	}
	storage = paths.ExpandHome(storage)
	if !filepath.IsAbs(storage) {
		abs, err := filepath.Abs(storage)
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "cannot absolutize storage_file %q", storage)
		}
		storage = abs
	}
	c.StorageFile = filepath.Clean(storage)
	c.ListOpener = strings.TrimSpace(c.ListOpener)

	return nil
}
