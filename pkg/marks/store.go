package marks

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/projmarks/pkg/datastore"
	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/keybind"
	"github.com/arthur-debert/projmarks/pkg/logging"
	"github.com/arthur-debert/projmarks/pkg/paths"
	"github.com/arthur-debert/projmarks/pkg/types"
)

// Confirmer decides whether a pending overwrite goes ahead.
type Confirmer interface {
	Confirm(req types.ConfirmationRequest) (bool, error)
}

// Options holds the Store collaborators.
type Options struct {
	Resolver  *paths.Resolver
	DataStore datastore.DataStore

	// Registry is optional; without it no bindings are maintained.
	Registry *keybind.Registry
}

// Store is the project scoped mark store.
type Store struct {
	resolver *paths.Resolver
	ds       datastore.DataStore
	registry *keybind.Registry
	logger   zerolog.Logger

	data    types.MarkStore
	loaded  bool
	pending *AddResult
}

// New creates a Store. Nothing is read until the first operation.
func New(opts Options) *Store {
	return &Store{
		resolver: opts.Resolver,
		ds:       opts.DataStore,
		registry: opts.Registry,
		logger:   logging.GetLogger("marks"),
		data:     types.MarkStore{},
	}
}

// ValidateKey checks that key is usable as a mark name.
func ValidateKey(key string) error {
	if key == "" {
		return errors.New(errors.ErrInvalidKey, "mark key cannot be empty")
	}
	if strings.IndexFunc(key, unicode.IsSpace) >= 0 {
		return errors.Newf(errors.ErrInvalidKey, "mark key %q cannot contain whitespace", key)
	}
	if strings.HasPrefix(key, "#") {
		return errors.Newf(errors.ErrInvalidKey, "mark key %q cannot start with #, listings would read it as a comment", key)
	}
	return nil
}

// Load reads the store if that has not happened yet. It is safe to call
// any number of times; only the first call does any work.
func (s *Store) Load() {
	if s.loaded {
		return
	}
	s.loaded = true

	data, err := s.ds.Load()
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.ds.Path()).Msg("discarding unreadable marks file")
	}
	if data == nil {
		data = types.MarkStore{}
	}
	s.data = data

	if s.canonicalize() {
		s.logger.Info().Str("path", s.ds.Path()).Msg("rewriting marks file in canonical form")
		_ = s.persist()
	}
	s.rebuildBindings()
}

// canonicalize rewrites every project root and stored path into canonical
// form and drops entries that cannot be resolved. Roots that collapse onto
// the same canonical root are merged; the first key seen wins. It reports
// whether anything changed.
func (s *Store) canonicalize() bool {
	clean := types.MarkStore{}
	dirty := false

	for _, root := range s.data.Projects() {
		canonRoot, err := s.resolver.Normalize(root)
		if err != nil {
			s.logger.Debug().Err(err).Str("project", root).Msg("dropping project with invalid root")
			dirty = true
			continue
		}
		if canonRoot != root {
			dirty = true
		}

		merged, ok := clean[canonRoot]
		if !ok {
			merged = types.ProjectMarks{}
			clean[canonRoot] = merged
		}

		marks := s.data[root]
		for _, key := range marks.Keys() {
			stored := marks[key]
			if ValidateKey(key) != nil {
				dirty = true
				continue
			}
			abs, err := s.resolver.ResolveProjectPath(stored, canonRoot)
			if err != nil {
				s.logger.Debug().Err(err).Str("project", root).Str("key", key).Msg("dropping unresolvable mark")
				dirty = true
				continue
			}
			canon := paths.Relativize(abs, canonRoot)
			if canon != stored {
				dirty = true
			}
			if _, exists := merged[key]; exists {
				s.logger.Debug().Str("project", canonRoot).Str("key", key).Msg("keeping first mark on merged project")
				dirty = true
				continue
			}
			merged[key] = canon
		}

		if len(merged) == 0 {
			delete(clean, canonRoot)
			dirty = true
		}
	}

	s.data = clean
	return dirty
}

func (s *Store) persist() error {
	if err := s.ds.Save(s.data); err != nil {
		s.logger.Warn().Err(err).Str("path", s.ds.Path()).Msg("marks not saved")
		return err
	}
	return nil
}

func (s *Store) rebuildBindings() {
	if err := s.registry.Rebuild(s.data.Keys()); err != nil {
		s.logger.Debug().Err(err).Msg("some bindings could not be created")
	}
}

func (s *Store) ensureBinding(key string) {
	if err := s.registry.Ensure(key); err != nil {
		s.logger.Debug().Err(err).Str("key", key).Msg("binding not created")
	}
}

// ProjectRoot returns the project that hint belongs to.
func (s *Store) ProjectRoot(hint string) (string, error) {
	root := s.resolver.DetectProject(hint)
	if root == "" {
		return "", errors.New(errors.ErrProjectUndetectable, "cannot determine the current project")
	}
	return root, nil
}

// GetOrCreateMarks returns the live marks of root, registering an empty
// mapping if the project has none yet.
func (s *Store) GetOrCreateMarks(root string) types.ProjectMarks {
	s.Load()
	marks, ok := s.data[root]
	if !ok {
		marks = types.ProjectMarks{}
		s.data[root] = marks
	}
	return marks
}

// Project returns a copy of the marks of root, or nil if it has none.
func (s *Store) Project(root string) types.ProjectMarks {
	s.Load()
	marks, ok := s.data[root]
	if !ok {
		return nil
	}
	return marks.Clone()
}

// Snapshot returns a deep copy of the whole store.
func (s *Store) Snapshot() types.MarkStore {
	s.Load()
	out := make(types.MarkStore, len(s.data))
	for root, marks := range s.data {
		out[root] = marks.Clone()
	}
	return out
}

// Keys returns every key in use by any project, sorted.
func (s *Store) Keys() []string {
	s.Load()
	return s.data.Keys()
}
