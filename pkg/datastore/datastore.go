package datastore

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/logging"
	"github.com/arthur-debert/projmarks/pkg/types"
)

// DataStore reads and writes the whole mark store.
type DataStore interface {
	// Load returns the persisted store. A missing or empty file yields an
	// empty store and no error. An unreadable or malformed file also
	// yields an empty store, together with a PERSIST_READ_CORRUPT error
	// the caller may log and otherwise ignore.
	Load() (types.MarkStore, error)

	// Save overwrites the file with the full store, creating parent
	// directories as needed. Empty projects are not written.
	Save(store types.MarkStore) error

	// Path returns the location of the backing file.
	Path() string
}

type fileDataStore struct {
	fs    types.FS
	path  string
	codec Codec
}

// New creates a DataStore backed by the file at path.
func New(fs types.FS, path string) DataStore {
	return &fileDataStore{
		fs:    fs,
		path:  path,
		codec: CodecFor(path),
	}
}

func (s *fileDataStore) Path() string {
	return s.path
}

func (s *fileDataStore) Load() (types.MarkStore, error) {
	logger := logging.GetLogger("datastore")

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", s.path).Msg("no marks file yet")
			return types.MarkStore{}, nil
		}
		return types.MarkStore{}, errors.Wrapf(err, errors.ErrPersistCorrupt, "cannot read %s", s.path)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return types.MarkStore{}, nil
	}

	var raw types.MarkStore
	if err := s.codec.Unmarshal(data, &raw); err != nil {
		return types.MarkStore{}, errors.Wrapf(err, errors.ErrPersistCorrupt,
			"malformed %s in %s", s.codec.Name(), s.path)
	}

	store := sanitize(raw)
	logger.Debug().
		Str("path", s.path).
		Int("projects", len(store)).
		Msg("marks loaded")
	return store, nil
}

func (s *fileDataStore) Save(store types.MarkStore) error {
	defer logging.Timed(logging.GetLogger("datastore"), "save")()

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrPersistWrite, "cannot create directory for %s", s.path)
	}

	data, err := s.codec.Marshal(sanitize(store))
	if err != nil {
		return errors.Wrapf(err, errors.ErrPersistWrite, "cannot encode marks as %s", s.codec.Name())
	}

	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrPersistWrite, "cannot write %s", s.path)
	}

	logger := logging.GetLogger("datastore")
	logger.Debug().
		Str("path", s.path).
		Int("projects", len(store)).
		Msg("marks saved")
	return nil
}

// sanitize drops entries that cannot be valid marks: empty roots, keys or
// paths, and projects left without marks.
func sanitize(in types.MarkStore) types.MarkStore {
	out := make(types.MarkStore, len(in))
	for root, marks := range in {
		if strings.TrimSpace(root) == "" {
			continue
		}
		clean := make(types.ProjectMarks, len(marks))
		for key, stored := range marks {
			if key == "" || strings.TrimSpace(stored) == "" {
				continue
			}
			clean[key] = stored
		}
		if len(clean) > 0 {
			out[root] = clean
		}
	}
	return out
}
