package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"

	"github.com/arthur-debert/projmarks/pkg/types"
)

// aferoFS adapts an afero filesystem to types.FS.
type aferoFS struct {
	afero.Afero
}

// NewAferoFS wraps any afero filesystem
func NewAferoFS(backend afero.Fs) types.FS {
	return aferoFS{afero.Afero{Fs: backend}}
}

// NewMemory returns an empty in-memory filesystem. Tests build project
// trees in it without touching the disk.
func NewMemory() types.FS {
	return NewAferoFS(afero.NewMemMapFs())
}

// ReadFile refuses directories, which MemMapFs would otherwise read as
// empty files.
func (a aferoFS) ReadFile(name string) ([]byte, error) {
	if isDir, err := a.IsDir(name); err != nil {
		return nil, err
	} else if isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return a.Afero.ReadFile(name)
}
