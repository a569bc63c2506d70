package filesystem

import (
	"bytes"
	"io/fs"
	"os"

	"github.com/arthur-debert/projmarks/pkg/types"
	"github.com/natefinch/atomic"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile replaces name in one step: readers see either the old or the
// new content, never a partial write.
func (o *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := atomic.WriteFile(name, bytes.NewReader(data)); err != nil {
		return err
	}
	// atomic.WriteFile doesn't set permissions for new files
	return os.Chmod(name, perm)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (o *osFS) Remove(name string) error {
	return os.Remove(name)
}
