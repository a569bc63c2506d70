package types

import "io/fs"

// FS is the filesystem surface used by projmarks. The OS implementation
// lives in pkg/filesystem, tests use an afero-backed one.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
}
