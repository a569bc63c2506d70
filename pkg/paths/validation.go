package paths

import (
	"strings"

	"github.com/arthur-debert/projmarks/pkg/errors"
)

// maxPathLength matches PATH_MAX on Linux.
const maxPathLength = 4096

// ValidatePath rejects paths that cannot be stored as a mark target.
// Line breaks are refused too: bulk-edit listings hold one mark per line.
func ValidatePath(path string) error {
	switch {
	case strings.TrimSpace(path) == "":
		return errors.New(errors.ErrInvalidPath, "path cannot be empty")
	case strings.ContainsRune(path, 0):
		return errors.New(errors.ErrInvalidPath, "path contains null bytes")
	case strings.ContainsAny(path, "\r\n"):
		return errors.Newf(errors.ErrInvalidPath, "path %q contains a line break", path)
	case len(path) > maxPathLength:
		return errors.Newf(errors.ErrInvalidPath, "path exceeds %d bytes", maxPathLength)
	}
	return nil
}
