package paths

import (
	"path/filepath"
	"strings"
)

// Relativize converts an absolute path into the storage form relative to
// root. Paths that are not absolute are assumed to already be in storage
// form and are returned unchanged. A path equal to root becomes ".".
//
// Containment is a case-sensitive prefix match on whole segments, so
// "/proj-old/x" is not inside "/proj". Paths that would need ".." to be
// expressed relative to root stay absolute.
func Relativize(absolutePath, root string) string {
	if !IsAbsolute(absolutePath) {
		return absolutePath
	}

	abs := ToSlash(absolutePath)
	base := ToSlash(root)
	if base == "" {
		return absolutePath
	}

	if abs == base || abs == strings.TrimSuffix(base, "/") {
		return "."
	}

	prefix := base
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if strings.HasPrefix(abs, prefix) {
		rel := strings.TrimLeft(abs[len(prefix):], "/")
		if rel == "" {
			return "."
		}
		return rel
	}

	rel, err := filepath.Rel(filepath.FromSlash(base), filepath.FromSlash(abs))
	if err != nil {
		return absolutePath
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return absolutePath
	}
	return rel
}

// IsInside reports whether a canonical path lies within root (or is root).
func IsInside(absolutePath, root string) bool {
	return !IsAbsolute(Relativize(absolutePath, root))
}
