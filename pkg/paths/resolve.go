package paths

import (
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/logging"
	"github.com/arthur-debert/projmarks/pkg/types"
)

// DefaultMarkers are the names whose presence identifies a project root.
var DefaultMarkers = []string{".git", ".hg", ".svn"}

// IsAbsolute reports whether p is absolute in any of the supported
// conventions: a leading "/" or "\", or a drive letter followed by a
// separator ("C:/", "c:\").
func IsAbsolute(p string) bool {
	if p == "" {
		return false
	}
	if p[0] == '/' || p[0] == '\\' {
		return true
	}
	return hasDrive(p) && len(p) > 2 && (p[2] == '/' || p[2] == '\\')
}

func hasDrive(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ToSlash converts both separator styles to "/".
func ToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// clean collapses "." and ".." segments of a slash-separated absolute path,
// keeping a drive prefix intact.
func clean(p string) string {
	if hasDrive(p) {
		return p[:2] + path.Clean("/"+strings.TrimPrefix(p[2:], "/"))
	}
	return path.Clean(p)
}

// Normalize returns the canonical form of p. Relative paths are anchored at
// the working directory. Symlinks are resolved in the longest existing
// prefix of the path.
func Normalize(p string) (string, error) {
	return normalizeWith(p, os.Getwd)
}

func normalizeWith(p string, getwd func() (string, error)) (string, error) {
	if err := ValidatePath(p); err != nil {
		return "", err
	}

	slashed := ToSlash(p)
	if !IsAbsolute(slashed) {
		wd, err := getwd()
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidPath, "cannot anchor relative path %q", p)
		}
		slashed = strings.TrimSuffix(ToSlash(wd), "/") + "/" + slashed
	}

	return resolveExisting(clean(slashed)), nil
}

// resolveExisting resolves symlinks in the longest existing prefix of a
// cleaned absolute path and re-appends the missing tail, so a file that
// does not exist yet still gets the real location of its directory.
func resolveExisting(p string) string {
	var tail []string
	for dir := p; ; {
		if real, err := filepath.EvalSymlinks(filepath.FromSlash(dir)); err == nil && IsAbsolute(ToSlash(real)) {
			resolved := clean(ToSlash(real))
			if len(tail) == 0 {
				return resolved
			}
			return join(resolved, strings.Join(tail, "/"))
		}
		up := parent(dir)
		if up == dir {
			return p
		}
		tail = append([]string{path.Base(dir)}, tail...)
		dir = up
	}
}

// parent returns the parent directory of a canonical path; the root is its
// own parent.
func parent(p string) string {
	if hasDrive(p) {
		return p[:2] + path.Dir(p[2:])
	}
	return path.Dir(p)
}

// join appends a relative slash path to a canonical directory.
func join(dir, rel string) string {
	return strings.TrimSuffix(dir, "/") + "/" + rel
}

// Option configures a Resolver
type Option func(*Resolver)

// WithGetwd overrides how the working directory is obtained
func WithGetwd(getwd func() (string, error)) Option {
	return func(r *Resolver) { r.getwd = getwd }
}

// WithHomeDir overrides how the home directory is obtained
func WithHomeDir(home func() (string, error)) Option {
	return func(r *Resolver) { r.home = home }
}

// Resolver detects projects and resolves stored paths. Marker lookups and
// directory checks go through the injected filesystem.
type Resolver struct {
	fs      types.FS
	markers []string
	getwd   func() (string, error)
	home    func() (string, error)
}

// NewResolver creates a Resolver that identifies projects by markers.
func NewResolver(fs types.FS, markers []string, opts ...Option) *Resolver {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	r := &Resolver{
		fs:      fs,
		markers: append([]string(nil), markers...),
		getwd:   os.Getwd,
		home:    GetHomeDirectory,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Markers returns the configured marker names, in lookup order.
func (r *Resolver) Markers() []string {
	return append([]string(nil), r.markers...)
}

// Normalize is like the package level Normalize but anchors relative paths
// at the resolver's working directory.
func (r *Resolver) Normalize(p string) (string, error) {
	return normalizeWith(p, r.getwd)
}

// ExpandHome expands a leading ~ using the resolver's home directory.
func (r *Resolver) ExpandHome(p string) string {
	return expandHomeWith(p, r.home)
}

// Cwd returns the normalized working directory.
func (r *Resolver) Cwd() (string, error) {
	wd, err := r.getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrProjectUndetectable, "cannot determine working directory")
	}
	return r.Normalize(wd)
}

// IsDir reports whether a canonical path names an existing directory.
func (r *Resolver) IsDir(p string) bool {
	info, err := r.fs.Stat(filepath.FromSlash(p))
	return err == nil && info.IsDir()
}

// DetectProject returns the nearest ancestor of hint that contains one of
// the marker names. The search starts at hint itself when it is a
// directory, at its containing directory otherwise, and at the working
// directory when hint is empty. Without a match it falls back to the
// normalized working directory. It only returns "" when neither a hint nor
// the working directory is available.
func (r *Resolver) DetectProject(hint string) string {
	logger := logging.GetLogger("paths")

	start := ""
	if strings.TrimSpace(hint) != "" {
		if abs, err := r.Normalize(r.ExpandHome(strings.TrimSpace(hint))); err == nil {
			if r.IsDir(abs) {
				start = abs
			} else {
				start = parent(abs)
			}
		}
	}

	cwd, cwdErr := r.Cwd()
	if start == "" {
		if cwdErr != nil {
			logger.Debug().Err(cwdErr).Msg("no hint and no working directory")
			return ""
		}
		start = cwd
	}

	for dir := start; ; {
		for _, marker := range r.markers {
			if _, err := r.fs.Stat(filepath.FromSlash(join(dir, marker))); err == nil {
				root, err := r.Normalize(dir)
				if err != nil {
					root = dir
				}
				logger.Trace().Str("project", root).Str("marker", marker).Msg("project detected")
				return root
			}
		}
		up := parent(dir)
		if up == dir {
			break
		}
		dir = up
	}

	if cwdErr != nil {
		return start
	}
	return cwd
}

// ResolveProjectPath turns a stored path into a canonical absolute path.
// Relative paths are joined with root, or with a freshly detected project
// when root is empty.
//
// Surrounding whitespace is trimmed, except that trailing whitespace is kept
// when a file with that exact name exists.
func (r *Resolver) ResolveProjectPath(stored, root string) (string, error) {
	p := strings.TrimSpace(stored)
	if p == "" {
		return "", errors.New(errors.ErrInvalidPath, "path cannot be empty")
	}

	if exact := strings.TrimLeftFunc(stored, unicode.IsSpace); exact != p {
		if abs, err := r.resolve(exact, root); err == nil {
			if _, err := r.fs.Stat(filepath.FromSlash(abs)); err == nil {
				return abs, nil
			}
		}
	}
	return r.resolve(p, root)
}

func (r *Resolver) resolve(p, root string) (string, error) {
	p = ToSlash(r.ExpandHome(p))
	if !IsAbsolute(p) {
		if root == "" {
			root = r.DetectProject("")
			if root == "" {
				return "", errors.Newf(errors.ErrProjectUndetectable, "cannot resolve %q without a project", p)
			}
		}
		p = join(ToSlash(root), p)
	}

	return r.Normalize(p)
}
