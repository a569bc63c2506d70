package bulkedit

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/logging"
	"github.com/arthur-debert/projmarks/pkg/paths"
	"github.com/arthur-debert/projmarks/pkg/types"
)

// Line error reasons
const (
	ReasonMissingPath = "missing path"
	ReasonDuplicate   = "duplicate key"
	ReasonUnresolved  = "cannot resolve path"
)

// Resolver turns stored paths into absolute ones.
type Resolver interface {
	ResolveProjectPath(stored, root string) (string, error)
	IsDir(path string) bool
}

// Committer receives a validated replacement mapping.
type Committer interface {
	ReplaceProject(root string, marks types.ProjectMarks) error
}

// Editor renders and parses bulk-edit documents.
type Editor struct {
	resolver Resolver
}

// New creates an Editor.
func New(resolver Resolver) *Editor {
	return &Editor{resolver: resolver}
}

// Header returns the comment lines that open every rendered document.
func Header(root string) []string {
	return []string{
		"# projmarks: " + root,
		"# One mark per line: <key> <path>. Paths are relative to the project root.",
		"# Deleting a line removes the mark. Lines starting with # are ignored.",
	}
}

// Render lists marks sorted by key, one "<key> <path>" line each, after
// the header.
func (e *Editor) Render(root string, marks types.ProjectMarks) []string {
	lines := Header(root)
	for _, key := range marks.Keys() {
		lines = append(lines, key+" "+e.DisplayPath(marks[key], root))
	}
	return lines
}

// RenderText is Render joined into a newline terminated document.
func (e *Editor) RenderText(root string, marks types.ProjectMarks) string {
	return strings.Join(e.Render(root, marks), "\n") + "\n"
}

// DisplayPath returns the form a stored path is shown in: relative to root
// when inside it, with a trailing "/" for directories.
func (e *Editor) DisplayPath(stored, root string) string {
	abs, err := e.resolver.ResolveProjectPath(stored, root)
	if err != nil {
		return stored
	}
	shown := paths.Relativize(abs, root)
	if e.resolver.IsDir(abs) && !strings.HasSuffix(shown, "/") {
		shown += "/"
	}
	return shown
}

// isComment reports whether line is a comment: optional leading whitespace
// followed by "#".
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "#")
}

// splitLine separates a data line into key and path at the first run of
// whitespace. Trailing spaces belong to the path; only a line ending "\r"
// is dropped.
func splitLine(line string) (key, path string) {
	line = strings.TrimLeftFunc(strings.TrimSuffix(line, "\r"), unicode.IsSpace)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	path = strings.TrimLeftFunc(line[i:], unicode.IsSpace)
	if strings.TrimSpace(path) == "" {
		path = ""
	}
	return line[:i], path
}

// Parse validates a whole document and returns the mapping it describes,
// in storage form. The first offending line fails the parse with a
// LINE_ERROR carrying its 1-based number.
func (e *Editor) Parse(lines []string, root string) (types.ProjectMarks, error) {
	marks := types.ProjectMarks{}
	seen := make(map[string]int)

	for i, line := range lines {
		n := i + 1
		if strings.TrimSpace(line) == "" || isComment(line) {
			continue
		}

		key, path := splitLine(line)
		if path == "" {
			return nil, errors.NewLineError(n, ReasonMissingPath)
		}
		if first, dup := seen[key]; dup {
			return nil, errors.NewLineError(n, fmt.Sprintf("%s %q (first on line %d)", ReasonDuplicate, key, first)).
				WithDetail("key", key)
		}

		abs, err := e.resolver.ResolveProjectPath(path, root)
		if err != nil {
			lerr := errors.NewLineError(n, fmt.Sprintf("%s %q", ReasonUnresolved, path)).WithDetail("key", key)
			lerr.Wrapped = err
			return nil, lerr
		}

		seen[key] = n
		marks[key] = paths.Relativize(abs, root)
	}

	return marks, nil
}

// ParseText splits text into lines and parses it.
func (e *Editor) ParseText(text, root string) (types.ProjectMarks, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return e.Parse(strings.Split(text, "\n"), root)
}

// Commit parses text and, only if the whole document is valid, hands the
// mapping to c. On a line error nothing is committed.
func (e *Editor) Commit(text, root string, c Committer) (types.ProjectMarks, error) {
	logger := logging.GetLogger("bulkedit")

	marks, err := e.ParseText(text, root)
	if err != nil {
		logger.Debug().Err(err).Str("project", root).Msg("bulk edit rejected")
		return nil, err
	}

	logger.Debug().Str("project", root).Int("marks", len(marks)).Msg("committing bulk edit")
	return marks, c.ReplaceProject(root, marks)
}
