package projmarks

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/projmarks/pkg/errors"
)

type cliEnv struct {
	root    string
	project string
	store   string
}

// setupCLI creates a project with a .git marker and points config, state
// and storage at a temp dir.
func setupCLI(t *testing.T) cliEnv {
	t.Helper()

	tmp, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	project := filepath.Join(tmp, "proj")
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".git"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(project, "docs"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(project, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "src", "main.go"), []byte("package main\n"), 0644))

	t.Setenv("PROJMARKS_CONFIG", "")
	t.Setenv("PROJMARKS_CONFIG_DIR", filepath.Join(tmp, "config"))
	t.Setenv("PROJMARKS_DATA_DIR", filepath.Join(tmp, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("NO_COLOR", "1")

	return cliEnv{root: tmp, project: project, store: filepath.Join(tmp, "marks.json")}
}

// run executes the root command with the test store and plain output.
func (e cliEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--store", e.store, "--format", "text"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestAddOpenRemove(t *testing.T) {
	env := setupCLI(t)
	file := filepath.Join(env.project, "src", "main.go")

	out, err := env.run(t, "", "add", "m", file)
	require.NoError(t, err)
	assert.Equal(t, "m -> src/main.go\n", out)

	out, err = env.run(t, "", "--project", env.project, "open", "--print", "m")
	require.NoError(t, err)
	assert.Equal(t, file+"\n", out)

	out, err = env.run(t, "", "--project", env.project, "rm", "m")
	require.NoError(t, err)
	assert.Equal(t, "removed m\n", out)

	_, err = env.run(t, "", "--project", env.project, "open", "--print", "m")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestAdd_PromptsForKey(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "k\n", "add-dir", "", filepath.Join(env.project, "docs"))
	require.Error(t, err)
	assert.NotContains(t, out, MsgPromptKey)

	out, err = env.run(t, "k\n", "add")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, out, MsgPromptKey)
}

func TestAdd_EmptyKeyAnswer(t *testing.T) {
	env := setupCLI(t)

	_, err := env.run(t, "\n", "add")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestAdd_OverwritePrompt(t *testing.T) {
	env := setupCLI(t)
	file := filepath.Join(env.project, "src", "main.go")
	docs := filepath.Join(env.project, "docs")

	_, err := env.run(t, "", "add", "m", file)
	require.NoError(t, err)

	out, err := env.run(t, "n\n", "add-dir", "m", docs)
	require.NoError(t, err)
	assert.Contains(t, out, "Overwrite? [y/N]")
	assert.Contains(t, out, "m still points to src/main.go")

	out, err = env.run(t, "y\n", "add-dir", "m", docs)
	require.NoError(t, err)
	assert.Contains(t, out, "m -> docs")

	out, err = env.run(t, "", "--yes", "add", "m", file)
	require.NoError(t, err)
	assert.NotContains(t, out, "Overwrite?")
	assert.Contains(t, out, "m -> src/main.go")
}

func TestListAndKeys(t *testing.T) {
	env := setupCLI(t)

	_, err := env.run(t, "", "add", "m", filepath.Join(env.project, "src", "main.go"))
	require.NoError(t, err)
	_, err = env.run(t, "", "add-dir", "d", filepath.Join(env.project, "docs"))
	require.NoError(t, err)

	out, err := env.run(t, "", "--project", env.project, "ls")
	require.NoError(t, err)
	assert.Equal(t, env.project+"\n  d  docs/\n  m  src/main.go\n", out)

	out, err = env.run(t, "", "ls", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "  m  src/main.go\n")

	out, err = env.run(t, "", "keys")
	require.NoError(t, err)
	assert.Equal(t, "d\nm\n", out)
}

func TestList_JSON(t *testing.T) {
	env := setupCLI(t)

	_, err := env.run(t, "", "add", "m", filepath.Join(env.project, "src", "main.go"))
	require.NoError(t, err)

	out, err := env.run(t, "", "--project", env.project, "--format", "json", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, `"project": "`+env.project+`"`)
	assert.Contains(t, out, `"key": "m"`)
}

func TestApply(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "a src/main.go\nb docs\n", "--project", env.project, "apply", "-")
	require.NoError(t, err)
	assert.Equal(t, env.project+" now has 2 marks\n", out)

	listing := filepath.Join(env.root, "listing.txt")
	require.NoError(t, os.WriteFile(listing, []byte("a src/main.go\nbroken\n"), 0644))
	_, err = env.run(t, "", "--project", env.project, "apply", listing)
	line, ok := errors.LineNumber(err)
	require.True(t, ok)
	assert.Equal(t, 2, line)

	out, err = env.run(t, "", "keys")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

func TestSnippet(t *testing.T) {
	env := setupCLI(t)

	_, err := env.run(t, "", "add", "m", filepath.Join(env.project, "src", "main.go"))
	require.NoError(t, err)

	out, err := env.run(t, "", "snippet")
	require.NoError(t, err)
	assert.Contains(t, out, "__projmarks_jump()")
	assert.Contains(t, out, "alias mm='__projmarks_jump m'")

	out, err = env.run(t, "", "snippet", "fish")
	require.NoError(t, err)
	assert.Contains(t, out, "alias mm '__projmarks_jump m'")

	_, err = env.run(t, "", "snippet", "tcsh")
	assert.Error(t, err)
}

func TestSnippet_JumpPrefixFromEnv(t *testing.T) {
	env := setupCLI(t)
	t.Setenv("PROJMARKS_JUMP_PREFIX", "g")

	_, err := env.run(t, "", "add", "m", filepath.Join(env.project, "src", "main.go"))
	require.NoError(t, err)

	out, err := env.run(t, "", "snippet", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "alias gm='__projmarks_jump m'")
}

func TestGenConfig(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "", "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "jump_prefix")
	assert.Contains(t, out, env.store)

	path := filepath.Join(env.root, "out", "config.toml")
	out, err = env.run(t, "", "--config", path, "genconfig", "--write", "--commented")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	out, err = env.run(t, "", "genconfig", "--write")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(env.root, "config", "config.toml"))

	_, err = env.run(t, "", "genconfig", "--write")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConflict))
}

func TestVersion(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "projmarks "))
}

func TestCompletion(t *testing.T) {
	env := setupCLI(t)

	out, err := env.run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "projmarks")
}

func TestWriteCompletion_UnknownShell(t *testing.T) {
	var out bytes.Buffer
	err := WriteCompletion(NewRootCmd(), "tcsh", &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
