package marks_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/projmarks/pkg/datastore"
	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/filesystem"
	"github.com/arthur-debert/projmarks/pkg/keybind"
	"github.com/arthur-debert/projmarks/pkg/marks"
	"github.com/arthur-debert/projmarks/pkg/paths"
	"github.com/arthur-debert/projmarks/pkg/types"
)

const (
	projA     = "/nowhere/projA"
	projB     = "/nowhere/projB"
	storeFile = "/data/projmarks/marks.json"
)

type fixture struct {
	fs       types.FS
	resolver *paths.Resolver
	ds       *countingDataStore
	registry *keybind.Registry
	store    *marks.Store
}

// countingDataStore wraps a real DataStore, counting loads and optionally
// failing saves.
type countingDataStore struct {
	datastore.DataStore
	loads    int
	failSave bool
}

func (c *countingDataStore) Load() (types.MarkStore, error) {
	c.loads++
	return c.DataStore.Load()
}

func (c *countingDataStore) Save(store types.MarkStore) error {
	if c.failSave {
		return errors.New(errors.ErrPersistWrite, "disk full")
	}
	return c.DataStore.Save(store)
}

type mockConfirmer struct {
	mock.Mock
}

func (m *mockConfirmer) Confirm(req types.ConfirmationRequest) (bool, error) {
	args := m.Called(req)
	return args.Bool(0), args.Error(1)
}

func newFixture(t *testing.T, wd string, seed string) *fixture {
	t.Helper()

	fs := filesystem.NewMemory()
	for _, dir := range []string{
		projA + "/.git",
		projA + "/src",
		projA + "/docs",
		projB + "/.hg",
	} {
		require.NoError(t, fs.MkdirAll(dir, 0755))
	}
	require.NoError(t, fs.WriteFile(projA+"/src/main.go", []byte("package main\n"), 0644))
	if seed != "" {
		require.NoError(t, fs.MkdirAll("/data/projmarks", 0755))
		require.NoError(t, fs.WriteFile(storeFile, []byte(seed), 0644))
	}

	resolver := paths.NewResolver(fs, nil,
		paths.WithGetwd(func() (string, error) { return wd, nil }),
		paths.WithHomeDir(func() (string, error) { return "/home/tester", nil }),
	)
	ds := &countingDataStore{DataStore: datastore.New(fs, storeFile)}
	registry := keybind.NewRegistry("m", keybind.NewShellBinder())

	return &fixture{
		fs:       fs,
		resolver: resolver,
		ds:       ds,
		registry: registry,
		store: marks.New(marks.Options{
			Resolver:  resolver,
			DataStore: ds,
			Registry:  registry,
		}),
	}
}

func (f *fixture) persisted(t *testing.T) types.MarkStore {
	t.Helper()
	data, err := datastore.New(f.fs, storeFile).Load()
	require.NoError(t, err)
	return data
}

func TestAdd_BasicRoundTrip(t *testing.T) {
	f := newFixture(t, projA, "")

	res, err := f.store.Add("m", projA+"/src/main.go", nil)
	require.NoError(t, err)
	assert.Equal(t, marks.Applied, res.Status)
	assert.Equal(t, projA, res.Project)
	assert.Equal(t, "src/main.go", res.Stored)

	stored, err := f.store.Lookup("m", projA+"/src/main.go")
	require.NoError(t, err)
	assert.Equal(t, "src/main.go", stored)

	target, err := f.store.Open("m", "")
	require.NoError(t, err)
	assert.Equal(t, projA+"/src/main.go", target.Path)
	assert.False(t, target.IsDir)

	assert.Equal(t, types.MarkStore{projA: {"m": "src/main.go"}}, f.persisted(t))
	assert.Equal(t, []string{"m"}, f.registry.Keys())
}

func TestAdd_RelativePathAnchoredAtWorkingDir(t *testing.T) {
	f := newFixture(t, projA+"/src", "")

	res, err := f.store.Add("x", "main.go", nil)
	require.NoError(t, err)
	assert.Equal(t, projA, res.Project)
	assert.Equal(t, "src/main.go", res.Stored)
}

func TestAdd_Idempotent(t *testing.T) {
	f := newFixture(t, projA, "")

	_, err := f.store.Add("m", projA+"/src/main.go", nil)
	require.NoError(t, err)
	before := f.store.Snapshot()

	res, err := f.store.Add("m", projA+"/src/../src/main.go", nil)
	require.NoError(t, err)
	assert.Equal(t, marks.AlreadySet, res.Status)
	assert.Equal(t, `mark "m" already points to src/main.go`, res.Message())
	assert.Equal(t, before, f.store.Snapshot())
}

func TestAdd_ConflictDeclined(t *testing.T) {
	f := newFixture(t, projA, "")
	_, err := f.store.Add("m", projA+"/src/main.go", nil)
	require.NoError(t, err)

	confirm := &mockConfirmer{}
	confirm.On("Confirm", mock.MatchedBy(func(req types.ConfirmationRequest) bool {
		return req.Key == "m" &&
			req.Current == projA+"/src/main.go" &&
			req.Proposed == projA+"/docs"
	})).Return(false, nil).Once()

	res, err := f.store.Add("m", projA+"/docs", confirm)
	require.NoError(t, err)
	assert.Equal(t, marks.Declined, res.Status)

	stored, err := f.store.Lookup("m", projA)
	require.NoError(t, err)
	assert.Equal(t, "src/main.go", stored)
	confirm.AssertExpectations(t)
}

func TestAdd_ConflictApproved(t *testing.T) {
	f := newFixture(t, projA, "")
	_, err := f.store.Add("m", projA+"/src/main.go", nil)
	require.NoError(t, err)

	confirm := &mockConfirmer{}
	confirm.On("Confirm", mock.Anything).Return(true, nil).Once()

	res, err := f.store.Add("m", projA+"/docs", confirm)
	require.NoError(t, err)
	assert.Equal(t, marks.Applied, res.Status)
	assert.Equal(t, types.MarkStore{projA: {"m": "docs"}}, f.persisted(t))
}

func TestAdd_ConfirmerErrorLeavesStoreUnchanged(t *testing.T) {
	f := newFixture(t, projA, "")
	_, err := f.store.Add("m", projA+"/src/main.go", nil)
	require.NoError(t, err)

	confirm := &mockConfirmer{}
	confirm.On("Confirm", mock.Anything).Return(false, stderrors.New("no tty"))

	_, err = f.store.Add("m", projA+"/docs", confirm)
	assert.Error(t, err)

	_, pending := f.store.Pending()
	assert.False(t, pending)
	stored, _ := f.store.Lookup("m", projA)
	assert.Equal(t, "src/main.go", stored)
}

func TestAdd_NilConfirmerDeclines(t *testing.T) {
	f := newFixture(t, projA, "")
	_, err := f.store.Add("m", projA+"/src/main.go", nil)
	require.NoError(t, err)

	res, err := f.store.Add("m", projA+"/docs", nil)
	require.NoError(t, err)
	assert.Equal(t, marks.Declined, res.Status)
}

func TestProposeAdd_TwoPhase(t *testing.T) {
	f := newFixture(t, projA, "")
	_, err := f.store.Add("m", projA+"/src/main.go", nil)
	require.NoError(t, err)

	res, err := f.store.ProposeAdd("m", projA+"/docs")
	require.NoError(t, err)
	assert.Equal(t, marks.ConflictPending, res.Status)
	assert.Equal(t, projA+"/src/main.go", res.Current)
	assert.Equal(t, projA+"/docs", res.Target)

	pending, ok := f.store.Pending()
	require.True(t, ok)
	assert.Equal(t, res, pending)

	// Nothing changes until the conflict is resolved.
	stored, _ := f.store.Lookup("m", projA)
	assert.Equal(t, "src/main.go", stored)

	res, err = f.store.ResolveConflict(true)
	require.NoError(t, err)
	assert.Equal(t, marks.Applied, res.Status)

	stored, _ = f.store.Lookup("m", projA)
	assert.Equal(t, "docs", stored)

	_, err = f.store.ResolveConflict(true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestAdd_InvalidInput(t *testing.T) {
	f := newFixture(t, projA, "")

	tests := []struct {
		name string
		key  string
		path string
		code errors.ErrorCode
	}{
		{"empty key", "", projA + "/src/main.go", errors.ErrInvalidKey},
		{"key with space", "a b", projA + "/src/main.go", errors.ErrInvalidKey},
		{"key with tab", "a\tb", projA + "/src/main.go", errors.ErrInvalidKey},
		{"empty path", "m", "", errors.ErrInvalidPath},
		{"blank path", "m", "   ", errors.ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.store.Add(tt.key, tt.path, nil)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
	assert.Empty(t, f.store.Keys())
}

func TestAddDirectory(t *testing.T) {
	f := newFixture(t, projA, "")

	res, err := f.store.AddDirectory("d", projA+"/docs", nil)
	require.NoError(t, err)
	assert.Equal(t, "docs", res.Stored)

	res, err = f.store.AddDirectory("r", projA, nil)
	require.NoError(t, err)
	assert.Equal(t, ".", res.Stored)

	target, err := f.store.Open("r", projA)
	require.NoError(t, err)
	assert.True(t, target.IsDir)
	assert.Equal(t, projA, target.Path)

	_, err = f.store.AddDirectory("f", projA+"/src/main.go", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPath))
}

func TestAdd_CrossProjectKeyReuse(t *testing.T) {
	f := newFixture(t, projA, "")

	_, err := f.store.Add("m", projA+"/a.go", nil)
	require.NoError(t, err)
	_, err = f.store.Add("m", projB+"/b.go", nil)
	require.NoError(t, err)

	a, err := f.store.Lookup("m", projA+"/src")
	require.NoError(t, err)
	assert.Equal(t, "a.go", a)

	b, err := f.store.Lookup("m", projB)
	require.NoError(t, err)
	assert.Equal(t, "b.go", b)

	assert.Equal(t, []string{"m"}, f.store.Keys())
}

func TestRemove_PrunesEmptyProject(t *testing.T) {
	f := newFixture(t, projA, "")
	_, err := f.store.Add("m", projA+"/src/main.go", nil)
	require.NoError(t, err)

	require.NoError(t, f.store.Remove("m", projA))

	assert.Nil(t, f.store.Project(projA))
	assert.Empty(t, f.store.Snapshot())
	assert.Empty(t, f.persisted(t))

	_, err = f.store.Lookup("m", projA)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	err = f.store.Remove("m", projA)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestRemove_BindingKeptWhileOtherProjectUsesKey(t *testing.T) {
	f := newFixture(t, projA, "")
	_, err := f.store.Add("m", projA+"/a.go", nil)
	require.NoError(t, err)
	_, err = f.store.Add("m", projB+"/b.go", nil)
	require.NoError(t, err)
	_, err = f.store.Add("x", projA+"/x.go", nil)
	require.NoError(t, err)

	require.NoError(t, f.store.Remove("m", projA))
	assert.Equal(t, []string{"m", "x"}, f.registry.Keys())

	require.NoError(t, f.store.Remove("m", projB))
	assert.Equal(t, []string{"x"}, f.registry.Keys())
}

func TestLookup_ProjectUndetectable(t *testing.T) {
	fs := filesystem.NewMemory()
	resolver := paths.NewResolver(fs, nil,
		paths.WithGetwd(func() (string, error) { return "", stderrors.New("gone") }),
	)
	store := marks.New(marks.Options{Resolver: resolver, DataStore: datastore.New(fs, storeFile)})

	_, err := store.Lookup("m", "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrProjectUndetectable))

	err = store.Remove("m", "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrProjectUndetectable))
}

func TestLoad_CorruptFileYieldsEmptyStore(t *testing.T) {
	f := newFixture(t, projA, "{ this is not json")

	assert.NotPanics(t, func() { f.store.Load() })
	assert.Empty(t, f.store.Keys())

	_, err := f.store.Add("m", projA+"/src/main.go", nil)
	require.NoError(t, err)
	assert.Equal(t, types.MarkStore{projA: {"m": "src/main.go"}}, f.persisted(t))
}

func TestLoad_OnlyOnce(t *testing.T) {
	f := newFixture(t, projA, `{"/nowhere/projA": {"m": "src/main.go"}}`)

	f.store.Load()
	_, _ = f.store.Lookup("m", projA)
	_ = f.store.Keys()
	f.store.Load()

	assert.Equal(t, 1, f.ds.loads)
	assert.Equal(t, []string{"m"}, f.registry.Keys())
}

func TestLoad_Canonicalizes(t *testing.T) {
	seed := `{
  "/nowhere/projA": {"m": "/nowhere/projA/src/main.go", "o": "/elsewhere/x.txt", "s": "./src/"},
  "/nowhere/projA/": {"m": "other.go", "n": "docs"},
  "/nowhere/projB/../projB": {"b": "b.go"},
  "/nowhere/projC": {"bad key": "c.go"}
}`
	f := newFixture(t, projA, seed)

	want := types.MarkStore{
		projA: {
			"m": "src/main.go",
			"n": "docs",
			"o": "/elsewhere/x.txt",
			"s": "src",
		},
		projB: {"b": "b.go"},
	}
	assert.Equal(t, want, f.store.Snapshot())
	assert.Equal(t, want, f.persisted(t))
}

func TestLoad_CanonicalStoreNotRewritten(t *testing.T) {
	seed := "{\"/nowhere/projA\": {\"m\": \"src/main.go\"}}"
	f := newFixture(t, projA, seed)

	f.store.Load()

	data, err := f.fs.ReadFile(storeFile)
	require.NoError(t, err)
	assert.Equal(t, seed, string(data))
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	f := newFixture(t, projA, "")
	f.ds.failSave = true

	res, err := f.store.Add("m", projA+"/src/main.go", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPersistWrite))
	assert.Equal(t, marks.Applied, res.Status)

	stored, err := f.store.Lookup("m", projA)
	require.NoError(t, err)
	assert.Equal(t, "src/main.go", stored)

	// The next mutation retries the write.
	f.ds.failSave = false
	_, err = f.store.Add("n", projA+"/docs", nil)
	require.NoError(t, err)
	assert.Equal(t, types.MarkStore{projA: {"m": "src/main.go", "n": "docs"}}, f.persisted(t))
}

func TestReplaceProject(t *testing.T) {
	f := newFixture(t, projA, "")
	_, err := f.store.Add("m", projA+"/src/main.go", nil)
	require.NoError(t, err)
	_, err = f.store.Add("b", projB+"/b.go", nil)
	require.NoError(t, err)

	require.NoError(t, f.store.ReplaceProject(projA, types.ProjectMarks{"x": "docs", "y": "."}))
	assert.Equal(t, types.ProjectMarks{"x": "docs", "y": "."}, f.store.Project(projA))
	assert.Equal(t, []string{"b", "x", "y"}, f.registry.Keys())

	require.NoError(t, f.store.ReplaceProject(projA, types.ProjectMarks{}))
	assert.Nil(t, f.store.Project(projA))
	assert.Equal(t, types.MarkStore{projB: {"b": "b.go"}}, f.persisted(t))
	assert.Equal(t, []string{"b"}, f.registry.Keys())
}

func TestGetOrCreateMarks(t *testing.T) {
	f := newFixture(t, projA, "")

	pm := f.store.GetOrCreateMarks(projB)
	assert.Empty(t, pm)
	pm["z"] = "z.go"

	assert.Equal(t, types.ProjectMarks{"z": "z.go"}, f.store.Project(projB))
}

func TestAddResultMessage(t *testing.T) {
	res := marks.AddResult{
		Status:  marks.ConflictPending,
		Project: projA,
		Key:     "m",
		Current: projA + "/src/main.go",
		Target:  "/elsewhere/x",
	}
	assert.Equal(t, `mark "m" points to src/main.go, overwrite with /elsewhere/x?`, res.Message())

	res.Status = marks.Declined
	assert.Equal(t, `mark "m" left pointing to src/main.go`, res.Message())
	assert.Equal(t, "declined", res.Status.String())
}

func TestValidateKey(t *testing.T) {
	assert.NoError(t, marks.ValidateKey("m"))
	assert.NoError(t, marks.ValidateKey("<F1>"))
	assert.NoError(t, marks.ValidateKey("ü"))
	assert.Error(t, marks.ValidateKey(""))
	assert.Error(t, marks.ValidateKey(" m"))
	assert.True(t, errors.IsErrorCode(marks.ValidateKey("#"), errors.ErrInvalidKey))
	assert.True(t, errors.IsErrorCode(marks.ValidateKey("#x"), errors.ErrInvalidKey))
	assert.NoError(t, marks.ValidateKey("x#"))
}

func TestLoad_DropsCommentLikeKeys(t *testing.T) {
	f := newFixture(t, projA, `{"/nowhere/projA": {"#x": "src/main.go", "m": "src/main.go"}}`)

	assert.Equal(t, types.ProjectMarks{"m": "src/main.go"}, f.store.Project(projA))
	assert.Equal(t, types.MarkStore{projA: {"m": "src/main.go"}}, f.persisted(t))

	_, err := f.store.Add("#", projA+"/src/main.go", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidKey))
}

func TestAdd_ThroughSymlinkedProject(t *testing.T) {
	tmp, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	realDir := filepath.ToSlash(filepath.Join(tmp, "real"))
	linkDir := filepath.ToSlash(filepath.Join(tmp, "link"))
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "real", ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "real", "a.go"), []byte("package a\n"), 0644))
	if err := os.Symlink(filepath.Join(tmp, "real"), filepath.Join(tmp, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	fs := filesystem.NewOS()
	resolver := paths.NewResolver(fs, nil,
		paths.WithGetwd(func() (string, error) { return linkDir, nil }),
	)
	store := marks.New(marks.Options{
		Resolver:  resolver,
		DataStore: datastore.New(fs, filepath.Join(tmp, "marks.json")),
	})

	existing, err := store.Add("a", linkDir+"/a.go", nil)
	require.NoError(t, err)
	missing, err := store.Add("b", linkDir+"/notyet.go", nil)
	require.NoError(t, err)

	assert.Equal(t, realDir, existing.Project)
	assert.Equal(t, realDir, missing.Project)
	assert.Equal(t, "notyet.go", missing.Stored)
	assert.Equal(t, types.MarkStore{realDir: {"a": "a.go", "b": "notyet.go"}}, store.Snapshot())

	got, err := store.Lookup("b", linkDir)
	require.NoError(t, err)
	assert.Equal(t, "notyet.go", got)
}
