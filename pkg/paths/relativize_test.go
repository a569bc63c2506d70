package paths_test

import (
	"testing"

	"github.com/arthur-debert/projmarks/pkg/filesystem"
	"github.com/arthur-debert/projmarks/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativize(t *testing.T) {
	tests := []struct {
		name string
		abs  string
		root string
		want string
	}{
		{"inside project", "/proj/src/main.go", "/proj", "src/main.go"},
		{"root with trailing separator", "/proj/src/main.go", "/proj/", "src/main.go"},
		{"equal to root", "/proj", "/proj", "."},
		{"equal to root with trailing separator", "/proj/", "/proj", "."},
		{"partial name is not a prefix", "/proj-old/a.go", "/proj", "/proj-old/a.go"},
		{"outside project stays absolute", "/etc/hosts", "/proj", "/etc/hosts"},
		{"sibling stays absolute", "/work/other/x", "/work/proj", "/work/other/x"},
		{"relative input unchanged", "src/main.go", "/proj", "src/main.go"},
		{"filesystem root", "/a/b", "/", "a/b"},
		{"unclean path inside root", "/proj/./src/x.go", "/proj/src/..", "src/x.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.Relativize(tt.abs, tt.root))
		})
	}
}

func TestIsInside(t *testing.T) {
	assert.True(t, paths.IsInside("/proj/a", "/proj"))
	assert.True(t, paths.IsInside("/proj", "/proj"))
	assert.False(t, paths.IsInside("/projA/a", "/proj"))
}

func TestRelativizeResolveInverse(t *testing.T) {
	r := paths.NewResolver(filesystem.NewMemory(), nil, fixedWd("/nowhere"))
	root := "/nowhere/proj"

	for _, p := range []string{
		"/nowhere/proj/src/main.go",
		"/nowhere/proj/a/../b/c.txt",
		"/nowhere/proj/deep/nested/dir/",
		"/nowhere/proj",
	} {
		t.Run(p, func(t *testing.T) {
			want, err := r.Normalize(p)
			require.NoError(t, err)

			got, err := r.ResolveProjectPath(paths.Relativize(want, root), root)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
