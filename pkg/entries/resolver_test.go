// Test Type: Unit Test
// Description: Tests for entry name normalization, resolution and lookup

package entries_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/promptpaste/pkg/entries"
	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/filesystem"
	"github.com/arthur-debert/promptpaste/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/storage"

func newResolver(t *testing.T, files ...string) (*entries.Resolver, types.FS) {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll(root, 0755))
	for _, f := range files {
		full := filepath.Join(root, f)
		if strings.HasSuffix(f, "/") {
			require.NoError(t, fsys.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, fsys.WriteFile(full, []byte("content of "+f), 0644))
	}
	return entries.NewResolver(fsys, root, types.DefaultRules()), fsys
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"bucket/prompt1/", "bucket/prompt1"},
		{"bucket//prompt1", "bucket/prompt1"},
		{"/bucket/prompt1", "bucket/prompt1"},
		{"///a///b///", "a/b"},
		{"prompt1", "prompt1"},
		{"", ""},
		{"///", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := entries.Normalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, entries.Normalize(got), "normalize must be idempotent")
			assert.False(t, strings.HasPrefix(got, "/"))
			assert.False(t, strings.HasSuffix(got, "/"))
			assert.NotContains(t, got, "//")
		})
	}
}

func TestResolve(t *testing.T) {
	r, _ := newResolver(t)

	tests := []struct {
		name string
		want string
	}{
		{"bucket/prompt1", filepath.Join(root, "bucket", "prompt1.md")},
		{"a/b/c.txt", filepath.Join(root, "a", "b", "c.txt")},
		{"prompt1", filepath.Join(root, "prompt1.md")},
		{"bucket//prompt1/", filepath.Join(root, "bucket", "prompt1.md")},
		{".bashrc", filepath.Join(root, ".bashrc.md")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Rejects(t *testing.T) {
	r, _ := newResolver(t)

	for _, name := range []string{"", "/", "..", "../outside", "a/../..", "."} {
		t.Run(name, func(t *testing.T) {
			_, err := r.Resolve(name)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}

func TestFindByPath(t *testing.T) {
	r, _ := newResolver(t,
		"bucket/prompt1.md",
		"bucket/notes.txt",
		"plain",
		"multi/a.md",
		"multi/b.md",
		"onlydir/",
	)

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "hierarchical name", want: filepath.Join(root, "bucket", "prompt1.md")},
		{name: "explicit extension", want: filepath.Join(root, "bucket", "notes.txt")},
		{name: "file without extension", want: filepath.Join(root, "plain")},
		{name: "missing", wantErr: true},
		{name: "multi", wantErr: true},
		{name: "onlydir", wantErr: true},
		{name: "bucket/notes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.FindByPath(tt.name)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindByStem(t *testing.T) {
	r, _ := newResolver(t, "snippet.txt", "snippet.md", "other.md", "folder/", "folder/snippet.md")

	got, err := r.FindByStem("snippet")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "snippet.md"), got, "first match in name order wins")

	_, err = r.FindByStem("folder")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "directories never match")

	_, err = r.FindByStem("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestFindByStem_MissingRoot(t *testing.T) {
	r := entries.NewResolver(filesystem.NewMemory(), "/nowhere", types.DefaultRules())

	_, err := r.FindByStem("x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestFind(t *testing.T) {
	r, _ := newResolver(t, "snippet.txt", "bucket/prompt1.md")

	t.Run("path lookup", func(t *testing.T) {
		got, err := r.Find("bucket/prompt1")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "bucket", "prompt1.md"), got)
	})

	t.Run("legacy stem fallback", func(t *testing.T) {
		got, err := r.Find("snippet")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "snippet.txt"), got)
	})

	t.Run("folder name is not an entry", func(t *testing.T) {
		_, err := r.Find("bucket")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}
