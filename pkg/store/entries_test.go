// Test Type: Unit Test
// Description: Tests for reading, listing, previewing and removing entries

package store_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/store"
	"github.com/arthur-debert/promptpaste/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	s, env, _, _ := newStore(t)
	env.WriteStorage("bucket/prompt1.md", "hierarchical")
	env.WriteStorage("legacy.txt", "flat")
	env.WriteStorage("broken.md", "ok\xffdone")
	env.WriteStorage("multi/a.md", "a")
	env.WriteStorage("multi/b.md", "b")

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "bucket/prompt1", want: "hierarchical"},
		{name: "bucket//prompt1/", want: "hierarchical"},
		{name: "legacy", want: "flat"},
		{name: "legacy.txt", want: "flat"},
		{name: "broken", want: "okdone"},
		{name: "multi", wantErr: true},
		{name: "missing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Read(tt.name)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList(t *testing.T) {
	s, env, _, _ := newStore(t)
	env.WriteStorage("zeta.md", "z")
	env.WriteStorage("alpha.txt", "alpha")
	env.WriteStorage("middle/x.md", "x")

	list, err := s.List()
	require.NoError(t, err)

	var names []string
	for _, e := range list {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"alpha.txt", "middle", "zeta.md"}, names)
	assert.True(t, list[1].IsDir)
	assert.Equal(t, int64(5), list[0].Size)
}

func TestList_EmptyStorageIsCreated(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	s := store.New(env.FS, env.StoragePath("fresh"), env.Rules, nil, nil)

	list, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.True(t, env.StorageExists("fresh"))
}

func TestRemove(t *testing.T) {
	s, env, _, _ := newStore(t)
	env.WriteStorage("snippet.md", "x")
	env.WriteStorage("snippet.txt", "y")
	env.WriteStorage("bucket/inner.md", "z")

	path, err := s.Remove("snippet")
	require.NoError(t, err)
	assert.Equal(t, env.StoragePath("snippet.md"), path)
	assert.False(t, env.StorageExists("snippet.md"))
	assert.True(t, env.StorageExists("snippet.txt"))

	_, err = s.Remove("bucket/inner")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "hierarchical names are not removed")

	_, err = s.Remove("bucket")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "folders are not removed")
	assert.True(t, env.StorageExists("bucket/inner.md"))
}

func TestRemove_MissingFailsEveryTime(t *testing.T) {
	s, _, _, _ := newStore(t)

	for i := 0; i < 2; i++ {
		_, err := s.Remove("ghost")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	}
}

func TestPreview(t *testing.T) {
	s, env, _, _ := newStore(t)
	env.WriteStorage("b.md", "  first line  \nsecond\n")
	env.WriteStorage("a.txt", "")
	env.WriteStorage("zdir/inner.md", strings.Repeat("x", 70))
	env.WriteStorage("adir/deep/leaf.md", "héllo")

	items, err := s.Preview(64)
	require.NoError(t, err)

	type row struct {
		name  string
		depth int
		dir   bool
	}
	var rows []row
	for _, it := range items {
		rows = append(rows, row{it.Name, it.Depth, it.IsDir})
	}
	assert.Equal(t, []row{
		{"adir", 0, true},
		{"deep", 1, true},
		{"leaf.md", 2, false},
		{"zdir", 0, true},
		{"inner.md", 1, false},
		{"a.txt", 0, false},
		{"b.md", 0, false},
	}, rows)

	byName := map[string]store.PreviewItem{}
	for _, it := range items {
		byName[it.Name] = it
	}

	b := byName["b.md"]
	assert.Equal(t, 3, b.Lines)
	assert.Equal(t, 22, b.Chars)
	assert.Equal(t, "first line", b.FirstLine)
	assert.False(t, b.Truncated)

	empty := byName["a.txt"]
	assert.Equal(t, 1, empty.Lines)
	assert.Equal(t, 0, empty.Chars)
	assert.Equal(t, "", empty.FirstLine)

	long := byName["inner.md"]
	assert.Equal(t, strings.Repeat("x", 64)+"...", long.FirstLine)
	assert.True(t, long.Truncated)

	leaf := byName["leaf.md"]
	assert.Equal(t, 5, leaf.Chars, "characters are code points")
	assert.Equal(t, int64(6), leaf.Size)
}

func TestPreview_Width(t *testing.T) {
	s, env, _, _ := newStore(t)
	env.WriteStorage("a.md", "abcdefghij")

	items, err := s.Preview(4)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "abcd...", items[0].FirstLine)

	items, err = s.Preview(0)
	require.NoError(t, err)
	assert.Equal(t, "abcdefghij", items[0].FirstLine)
}

func TestNames(t *testing.T) {
	s, env, _, _ := newStore(t)
	env.WriteStorage("snippet.md", "x")
	env.WriteStorage("notes.txt", "x")
	env.WriteStorage("bucket/prompt1.md", "x")
	env.MkdirStorage("empty")

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"bucket/prompt1", "notes.txt", "snippet"}, names)
}
