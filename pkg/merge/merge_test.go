// Test Type: Unit Test
// Description: Tests for folder merge confirmation, copy and prepend-merge

package merge_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/merge"
	"github.com/arthur-debert/promptpaste/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *testutil.TestEnvironment {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteSource("docs/shared.md", "new shared")
	env.WriteSource("docs/fresh.md", "new fresh")
	env.WriteSource("docs/sub/deep.txt", "new deep")
	env.WriteSource("docs/list.md", "reserved")
	env.WriteStorage("docs/shared.md", "old shared")
	env.WriteStorage("docs/keep.md", "untouched")
	return env
}

func TestDetectConflicts(t *testing.T) {
	env := setup(t)
	env.WriteStorage("docs/sub/deep.txt", "old deep")
	env.WriteStorage("docs/list.md", "reserved in target")

	conflicts, err := merge.New(env.FS, env.Rules, nil, nil).
		DetectConflicts(env.SourcePath("docs"), env.StoragePath("docs"))
	require.NoError(t, err)
	assert.Equal(t, []string{"shared.md", filepath.Join("sub", "deep.txt")}, conflicts)
}

func TestMerge(t *testing.T) {
	env := setup(t)
	prompter := testutil.NewScriptedPrompter("y")
	var out bytes.Buffer

	report, err := merge.New(env.FS, env.Rules, prompter, &out).
		Merge(env.SourcePath("docs"), env.StoragePath("docs"))
	require.NoError(t, err)

	assert.Equal(t, []string{"fresh.md", filepath.Join("sub", "deep.txt")}, report.Merged)
	assert.Equal(t, []string{"shared.md"}, report.Conflicts)
	assert.NotNil(t, report.Skipped)
	assert.Empty(t, report.Skipped)
	assert.False(t, report.Cancelled)
	assert.True(t, report.Changed())

	assert.Equal(t, "new shared\n\n--- MERGED ---\n\nold shared", env.ReadStorage("docs/shared.md"))
	assert.Equal(t, "new fresh", env.ReadStorage("docs/fresh.md"))
	assert.Equal(t, "new deep", env.ReadStorage("docs/sub/deep.txt"))
	assert.Equal(t, "untouched", env.ReadStorage("docs/keep.md"))
	assert.False(t, env.StorageExists("docs/list.md"))

	assert.Equal(t, []string{"Folder 'docs' already exists. Merge into it? (y/n): "}, prompter.Questions)
	assert.Empty(t, out.String())
}

func TestMerge_Declined(t *testing.T) {
	for _, answer := range []string{"n", "", "no"} {
		t.Run(answer, func(t *testing.T) {
			env := setup(t)
			before := env.StorageTree()
			var out bytes.Buffer

			report, err := merge.New(env.FS, env.Rules, testutil.NewScriptedPrompter(answer), &out).
				Merge(env.SourcePath("docs"), env.StoragePath("docs"))
			require.NoError(t, err)

			assert.True(t, report.Cancelled)
			assert.Empty(t, report.Merged)
			assert.Empty(t, report.Conflicts)
			assert.Empty(t, report.Skipped)
			assert.False(t, report.Changed())
			assert.Equal(t, "Merge cancelled\n", out.String())
			assert.Equal(t, before, env.StorageTree())
			assert.Equal(t, "old shared", env.ReadStorage("docs/shared.md"))
		})
	}
}

func TestMerge_RepeatedMergeStacksContent(t *testing.T) {
	env := setup(t)
	eng := merge.New(env.FS, env.Rules, testutil.NewScriptedPrompter("y", "y"), nil)

	_, err := eng.Merge(env.SourcePath("docs"), env.StoragePath("docs"))
	require.NoError(t, err)
	report, err := eng.Merge(env.SourcePath("docs"), env.StoragePath("docs"))
	require.NoError(t, err)

	assert.Empty(t, report.Merged)
	assert.Len(t, report.Conflicts, 3)
	assert.Equal(t, "new fresh\n\n--- MERGED ---\n\nnew fresh", env.ReadStorage("docs/fresh.md"))
}

func TestMerge_BadFolders(t *testing.T) {
	env := setup(t)
	file := env.WriteStorage("file.md", "x")
	eng := merge.New(env.FS, env.Rules, testutil.NewScriptedPrompter(), nil)

	tests := []struct {
		name   string
		source string
		target string
		code   errors.ErrorCode
	}{
		{"missing source", env.SourcePath("nope"), env.StoragePath("docs"), errors.ErrNotFound},
		{"missing target", env.SourcePath("docs"), env.StoragePath("nope"), errors.ErrNotFound},
		{"source is a file", env.SourcePath("docs/fresh.md"), env.StoragePath("docs"), errors.ErrNotADirectory},
		{"target is a file", env.SourcePath("docs"), file, errors.ErrNotADirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Merge(tt.source, tt.target)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestPrepend_KeepsBytes(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		stored   string
		want     string
	}{
		{
			name:     "invalid utf-8 in stored entry",
			incoming: "new",
			stored:   "old\xff\xfebytes",
			want:     "new\n\n--- MERGED ---\n\nold\xff\xfebytes",
		},
		{
			name:     "invalid utf-8 on both sides",
			incoming: "new\xff",
			stored:   "\xfeold",
			want:     "new\xff\n\n--- MERGED ---\n\n\xfeold",
		},
		{
			name:     "empty stored entry",
			incoming: "new",
			stored:   "",
			want:     "new\n\n--- MERGED ---\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
			src := env.WriteSource("a.md", tt.incoming)
			dst := env.WriteStorage("a.md", tt.stored)

			require.NoError(t, merge.New(env.FS, env.Rules, nil, nil).Prepend(src, dst))
			assert.Equal(t, []byte(tt.want), []byte(env.ReadStorage("a.md")))
		})
	}
}

func TestMerge_KeepsInvalidBytes(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteSource("bucket/a.md", "new")
	env.WriteStorage("bucket/a.md", "old\xff\xfebytes")

	report, err := merge.New(env.FS, env.Rules, testutil.NewScriptedPrompter("y"), nil).
		Merge(env.SourcePath("bucket"), env.StoragePath("bucket"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md"}, report.Conflicts)
	assert.Equal(t, "new\n\n--- MERGED ---\n\nold\xff\xfebytes", env.ReadStorage("bucket/a.md"))
}
