// pkg/testutil/environment.go
// DEPENDENCIES: filesystem, types
// PURPOSE: Orchestrate storage and source trees for tests

package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/promptpaste/pkg/filesystem"
	"github.com/arthur-debert/promptpaste/pkg/types"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment holds a storage root and a separate source directory
// to save from
type TestEnvironment struct {
	StorageRoot string
	SourceDir   string
	FS          types.FS
	Rules       types.Rules
	Type        EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment with both directories
// already present
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:     t,
		Type:  envType,
		Rules: types.DefaultRules(),
	}

	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewMemory()
		env.StorageRoot = "/virtual/storage"
		env.SourceDir = "/virtual/source"
	case EnvIsolated:
		tempDir := t.TempDir()
		env.FS = filesystem.NewOS()
		env.StorageRoot = filepath.Join(tempDir, "storage")
		env.SourceDir = filepath.Join(tempDir, "source")
	}

	require.NoError(t, env.FS.MkdirAll(env.StorageRoot, 0755))
	require.NoError(t, env.FS.MkdirAll(env.SourceDir, 0755))
	return env
}

// SourcePath joins rel onto the source directory
func (env *TestEnvironment) SourcePath(rel string) string {
	return filepath.Join(env.SourceDir, filepath.FromSlash(rel))
}

// StoragePath joins rel onto the storage root
func (env *TestEnvironment) StoragePath(rel string) string {
	return filepath.Join(env.StorageRoot, filepath.FromSlash(rel))
}

// WriteSource creates rel under the source directory with content
func (env *TestEnvironment) WriteSource(rel, content string) string {
	env.t.Helper()
	return env.write(env.SourcePath(rel), content)
}

// WriteStorage creates rel under the storage root with content
func (env *TestEnvironment) WriteStorage(rel, content string) string {
	env.t.Helper()
	return env.write(env.StoragePath(rel), content)
}

// MkdirSource creates an empty directory under the source directory
func (env *TestEnvironment) MkdirSource(rel string) string {
	env.t.Helper()
	path := env.SourcePath(rel)
	require.NoError(env.t, env.FS.MkdirAll(path, 0755))
	return path
}

// MkdirStorage creates an empty directory under the storage root
func (env *TestEnvironment) MkdirStorage(rel string) string {
	env.t.Helper()
	path := env.StoragePath(rel)
	require.NoError(env.t, env.FS.MkdirAll(path, 0755))
	return path
}

func (env *TestEnvironment) write(path, content string) string {
	require.NoError(env.t, env.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, env.FS.WriteFile(path, []byte(content), 0644))
	return path
}

// ReadStorage returns the content of rel under the storage root
func (env *TestEnvironment) ReadStorage(rel string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(env.StoragePath(rel))
	require.NoError(env.t, err)
	return string(data)
}

// StorageExists reports whether rel exists under the storage root
func (env *TestEnvironment) StorageExists(rel string) bool {
	return filesystem.Exists(env.FS, env.StoragePath(rel))
}

// StorageTree lists every path under the storage root, relative and
// slash separated, directories included
func (env *TestEnvironment) StorageTree() []string {
	env.t.Helper()
	var tree []string
	err := filesystem.Walk(env.FS, env.StorageRoot, func(rel string, _ fs.DirEntry) error {
		tree = append(tree, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(env.t, err)
	sort.Strings(tree)
	return tree
}
