package filesystem

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/promptpaste/pkg/types"
)

// Exists reports whether anything exists at path
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// IsFile reports whether path exists and is not a directory
func IsFile(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

// IsDir reports whether path exists and is a directory
func IsDir(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// CopyFile copies src to dst, carrying over the permission bits and the
// modification time. dst is overwritten if it already exists; its parent
// directory must exist.
func CopyFile(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: fs.ErrInvalid}
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}

	if err := fsys.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return err
	}

	modTime := info.ModTime()
	return fsys.Chtimes(dst, modTime, modTime)
}

// WalkFunc is called for every file and directory below the walk root.
// rel is the path relative to the root.
type WalkFunc func(rel string, entry fs.DirEntry) error

// Walk visits the tree below root depth-first, siblings in name order.
// It only uses types.FS so it behaves the same on every implementation.
func Walk(fsys types.FS, root string, fn WalkFunc) error {
	return walk(fsys, root, "", fn)
}

func walk(fsys types.FS, root, rel string, fn WalkFunc) error {
	entries, err := fsys.ReadDir(filepath.Join(root, rel))
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		childRel := filepath.Join(rel, entry.Name())
		if err := fn(childRel, entry); err != nil {
			return err
		}
		if entry.IsDir() {
			if err := walk(fsys, root, childRel, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// SortPaths orders relative paths component by component, so "a/b.md"
// sorts before "a.md" the same way a directory listing would.
func SortPaths(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		return ComparePaths(paths[i], paths[j]) < 0
	})
}

// ComparePaths compares two relative paths component by component
func ComparePaths(a, b string) int {
	partsA := strings.Split(filepath.ToSlash(a), "/")
	partsB := strings.Split(filepath.ToSlash(b), "/")
	for i := 0; i < len(partsA) && i < len(partsB); i++ {
		if c := strings.Compare(partsA[i], partsB[i]); c != 0 {
			return c
		}
	}
	return len(partsA) - len(partsB)
}

// ReadText reads path as UTF-8 text. Invalid byte sequences are dropped
// rather than reported.
func ReadText(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
