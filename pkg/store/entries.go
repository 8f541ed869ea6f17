package store

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/filesystem"
	"github.com/arthur-debert/promptpaste/pkg/types"
)

// Entry is a direct child of the storage root
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// List returns the direct children of the storage root, files and folders
// intermixed, sorted by name
func (s *Store) List() ([]Entry, error) {
	if err := s.EnsureRoot(); err != nil {
		return nil, err
	}

	dirEntries, err := s.fs.ReadDir(s.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read storage %s", s.root)
	}

	list := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry := Entry{
			Name:  de.Name(),
			Path:  filepath.Join(s.root, de.Name()),
			IsDir: de.IsDir(),
		}
		if info, err := de.Info(); err == nil {
			entry.Size = info.Size()
			entry.ModTime = info.ModTime()
		}
		list = append(list, entry)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// Find returns the path of the entry called name, by hierarchical path
// first and legacy stem second
func (s *Store) Find(name string) (string, error) {
	return s.entries.Find(name)
}

// Read returns the content of the entry called name. Invalid UTF-8 is
// dropped rather than reported.
func (s *Store) Read(name string) (string, error) {
	path, err := s.entries.Find(name)
	if err != nil {
		return "", err
	}

	content, err := filesystem.ReadText(s.fs, path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", name)
	}
	s.logger.Debug().Str("name", name).Str("path", path).Msg("Entry read")
	return content, nil
}

// Remove deletes the first top-level file whose stem is name. Hierarchical
// names are not resolved and folders are never removed.
func (s *Store) Remove(name string) (string, error) {
	path, err := s.entries.FindByStem(name)
	if err != nil {
		return "", err
	}

	if err := s.fs.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrNotFound, "Entry '%s' not found in storage", name)
		}
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to remove %s", name)
	}
	s.logger.Info().Str("name", name).Str("path", path).Msg("Entry removed")
	return path, nil
}

// Names returns every stored file as a name Read accepts, slash separated.
// The default extension is left off.
func (s *Store) Names() ([]string, error) {
	if !filesystem.IsDir(s.fs, s.root) {
		return nil, nil
	}

	var names []string
	err := filesystem.Walk(s.fs, s.root, func(rel string, entry fs.DirEntry) error {
		if entry.IsDir() {
			return nil
		}
		name := filepath.ToSlash(rel)
		if types.Ext(name) == s.rules.DefaultExtension {
			name = strings.TrimSuffix(name, s.rules.DefaultExtension)
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read storage %s", s.root)
	}
	return names, nil
}
