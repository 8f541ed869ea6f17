package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/filesystem"
	"github.com/arthur-debert/promptpaste/pkg/logging"
	"github.com/arthur-debert/promptpaste/pkg/types"
	"github.com/rs/zerolog"
)

// Scanner enumerates eligible files below a folder
type Scanner struct {
	fs     types.FS
	rules  types.Rules
	logger zerolog.Logger
}

// Structure lists the direct children of a folder, each group sorted
type Structure struct {
	Files   []string
	Folders []string
}

// New creates a Scanner
func New(fsys types.FS, rules types.Rules) *Scanner {
	return &Scanner{
		fs:     fsys,
		rules:  rules,
		logger: logging.GetLogger("scanner"),
	}
}

// IsEligible reports whether name has an importable extension
func (s *Scanner) IsEligible(name string) bool {
	return s.rules.IsEligible(name)
}

// CheckFolder fails with NotFound when folder is missing and
// NotADirectory when it is a file
func CheckFolder(fsys types.FS, folder string) error {
	info, err := fsys.Stat(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNotFound, "%s", folder).WithDetail("path", folder)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", folder)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrNotADirectory, "%s", folder).WithDetail("path", folder)
	}
	return nil
}

// Discover walks folder recursively and returns the eligible files whose
// stem is not prohibited, relative to folder and sorted by path.
func (s *Scanner) Discover(folder string) ([]string, error) {
	if err := CheckFolder(s.fs, folder); err != nil {
		return nil, err
	}

	var found []string
	err := filesystem.Walk(s.fs, folder, func(rel string, entry fs.DirEntry) error {
		if entry.IsDir() {
			return nil
		}
		name := entry.Name()
		if !s.rules.IsEligible(name) {
			return nil
		}
		if s.rules.IsProhibited(types.Stem(name)) {
			s.logger.Debug().Str("file", rel).Msg("Skipping prohibited name")
			return nil
		}
		found = append(found, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to scan %s", folder)
	}

	filesystem.SortPaths(found)
	s.logger.Debug().Str("folder", folder).Int("count", len(found)).Msg("Discovered eligible files")
	return found, nil
}

// IsSingleSkillFolder reports whether folder holds exactly one file, not
// counting subdirectories, and that file is the skill sentinel.
func (s *Scanner) IsSingleSkillFolder(folder string) bool {
	entries, err := s.fs.ReadDir(folder)
	if err != nil {
		return false
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}
	return len(files) == 1 && files[0] == s.rules.SkillSentinel
}

// SkillFile returns the sentinel path inside a skill folder
func (s *Scanner) SkillFile(folder string) string {
	return filepath.Join(folder, s.rules.SkillSentinel)
}

// Structure returns the sorted file and folder names directly inside folder
func (s *Scanner) Structure(folder string) (*Structure, error) {
	if err := CheckFolder(s.fs, folder); err != nil {
		return nil, err
	}

	entries, err := s.fs.ReadDir(folder)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", folder)
	}

	st := &Structure{Files: []string{}, Folders: []string{}}
	for _, entry := range entries {
		if entry.IsDir() {
			st.Folders = append(st.Folders, entry.Name())
		} else {
			st.Files = append(st.Files, entry.Name())
		}
	}
	sort.Strings(st.Files)
	sort.Strings(st.Folders)
	return st, nil
}
