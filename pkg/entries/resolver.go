package entries

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/filesystem"
	"github.com/arthur-debert/promptpaste/pkg/logging"
	"github.com/arthur-debert/promptpaste/pkg/paths"
	"github.com/arthur-debert/promptpaste/pkg/types"
	"github.com/rs/zerolog"
)

// Separator splits entry name segments
const Separator = "/"

// Resolver turns entry names into paths under a storage root
type Resolver struct {
	fs     types.FS
	root   string
	rules  types.Rules
	logger zerolog.Logger
}

// NewResolver creates a Resolver for root
func NewResolver(fsys types.FS, root string, rules types.Rules) *Resolver {
	return &Resolver{
		fs:     fsys,
		root:   root,
		rules:  rules,
		logger: logging.GetLogger("entries"),
	}
}

// Root returns the storage root
func (r *Resolver) Root() string {
	return r.root
}

// Normalize strips leading and trailing separators and drops empty
// segments: "bucket//prompt1/" becomes "bucket/prompt1".
func Normalize(name string) string {
	return strings.Join(Segments(name), Separator)
}

// Segments returns the non-empty segments of name
func Segments(name string) []string {
	parts := strings.Split(name, Separator)
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// Resolve joins the segments of name under the root, appending the default
// extension when the last segment has none. An existing extension is kept.
func (r *Resolver) Resolve(name string) (string, error) {
	segments := Segments(name)
	if len(segments) == 0 {
		return "", errors.New(errors.ErrInvalidInput, "entry name cannot be empty")
	}

	resolved := filepath.Join(append([]string{r.root}, segments...)...)
	if !paths.ContainsPath(r.root, resolved) || resolved == filepath.Clean(r.root) {
		return "", errors.Newf(errors.ErrInvalidInput, "entry '%s' is outside of storage", name).
			WithDetail("name", name)
	}

	if types.Ext(resolved) == "" {
		resolved += r.rules.DefaultExtension
	}
	return resolved, nil
}

// FindByPath resolves name and returns it if it is a regular file. When it
// is not, the same path without its extension is tried. Directories never
// match.
func (r *Resolver) FindByPath(name string) (string, error) {
	resolved, err := r.Resolve(name)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNotFound, "Entry '%s' not found in storage", name)
	}

	if filesystem.IsFile(r.fs, resolved) {
		return resolved, nil
	}

	if ext := types.Ext(resolved); ext != "" {
		bare := strings.TrimSuffix(resolved, ext)
		if filesystem.IsFile(r.fs, bare) {
			return bare, nil
		}
	}

	return "", notFound(name)
}

// FindByStem returns the first regular file directly under the root, in
// name order, whose stem equals name.
func (r *Resolver) FindByStem(name string) (string, error) {
	entries, err := r.fs.ReadDir(r.root)
	if err != nil {
		if os.IsNotExist(err) {
			return "", notFound(name)
		}
		return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read storage %s", r.root)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if types.Stem(entry.Name()) == name {
			matches = append(matches, entry.Name())
		}
	}
	if len(matches) == 0 {
		return "", notFound(name)
	}

	sort.Strings(matches)
	return filepath.Join(r.root, matches[0]), nil
}

// Find tries the hierarchical lookup first and the legacy stem lookup
// second
func (r *Resolver) Find(name string) (string, error) {
	path, err := r.FindByPath(name)
	if err == nil {
		return path, nil
	}
	if !errors.IsErrorCode(err, errors.ErrNotFound) {
		return "", err
	}

	r.logger.Trace().Str("name", name).Msg("Path lookup missed, trying stem lookup")
	return r.FindByStem(name)
}

func notFound(name string) error {
	return errors.Newf(errors.ErrNotFound, "Entry '%s' not found in storage", name).
		WithDetail("name", name)
}
