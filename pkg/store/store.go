package store

import (
	"io"

	"github.com/arthur-debert/promptpaste/pkg/collision"
	"github.com/arthur-debert/promptpaste/pkg/entries"
	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/filesystem"
	"github.com/arthur-debert/promptpaste/pkg/importer"
	"github.com/arthur-debert/promptpaste/pkg/logging"
	"github.com/arthur-debert/promptpaste/pkg/merge"
	"github.com/arthur-debert/promptpaste/pkg/scanner"
	"github.com/arthur-debert/promptpaste/pkg/types"
	"github.com/rs/zerolog"
)

// Store manages the entries below a single storage root
type Store struct {
	fs         types.FS
	root       string
	rules      types.Rules
	entries    *entries.Resolver
	scanner    *scanner.Scanner
	collisions *collision.Resolver
	importer   *importer.Engine
	merger     *merge.Engine
	logger     zerolog.Logger
}

// New creates a Store. prompter answers collision and confirmation
// questions; notices from the engines go to out, nil discards them.
func New(fsys types.FS, root string, rules types.Rules, prompter types.Prompter, out io.Writer) *Store {
	if out == nil {
		out = io.Discard
	}
	return &Store{
		fs:         fsys,
		root:       root,
		rules:      rules,
		entries:    entries.NewResolver(fsys, root, rules),
		scanner:    scanner.New(fsys, rules),
		collisions: collision.NewResolver(fsys, rules, prompter, out),
		importer:   importer.New(fsys, rules, prompter, out),
		merger:     merge.New(fsys, rules, prompter, out),
		logger:     logging.GetLogger("store"),
	}
}

// SetErrOutput routes error notices raised while resolving collisions to w
func (s *Store) SetErrOutput(w io.Writer) {
	s.collisions.SetErrOutput(w)
	s.importer.SetErrOutput(w)
}

// Root returns the storage root
func (s *Store) Root() string {
	return s.root
}

// Rules returns the naming rules in effect
func (s *Store) Rules() types.Rules {
	return s.rules
}

// EnsureRoot creates the storage root if it does not exist yet
func (s *Store) EnsureRoot() error {
	if filesystem.IsDir(s.fs, s.root) {
		return nil
	}
	if err := s.fs.MkdirAll(s.root, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create storage %s", s.root)
	}
	s.logger.Info().Str("root", s.root).Msg("Created storage root")
	return nil
}
