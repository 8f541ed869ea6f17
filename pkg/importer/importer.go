package importer

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/arthur-debert/promptpaste/pkg/collision"
	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/filesystem"
	"github.com/arthur-debert/promptpaste/pkg/logging"
	"github.com/arthur-debert/promptpaste/pkg/scanner"
	"github.com/arthur-debert/promptpaste/pkg/types"
	"github.com/rs/zerolog"
)

// Result describes the outcome of a folder import
type Result struct {
	// Folder is the destination entry folder
	Folder string
	// Imported maps source-relative paths to their final destination
	Imported map[string]string
	// Discovered is the number of eligible files found
	Discovered int
	// Cancelled is set when the user declined the import
	Cancelled bool
}

// Count returns the number of files that landed in storage
func (r *Result) Count() int {
	return len(r.Imported)
}

// Engine imports folders into a storage root
type Engine struct {
	fs       types.FS
	scanner  *scanner.Scanner
	resolver *collision.Resolver
	prompter types.Prompter
	out      io.Writer
	logger   zerolog.Logger
}

// New creates an Engine. Notices go to out; nil discards them.
func New(fsys types.FS, rules types.Rules, prompter types.Prompter, out io.Writer) *Engine {
	if out == nil {
		out = io.Discard
	}
	return &Engine{
		fs:       fsys,
		scanner:  scanner.New(fsys, rules),
		resolver: collision.NewResolver(fsys, rules, prompter, out),
		prompter: prompter,
		out:      out,
		logger:   logging.GetLogger("importer"),
	}
}

// SetErrOutput routes collision error notices to w
func (e *Engine) SetErrOutput(w io.Writer) {
	e.resolver.SetErrOutput(w)
}

// ConfirmMessage is the question asked before anything is copied
func ConfirmMessage(folderName string, count int) string {
	return fmt.Sprintf("Import folder '%s' with %d file(s)? (y/n): ", folderName, count)
}

// Import copies the eligible files of source into root/<source name>.
// An explicit new name in policy is ignored since it cannot label many
// files. A file whose collision is cancelled is left out of the result
// without aborting the rest.
func (e *Engine) Import(source, root string, policy collision.Policy) (*Result, error) {
	done := logging.LogOperationStart(e.logger, "import")
	defer done()

	name := filepath.Base(source)
	result := &Result{
		Folder:   filepath.Join(root, name),
		Imported: map[string]string{},
	}

	files, err := e.scanner.Discover(source)
	if err != nil {
		return nil, err
	}
	result.Discovered = len(files)

	if len(files) == 0 {
		fmt.Fprintf(e.out, "No eligible files found in '%s'\n", name)
		return result, nil
	}

	ok, err := types.Confirm(e.prompter, ConfirmMessage(name, len(files)))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrPrompt, "failed to read confirmation")
	}
	if !ok {
		fmt.Fprintln(e.out, "Import cancelled")
		result.Cancelled = true
		return result, nil
	}

	// The folder exists from here on even if every file is cancelled
	if err := e.fs.MkdirAll(result.Folder, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", result.Folder)
	}

	policy = policy.WithoutNewName()
	for _, rel := range files {
		src := filepath.Join(source, rel)
		dst := filepath.Join(result.Folder, rel)

		if err := e.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(dst))
		}

		final, err := e.resolver.Resolve(dst, policy)
		if err != nil {
			return nil, err
		}
		if final == "" {
			e.logger.Debug().Str("file", rel).Msg("Skipped after cancelled collision")
			continue
		}

		if err := filesystem.CopyFile(e.fs, src, final); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to copy %s", rel)
		}
		result.Imported[rel] = final
	}

	e.logger.Info().
		Str("source", source).
		Str("target", result.Folder).
		Str("policy", string(policy.Mode())).
		Int("count", result.Count()).
		Msg("Folder imported")
	return result, nil
}
