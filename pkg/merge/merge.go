package merge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/filesystem"
	"github.com/arthur-debert/promptpaste/pkg/logging"
	"github.com/arthur-debert/promptpaste/pkg/scanner"
	"github.com/arthur-debert/promptpaste/pkg/types"
	"github.com/rs/zerolog"
)

// Report lists the per-file outcome of a merge. It is not persisted.
type Report struct {
	// Merged files were new to the target and copied over
	Merged []string
	// Conflicts existed on both sides and were prepend-merged
	Conflicts []string
	// Skipped is reserved and always empty
	Skipped []string
	// Cancelled is set when the user declined the merge
	Cancelled bool
}

// Changed reports whether anything was written
func (r *Report) Changed() bool {
	return len(r.Merged) > 0 || len(r.Conflicts) > 0
}

func emptyReport() *Report {
	return &Report{Merged: []string{}, Conflicts: []string{}, Skipped: []string{}}
}

// Engine merges folders
type Engine struct {
	fs        types.FS
	scanner   *scanner.Scanner
	prompter  types.Prompter
	separator string
	out       io.Writer
	logger    zerolog.Logger
}

// New creates an Engine. Notices go to out; nil discards them.
func New(fsys types.FS, rules types.Rules, prompter types.Prompter, out io.Writer) *Engine {
	if out == nil {
		out = io.Discard
	}
	return &Engine{
		fs:        fsys,
		scanner:   scanner.New(fsys, rules),
		prompter:  prompter,
		separator: rules.MergeSeparator,
		out:       out,
		logger:    logging.GetLogger("merge"),
	}
}

// ConfirmMessage is the question asked before merging into folderName
func ConfirmMessage(folderName string) string {
	return fmt.Sprintf("Folder '%s' already exists. Merge into it? (y/n): ", folderName)
}

// DetectConflicts returns the eligible source files, relative and sorted,
// that already exist under target
func (e *Engine) DetectConflicts(source, target string) ([]string, error) {
	files, err := e.scanner.Discover(source)
	if err != nil {
		return nil, err
	}

	conflicts := []string{}
	for _, rel := range files {
		if filesystem.Exists(e.fs, filepath.Join(target, rel)) {
			conflicts = append(conflicts, rel)
		}
	}
	return conflicts, nil
}

// Merge folds source into target after asking for confirmation. Declining
// returns an empty report marked Cancelled and touches nothing.
func (e *Engine) Merge(source, target string) (*Report, error) {
	done := logging.LogOperationStart(e.logger, "merge")
	defer done()

	if err := e.checkFolders(source, target); err != nil {
		return nil, err
	}

	conflicts, err := e.DetectConflicts(source, target)
	if err != nil {
		return nil, err
	}
	e.logger.Debug().
		Str("source", source).
		Str("target", target).
		Int("conflicts", len(conflicts)).
		Msg("Detected conflicts")

	ok, err := types.Confirm(e.prompter, ConfirmMessage(filepath.Base(target)))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrPrompt, "failed to read confirmation")
	}
	report := emptyReport()
	if !ok {
		fmt.Fprintln(e.out, "Merge cancelled")
		report.Cancelled = true
		return report, nil
	}

	files, err := e.scanner.Discover(source)
	if err != nil {
		return nil, err
	}

	for _, rel := range files {
		src := filepath.Join(source, rel)
		dst := filepath.Join(target, rel)

		if err := e.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(dst))
		}

		if filesystem.Exists(e.fs, dst) {
			if err := e.Prepend(src, dst); err != nil {
				return nil, err
			}
			report.Conflicts = append(report.Conflicts, rel)
			continue
		}

		if err := filesystem.CopyFile(e.fs, src, dst); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to copy %s", rel)
		}
		report.Merged = append(report.Merged, rel)
	}

	e.logger.Info().
		Str("source", source).
		Str("target", target).
		Int("merged", len(report.Merged)).
		Int("conflicts", len(report.Conflicts)).
		Msg("Folders merged")
	return report, nil
}

// Prepend rewrites target as source content, the separator, then the old
// target content. Bytes are kept as they are on both sides.
func (e *Engine) Prepend(source, target string) error {
	newContent, err := e.fs.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", source)
	}
	oldContent, err := e.fs.ReadFile(target)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", target)
	}

	perm := os.FileMode(0644)
	if info, err := e.fs.Stat(target); err == nil {
		perm = info.Mode().Perm()
	}

	merged := make([]byte, 0, len(newContent)+len(e.separator)+len(oldContent))
	merged = append(merged, newContent...)
	merged = append(merged, e.separator...)
	merged = append(merged, oldContent...)
	if err := e.fs.WriteFile(target, merged, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target)
	}
	return nil
}

func (e *Engine) checkFolders(source, target string) error {
	for _, path := range []string{source, target} {
		if !filesystem.Exists(e.fs, path) {
			return errors.Newf(errors.ErrNotFound, "%s", path).WithDetail("path", path)
		}
	}
	for _, path := range []string{source, target} {
		if !filesystem.IsDir(e.fs, path) {
			return errors.Newf(errors.ErrNotADirectory, "%s", path).WithDetail("path", path)
		}
	}
	return nil
}
