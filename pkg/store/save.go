package store

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/promptpaste/pkg/collision"
	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/filesystem"
	"github.com/arthur-debert/promptpaste/pkg/importer"
	"github.com/arthur-debert/promptpaste/pkg/logging"
	"github.com/arthur-debert/promptpaste/pkg/merge"
	"github.com/arthur-debert/promptpaste/pkg/paths"
	"github.com/arthur-debert/promptpaste/pkg/scanner"
	"github.com/arthur-debert/promptpaste/pkg/types"
)

// Decision is the kind of save a source calls for
type Decision string

const (
	DecisionFile    Decision = "file"
	DecisionSkill   Decision = "skill"
	DecisionMerge   Decision = "merge"
	DecisionImport  Decision = "import"
	DecisionContent Decision = "content"
)

// Plan is the side-effect free outcome of the save dispatch
type Plan struct {
	Kind Decision
	// Source is the file or folder being saved
	Source string
	// File is the file that will be copied for file and skill saves
	File string
	// Target is the desired destination before collision handling
	Target string
}

// SaveResult describes what a save did
type SaveResult struct {
	Kind Decision
	// Path is the final entry or entry folder; empty when nothing was saved
	Path string
	// Import is set for folder imports
	Import *importer.Result
	// Merge is set for merges
	Merge *merge.Report
	// Skill is set for skill folders with readable frontmatter
	Skill *scanner.SkillMetadata
}

// Saved reports whether the save produced an entry
func (r *SaveResult) Saved() bool {
	return r.Path != ""
}

// Name returns the base name of the saved entry
func (r *SaveResult) Name() string {
	if r.Path == "" {
		return ""
	}
	return filepath.Base(r.Path)
}

// Plan decides how source would be saved. It fails with NotFound when
// source does not exist and ProhibitedName for a reserved file name.
func (s *Store) Plan(source string) (*Plan, error) {
	info, err := s.fs.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "%s", source).WithDetail("path", source)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", source)
	}

	name := filepath.Base(source)

	if !info.IsDir() {
		if s.rules.IsProhibited(types.Stem(name)) {
			return nil, prohibited(name)
		}
		return &Plan{
			Kind:   DecisionFile,
			Source: source,
			File:   source,
			Target: filepath.Join(s.root, name),
		}, nil
	}

	if s.scanner.IsSingleSkillFolder(source) {
		if s.rules.IsProhibited(name) {
			return nil, prohibited(name + s.rules.DefaultExtension)
		}
		return &Plan{
			Kind:   DecisionSkill,
			Source: source,
			File:   s.scanner.SkillFile(source),
			Target: filepath.Join(s.root, name+s.rules.DefaultExtension),
		}, nil
	}

	target := filepath.Join(s.root, name)
	if filesystem.IsDir(s.fs, target) {
		return &Plan{Kind: DecisionMerge, Source: source, Target: target}, nil
	}
	if filesystem.Exists(s.fs, target) {
		return nil, errors.Newf(errors.ErrNotADirectory, "%s", target).WithDetail("path", target)
	}
	return &Plan{Kind: DecisionImport, Source: source, Target: target}, nil
}

// Save copies a file or folder into storage according to its Plan.
// A cancelled save returns a result with an empty Path and no error.
func (s *Store) Save(source string, policy collision.Policy) (*SaveResult, error) {
	done := logging.LogOperationStart(s.logger, "save")
	defer done()

	plan, err := s.Plan(source)
	if err != nil {
		return nil, err
	}
	if err := s.EnsureRoot(); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("source", source).
		Str("decision", string(plan.Kind)).
		Str("policy", string(policy.Mode())).
		Msg("Planned save")

	switch plan.Kind {
	case DecisionFile:
		return s.saveFile(plan, policy)
	case DecisionSkill:
		return s.saveSkill(plan, policy)
	case DecisionMerge:
		return s.saveMerge(plan)
	case DecisionImport:
		return s.saveImport(plan, policy)
	}
	return nil, errors.Newf(errors.ErrInternal, "unknown save decision %q", plan.Kind)
}

func (s *Store) saveFile(plan *Plan, policy collision.Policy) (*SaveResult, error) {
	result := &SaveResult{Kind: plan.Kind}

	final, err := s.collisions.Resolve(plan.Target, policy)
	if err != nil || final == "" {
		return result, err
	}
	if err := s.checkFinalName(final); err != nil {
		return nil, err
	}

	if err := filesystem.CopyFile(s.fs, plan.File, final); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to save %s", filepath.Base(plan.File))
	}
	result.Path = final

	s.logger.Info().Str("source", plan.Source).Str("target", final).Msg("Entry saved")
	return result, nil
}

func (s *Store) saveSkill(plan *Plan, policy collision.Policy) (*SaveResult, error) {
	result, err := s.saveFile(plan, policy)
	if err != nil || !result.Saved() {
		return result, err
	}

	meta, err := scanner.ReadSkillMetadata(s.fs, plan.File)
	if err != nil {
		s.logger.Warn().Err(err).Str("file", plan.File).Msg("Ignoring unreadable skill metadata")
		return result, nil
	}
	result.Skill = meta
	return result, nil
}

func (s *Store) saveMerge(plan *Plan) (*SaveResult, error) {
	report, err := s.merger.Merge(plan.Source, plan.Target)
	if err != nil {
		return nil, err
	}
	// The folder is reported even when nothing changed
	return &SaveResult{Kind: plan.Kind, Path: plan.Target, Merge: report}, nil
}

func (s *Store) saveImport(plan *Plan, policy collision.Policy) (*SaveResult, error) {
	imported, err := s.importer.Import(plan.Source, s.root, policy)
	if err != nil {
		return nil, err
	}

	result := &SaveResult{Kind: plan.Kind, Import: imported}
	if imported.Count() > 0 {
		result.Path = imported.Folder
	}
	return result, nil
}

// SaveContent stores content as a new top-level entry called name. The
// default extension is added when name has none. The prohibited-name check
// and collision handling match file saves.
func (s *Store) SaveContent(name string, content []byte, policy collision.Policy) (*SaveResult, error) {
	if err := paths.ValidateEntryName(name); err != nil {
		return nil, err
	}
	if s.rules.IsProhibited(types.Stem(name)) {
		return nil, prohibited(name)
	}
	if types.Ext(name) == "" {
		name += s.rules.DefaultExtension
	}
	if err := s.EnsureRoot(); err != nil {
		return nil, err
	}

	result := &SaveResult{Kind: DecisionContent}
	final, err := s.collisions.Resolve(filepath.Join(s.root, name), policy)
	if err != nil || final == "" {
		return result, err
	}
	if err := s.checkFinalName(final); err != nil {
		return nil, err
	}

	if err := s.fs.WriteFile(final, content, 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", filepath.Base(final))
	}
	result.Path = final

	s.logger.Info().Str("target", final).Int("bytes", len(content)).Msg("Content saved")
	return result, nil
}

// checkFinalName rejects a resolved destination whose base name is reserved.
// Top-level entries never carry a prohibited stem, whatever name the
// collision handling settled on.
func (s *Store) checkFinalName(final string) error {
	name := filepath.Base(final)
	if s.rules.IsProhibited(types.Stem(name)) {
		return prohibited(name)
	}
	return nil
}

func prohibited(name string) error {
	return collision.ProhibitedError(name)
}
