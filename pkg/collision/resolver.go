package collision

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/filesystem"
	"github.com/arthur-debert/promptpaste/pkg/logging"
	"github.com/arthur-debert/promptpaste/pkg/paths"
	"github.com/arthur-debert/promptpaste/pkg/types"
	"github.com/rs/zerolog"
)

// Interactive choices, matched case-insensitively
const (
	choiceCancel    = "n"
	choiceRename    = "r"
	choiceOverwrite = "o"
)

// Resolver decides the final destination of a save when the desired path
// may already be taken
type Resolver struct {
	fs       types.FS
	rules    types.Rules
	prompter types.Prompter
	out      io.Writer
	errOut   io.Writer
	logger   zerolog.Logger
}

// NewResolver creates a Resolver. Notices such as "Cancelled." go to out;
// a nil out discards them. Error notices share out until SetErrOutput is
// called.
func NewResolver(fsys types.FS, rules types.Rules, prompter types.Prompter, out io.Writer) *Resolver {
	if out == nil {
		out = io.Discard
	}
	return &Resolver{
		fs:       fsys,
		rules:    rules,
		prompter: prompter,
		out:      out,
		errOut:   out,
		logger:   logging.GetLogger("collision"),
	}
}

// SetErrOutput routes error notices, such as a typed name that is already
// taken, to w
func (r *Resolver) SetErrOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	r.errOut = w
}

// ProhibitedError reports that name is a reserved entry name
func ProhibitedError(name string) error {
	return errors.Newf(errors.ErrProhibitedName, "'%s' is a prohibited filename and cannot be saved.", name).
		WithDetail("name", name)
}

// SuggestName returns the single-shot rename candidate: stem_2.ext next to
// path
func SuggestName(path string) string {
	base := filepath.Base(path)
	ext := types.Ext(base)
	return filepath.Join(filepath.Dir(path), types.Stem(base)+"_2"+ext)
}

// Resolve returns the path to write to, or "" when the user cancelled.
// Cancelling is not an error.
func (r *Resolver) Resolve(target string, policy Policy) (string, error) {
	exists := filesystem.Exists(r.fs, target)
	log := r.logger.With().Str("target", target).Bool("exists", exists).Logger()

	if policy.AutoRename && exists {
		suggested := SuggestName(target)
		log.Debug().Str("final", suggested).Msg("Auto-renaming")
		return suggested, nil
	}

	if policy.Overwrite && exists {
		log.Debug().Msg("Overwriting")
		return target, nil
	}

	if policy.NewName != "" {
		return r.resolveExplicit(target, policy.NewName)
	}

	if !exists {
		return target, nil
	}
	return r.resolveInteractive(target)
}

func (r *Resolver) resolveExplicit(target, newName string) (string, error) {
	if err := paths.ValidateEntryName(newName); err != nil {
		return "", err
	}
	if r.rules.IsProhibited(types.Stem(newName)) {
		return "", ProhibitedError(newName)
	}

	candidate := filepath.Join(filepath.Dir(target), newName)
	if filesystem.Exists(r.fs, candidate) {
		return "", errors.Newf(errors.ErrNameConflict, "Name '%s' already exists in storage.", newName).
			WithDetail("name", newName).
			WithDetail("path", candidate)
	}

	r.logger.Debug().Str("target", target).Str("final", candidate).Msg("Using explicit name")
	return candidate, nil
}

func (r *Resolver) resolveInteractive(target string) (string, error) {
	candidate := target

	for filesystem.Exists(r.fs, candidate) {
		suggested := SuggestName(candidate)

		response, err := types.AskLine(r.prompter, collisionMessage(filepath.Base(candidate), filepath.Base(suggested)))
		if err != nil {
			return "", errors.Wrap(err, errors.ErrPrompt, "failed to read choice")
		}
		response = strings.TrimSpace(response)

		switch strings.ToLower(response) {
		case "", choiceCancel:
			fmt.Fprintln(r.out, "Cancelled.")
			r.logger.Info().Str("target", target).Msg("Save cancelled by user")
			return "", nil
		case choiceRename:
			candidate = suggested
			continue
		case choiceOverwrite:
			r.logger.Debug().Str("final", candidate).Msg("User chose overwrite")
			return candidate, nil
		}

		// Only the final element of a typed name is used
		typed := filepath.Base(response)
		if r.rules.IsProhibited(types.Stem(typed)) {
			fmt.Fprintf(r.errOut, "Error: '%s' is a prohibited filename and cannot be saved.\n", typed)
			continue
		}
		candidate = filepath.Join(filepath.Dir(candidate), typed)
		if filesystem.Exists(r.fs, candidate) {
			fmt.Fprintf(r.errOut, "Error: Name '%s' already exists in storage.\n", response)
		}
	}

	r.logger.Debug().Str("target", target).Str("final", candidate).Msg("Collision resolved")
	return candidate, nil
}

func collisionMessage(name, suggested string) string {
	return fmt.Sprintf("Entry '%s' already exists.\n"+
		"\n"+
		"Options:\n"+
		"  n/N - Cancel and exit\n"+
		"  r/R - Rename to suggested name: '%s'\n"+
		"  o/O - Overwrite existing file\n"+
		"  <type> - Enter your own name\n"+
		"\n"+
		"Your choice: ", name, suggested)
}
