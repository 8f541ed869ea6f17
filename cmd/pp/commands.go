package pp

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/promptpaste/pkg/collision"
	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/paths"
	"github.com/arthur-debert/promptpaste/pkg/scanner"
	"github.com/arthur-debert/promptpaste/pkg/store"
	"github.com/arthur-debert/promptpaste/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) newSaveCmd() *cobra.Command {
	var (
		policy        collision.Policy
		fromClipboard bool
	)

	cmd := &cobra.Command{
		Use:     "save <path>",
		Aliases: []string{"add"},
		Short:   MsgSaveShort,
		Long:    MsgSaveLong,
		Example: MsgSaveExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromClipboard {
				return a.saveClipboard(cmd, args[0], policy)
			}
			return a.save(cmd, args[0], policy)
		},
	}

	cmd.Flags().BoolVarP(&policy.AutoRename, "rename", "r", false, MsgFlagRename)
	cmd.Flags().BoolVarP(&policy.Overwrite, "overwrite", "o", false, MsgFlagOverwrite)
	cmd.Flags().StringVarP(&policy.NewName, "new-name", "n", "", MsgFlagNewName)
	cmd.Flags().BoolVarP(&fromClipboard, "clipboard", "b", false, MsgFlagClipboard)

	return cmd
}

func (a *app) save(cmd *cobra.Command, arg string, policy collision.Policy) error {
	source := paths.ExpandHome(arg)

	result, err := a.store.Save(source, policy)
	if err != nil {
		return a.saveError(cmd, source, err)
	}
	return a.reportSave(cmd, source, result)
}

func (a *app) saveClipboard(cmd *cobra.Command, name string, policy collision.Policy) error {
	text, err := a.deps.Clipboard.ReadAll()
	if err != nil {
		return errors.Wrap(err, errors.ErrClipboard, MsgErrClipboardRead)
	}

	result, err := a.store.SaveContent(name, []byte(text), policy)
	if err != nil {
		return a.saveError(cmd, name, err)
	}
	return a.reportSave(cmd, name, result)
}

// saveError maps store errors to what the user sees. A prohibited name is
// reported but is not a failure.
func (a *app) saveError(cmd *cobra.Command, source string, err error) error {
	switch errors.GetErrorCode(err) {
	case errors.ErrProhibitedName:
		return renderer(cmd.ErrOrStderr(), ui.FormatAuto).RenderError(err)
	case errors.ErrNotFound:
		return errors.Newf(errors.ErrNotFound, MsgErrSourceNotFound, source).WithDetail("path", source)
	}
	return err
}

func (a *app) reportSave(cmd *cobra.Command, source string, result *store.SaveResult) error {
	r := renderer(cmd.OutOrStdout(), ui.FormatAuto)
	var msgs []string

	switch result.Kind {
	case store.DecisionSkill:
		if result.Saved() {
			msgs = append(msgs, fmt.Sprintf(MsgImportedSkill, filepath.Base(source), result.Name()))
			if result.Skill != nil && result.Skill.Description != "" {
				msgs = append(msgs, fmt.Sprintf(MsgSkillDesc, result.Skill.Description))
			}
		}
	case store.DecisionMerge:
		report := result.Merge
		if report != nil && report.Changed() {
			msgs = append(msgs, fmt.Sprintf(MsgMerged, len(report.Merged), len(report.Conflicts)))
			if len(report.Conflicts) > 0 {
				msgs = append(msgs, MsgMergeReviewNote)
			}
		}
	case store.DecisionImport:
		if result.Import != nil && result.Import.Count() > 0 {
			msgs = append(msgs, fmt.Sprintf(MsgImportedFiles, result.Import.Count(), filepath.Base(source)))
			a.logStructure(result.Path)
		}
	}

	if result.Saved() {
		msgs = append(msgs, fmt.Sprintf(MsgSavedEntry, result.Name()))
	}
	for _, msg := range msgs {
		if err := r.RenderMessage(msg); err != nil {
			return err
		}
	}
	return nil
}

// logStructure records the top level of an imported folder
func (a *app) logStructure(folder string) {
	structure, err := scanner.New(a.deps.FS, a.store.Rules()).Structure(folder)
	if err != nil {
		log.Debug().Err(err).Str("folder", folder).Msg("Could not read imported folder")
		return
	}
	log.Info().
		Str("folder", folder).
		Strs("files", structure.Files).
		Strs("folders", structure.Folders).
		Msg("Imported folder")
}

func (a *app) newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
			}
			r, err := ui.NewRenderer(f, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			items, err := a.store.Preview(a.cfg.List.PreviewWidth)
			if err != nil {
				return err
			}
			log.Debug().Int("count", len(items)).Msg("Listing entries")
			return r.RenderListing(items)
		},
	}

	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func (a *app) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "rm <entry>",
		Short:             MsgRmShort,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeEntries,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.store.Remove(args[0]); err != nil {
				return err
			}
			return renderer(cmd.OutOrStdout(), ui.FormatAuto).RenderMessage(fmt.Sprintf(MsgRemovedEntry, args[0]))
		},
	}
}

func (a *app) newStoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "store",
		Short:   MsgStoreShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.EnsureRoot(); err != nil {
				return err
			}
			return a.deps.Opener.Open(a.store.Root())
		},
	}
}
