package pp

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/promptpaste/internal/version"
	"github.com/arthur-debert/promptpaste/pkg/config"
	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/filesystem"
	"github.com/arthur-debert/promptpaste/pkg/logging"
	"github.com/arthur-debert/promptpaste/pkg/opener"
	"github.com/arthur-debert/promptpaste/pkg/paths"
	"github.com/arthur-debert/promptpaste/pkg/store"
	"github.com/arthur-debert/promptpaste/pkg/types"
	"github.com/arthur-debert/promptpaste/pkg/ui"
	"github.com/arthur-debert/promptpaste/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Opener opens a directory for the user
type Opener interface {
	Open(path string) error
}

// Dependencies are the collaborators the commands use. Zero values are
// replaced with the real implementations.
type Dependencies struct {
	FS        types.FS
	Prompter  types.Prompter
	Clipboard Clipboard
	Opener    Opener
}

// ExitError ends the program with Code without printing anything more
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// app carries the state shared by every command of one invocation
type app struct {
	deps Dependencies

	verbosity   int
	printConfig bool
	copy        bool
	render      bool

	cfg   *config.Config
	store *store.Store
}

// NewRootCmd creates the pp command tree wired to the real system
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(Dependencies{})
}

// NewRootCmdWithDeps creates the pp command tree using deps
func NewRootCmdWithDeps(deps Dependencies) *cobra.Command {
	initTemplateFormatting()

	if deps.FS == nil {
		deps.FS = filesystem.NewOS()
	}
	if deps.Clipboard == nil {
		deps.Clipboard = systemClipboard{}
	}
	if deps.Opener == nil {
		deps.Opener = opener.New()
	}
	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:               "pp [entry]",
		Short:             MsgRootShort,
		Long:              MsgRootLong,
		Example:           MsgRootExample,
		Version:           version.Version,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: a.setup,
		RunE:              a.runShow,
		ValidArgsFunction: a.completeEntries,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVarP(&a.copy, "copy", "c", false, MsgFlagCopy)
	rootCmd.Flags().BoolVar(&a.render, "render", false, MsgFlagRender)
	rootCmd.Flags().BoolVar(&a.printConfig, "print-config", false, MsgFlagPrintConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetCompletionCommandGroupID("misc")
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf("pp version %s\n  commit: %s\n  built:  %s\n",
		version.Version, version.Commit, version.Date))

	rootCmd.AddCommand(a.newSaveCmd())
	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newRmCmd())
	rootCmd.AddCommand(a.newStoreCmd())

	return rootCmd
}

// Execute runs rootCmd and returns the process exit code. Errors are
// printed to the command's error stream as "Error: <message>".
func Execute(rootCmd *cobra.Command) int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	log.Debug().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Command failed")
	_ = renderer(rootCmd.ErrOrStderr(), ui.FormatAuto).RenderError(err)
	return 1
}

// setup loads configuration, configures logging and opens the store.
// It runs once per invocation, before any command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.store != nil {
		return nil
	}

	p, err := paths.New("")
	if err != nil {
		return err
	}
	cfg, err := config.Load(p.ConfigFilePath())
	if err != nil {
		return err
	}

	logging.SetupLogger(a.verbosity, cfg.Logging.File)
	log.Debug().Str("command", cmd.Name()).Str("config", p.ConfigFilePath()).Msg("Command started")

	storage, err := paths.New(cfg.Storage.Root)
	if err != nil {
		return err
	}

	prompter := a.deps.Prompter
	if prompter == nil {
		prompter = defaultPrompter(cmd, cfg.Prompt.Style)
	}

	a.cfg = cfg
	a.store = store.New(a.deps.FS, storage.StorageRoot(), cfg.Rules(), prompter, cmd.OutOrStdout())
	a.store.SetErrOutput(cmd.ErrOrStderr())
	log.Debug().Str("root", a.store.Root()).Msg("Store ready")
	return nil
}

// defaultPrompter asks on stderr so stdout only carries entry content
func defaultPrompter(cmd *cobra.Command, style string) types.Prompter {
	if in, ok := cmd.InOrStdin().(*os.File); ok {
		return confirmations.New(style, in, cmd.ErrOrStderr())
	}
	return confirmations.NewConsole(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// runShow prints the entry named by the only argument. An unknown name
// prints nothing and succeeds.
func (a *app) runShow(cmd *cobra.Command, args []string) error {
	if a.printConfig {
		out, err := a.cfg.ToTOML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	if len(args) == 0 {
		_ = cmd.Help()
		return &ExitError{Code: 1}
	}
	name := args[0]

	path, err := a.store.Find(name)
	if errors.IsErrorCode(err, errors.ErrNotFound) {
		log.Debug().Str("name", name).Msg("No such entry")
		return nil
	}
	if err != nil {
		return err
	}
	content, err := a.store.Read(name)
	if err != nil {
		return err
	}

	if a.copy {
		if err := a.deps.Clipboard.WriteAll(content); err != nil {
			return errors.Wrap(err, errors.ErrClipboard, MsgErrClipboardWrite)
		}
		return renderer(cmd.ErrOrStderr(), ui.FormatAuto).RenderMessage(fmt.Sprintf(MsgCopied, name))
	}

	if a.render && ui.IsMarkdown(path) {
		_, err = fmt.Fprint(cmd.OutOrStdout(), ui.NewMarkdownRenderer().Render(content, path))
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), content)
	return err
}

// completeEntries offers stored entry names for the first argument
func (a *app) completeEntries(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if err := a.setup(cmd, args); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names, err := a.store.Names()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var matches []string
	for _, name := range names {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// renderer returns a renderer for w. Renderer construction only fails for
// unknown formats, which callers never pass.
func renderer(w io.Writer, format ui.Format) ui.Renderer {
	r, err := ui.NewRenderer(format, w)
	if err != nil {
		r, _ = ui.NewRenderer(ui.FormatText, w)
	}
	return r
}
