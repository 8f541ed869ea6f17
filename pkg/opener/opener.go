// Package opener opens a path with the operating system's default
// application, falling back to $EDITOR.
package opener

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultEditor is used when $EDITOR is unset
const DefaultEditor = "vi"

// Runner executes a command and waits for it
type Runner func(name string, args ...string) error

// Opener opens paths
type Opener struct {
	goos   string
	run    Runner
	editor func() string
	logger zerolog.Logger
}

// New creates an Opener for the running platform
func New() *Opener {
	return NewWithRunner(runtime.GOOS, execRunner, editorFromEnv)
}

// NewWithRunner creates an Opener for goos that runs commands through run
// and picks the fallback editor with editor
func NewWithRunner(goos string, run Runner, editor func() string) *Opener {
	return &Opener{
		goos:   goos,
		run:    run,
		editor: editor,
		logger: logging.GetLogger("opener"),
	}
}

// Command returns the platform opener invocation for path
func (o *Opener) Command(path string) (string, []string) {
	switch o.goos {
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open opens path. On unix-like systems a failing opener falls back to
// the editor; on Windows the shell handles it and there is no fallback.
func (o *Opener) Open(path string) error {
	name, args := o.Command(path)
	err := o.run(name, args...)
	if err == nil {
		return nil
	}
	if o.goos == "windows" {
		return errors.Wrapf(err, errors.ErrOpen, "failed to open %s", path)
	}

	editor := o.editor()
	o.logger.Debug().Err(err).Str("opener", name).Str("editor", editor).Msg("Opener failed, falling back to editor")
	if err := o.run(editor, path); err != nil {
		return errors.Wrapf(err, errors.ErrOpen, "failed to open %s with %s", path, editor)
	}
	return nil
}

func editorFromEnv() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return DefaultEditor
}

func execRunner(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
