package confirmations

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// Form asks each question as a single-field huh form
type Form struct {
	in         io.Reader
	out        io.Writer
	accessible bool
}

// NewForm creates a form prompter reading keys from in and drawing on out
func NewForm(in io.Reader, out io.Writer) *Form {
	return &Form{in: in, out: out}
}

// Accessible switches to huh's line-based accessible mode
func (f *Form) Accessible(on bool) *Form {
	f.accessible = on
	return f
}

// Ask shows message as the input title. Aborting the form (ctrl+c or esc)
// reads as end of input.
func (f *Form) Ask(message string) (string, error) {
	var answer string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(strings.TrimSpace(message)).
				Value(&answer),
		),
	).
		WithShowHelp(false).
		WithInput(f.in).
		WithOutput(f.out).
		WithAccessible(f.accessible)

	if err := form.Run(); err != nil {
		return "", formError(err)
	}
	return answer, nil
}

func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return io.EOF
	}
	return err
}
