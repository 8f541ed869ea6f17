// Package confirmations provides the interactive prompters behind
// types.Prompter: a plain line reader and a huh form.
package confirmations

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/promptpaste/pkg/types"
	"github.com/arthur-debert/promptpaste/pkg/ui"
)

// Style names accepted by New
const (
	StylePlain = "plain"
	StyleForm  = "form"
)

// Console asks questions on one writer and reads answers line by line
// from a reader
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console prompter. Prompts go to out, which is
// stderr in the CLI so stdout stays clean for entry content.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Ask writes message and returns the next input line without its line
// ending. A final line with no newline is returned normally; reading at
// end of input returns io.EOF.
func (c *Console) Ask(message string) (string, error) {
	if _, err := fmt.Fprint(c.out, message); err != nil {
		return "", err
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && line == "" {
		// keep the terminal tidy when input runs out mid-prompt
		_, _ = fmt.Fprintln(c.out)
		return "", io.EOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// New picks the prompter for style. Forms are only used when in is a
// terminal; everything else gets a Console.
func New(style string, in *os.File, out io.Writer) types.Prompter {
	if style == StyleForm && ui.IsTerminal(in) {
		return NewForm(in, out)
	}
	return NewConsole(in, out)
}
