package confirmations

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/promptpaste/pkg/types"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Ask(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("r\r\n\nlast"), out)

	got, err := c.Ask("Choose: ")
	require.NoError(t, err)
	assert.Equal(t, "r", got)

	got, err = c.Ask("Again: ")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = c.Ask("Final: ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = c.Ask("Gone: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Choose: Again: Final: Gone: \n", out.String())
}

func TestConsole_ConfirmAtEOF(t *testing.T) {
	c := NewConsole(strings.NewReader(""), io.Discard)

	ok, err := types.Confirm(c, "Proceed? [y/N] ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConsole_ReadError(t *testing.T) {
	boom := errors.New("boom")
	c := NewConsole(failingReader{err: boom}, io.Discard)

	_, err := c.Ask("? ")
	assert.ErrorIs(t, err, boom)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestNew_FallsBackToConsole(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	for _, style := range []string{StylePlain, StyleForm, ""} {
		t.Run(style, func(t *testing.T) {
			_, ok := New(style, f, io.Discard).(*Console)
			assert.True(t, ok, "non-terminal input should use the console prompter")
		})
	}
}

func TestFormError(t *testing.T) {
	assert.ErrorIs(t, formError(huh.ErrUserAborted), io.EOF)

	other := errors.New("render failed")
	assert.Equal(t, other, formError(other))
}

func TestForm_Accessible(t *testing.T) {
	f := NewForm(strings.NewReader(""), io.Discard).Accessible(true)
	assert.True(t, f.accessible)
}
