package types

import (
	"errors"
	"io"
	"io/fs"
	"strings"
	"time"
)

// FS is the filesystem interface required for promptpaste operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
}

// Prompter asks the user a single question and returns one line of response.
type Prompter interface {
	Ask(message string) (string, error)
}

// PromptFunc adapts an ordinary function to the Prompter interface.
type PromptFunc func(message string) (string, error)

// Ask calls f(message).
func (f PromptFunc) Ask(message string) (string, error) {
	return f(message)
}

// AskLine asks p and treats exhausted input as an empty answer, which every
// caller reads as "cancel".
func AskLine(p Prompter, message string) (string, error) {
	response, err := p.Ask(message)
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	return response, err
}

// Confirm asks a yes/no question. Only "y", in any case and surrounded by
// any whitespace, counts as yes.
func Confirm(p Prompter, message string) (bool, error) {
	response, err := AskLine(p, message)
	if err != nil {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(response)) == "y", nil
}
