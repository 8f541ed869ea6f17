package types_test

import (
	"errors"
	"io"
	"testing"

	"github.com/arthur-debert/promptpaste/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestAskLine(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		want     string
		wantErr  bool
	}{
		{name: "answer passes through", response: "y", want: "y"},
		{name: "eof is an empty answer", err: io.EOF, want: ""},
		{name: "other errors propagate", err: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var asked string
			p := types.PromptFunc(func(message string) (string, error) {
				asked = message
				return tt.response, tt.err
			})

			got, err := types.AskLine(p, "question? ")
			assert.Equal(t, "question? ", asked)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		response string
		want     bool
	}{
		{"y", true},
		{"Y", true},
		{"  y \n", true},
		{"yes", false},
		{"n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.response, func(t *testing.T) {
			p := types.PromptFunc(func(string) (string, error) { return tt.response, nil })
			got, err := types.Confirm(p, "ok? ")
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	eof := types.PromptFunc(func(string) (string, error) { return "", io.EOF })
	got, err := types.Confirm(eof, "ok? ")
	assert.NoError(t, err)
	assert.False(t, got)
}
