package testutil

import (
	"io"
	"sync"
)

// ScriptedPrompter answers prompts from a fixed list of responses and
// records every question. Once the script runs out it behaves like a
// closed stdin and returns io.EOF.
type ScriptedPrompter struct {
	mu        sync.Mutex
	responses []string
	Questions []string
}

// NewScriptedPrompter creates a prompter that replays responses in order
func NewScriptedPrompter(responses ...string) *ScriptedPrompter {
	return &ScriptedPrompter{responses: responses}
}

// Ask implements types.Prompter
func (p *ScriptedPrompter) Ask(message string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Questions = append(p.Questions, message)
	if len(p.responses) == 0 {
		return "", io.EOF
	}
	response := p.responses[0]
	p.responses = p.responses[1:]
	return response, nil
}

// Asked returns the number of questions asked so far
func (p *ScriptedPrompter) Asked() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Questions)
}

// Remaining returns the number of unused responses
func (p *ScriptedPrompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.responses)
}
