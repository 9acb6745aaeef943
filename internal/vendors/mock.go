// Package vendors routes model selectors to their implementation and
// hosts the scripted mock used by tests and dry runs.
package vendors

import (
	"context"
	"fmt"

	pub_models "github.com/baalimago/mai/pkg/models"
	"github.com/google/uuid"
)

// Mock is a Completer which replays scripted turns, no network
// involved. Tests and the 'mock' model selector use it to keep runs
// deterministic.
type Mock struct {
	// Script is returned turn by turn from Complete
	Script []pub_models.Message
	// JSONAnswers is returned answer by answer from CompleteJSON
	JSONAnswers []string
	// Loop restarts exhausted scripts from the top instead of erroring,
	// used by the 'mock' model selector so sweeps over many files work
	Loop bool
	// Registered collects the tool specifications handed to the vendor
	Registered []pub_models.Specification

	completeCalls int
	jsonCalls     int
}

// Canned returns the Mock behind the 'mock' model selector: every email
// is classified notify, and a respond run immediately marks itself
// done. Useful for dry-running the plumbing without an API key.
func Canned() *Mock {
	input := pub_models.Input{"done": true}
	return &Mock{
		Loop: true,
		Script: []pub_models.Message{{
			Role: "assistant",
			ToolCalls: []pub_models.Call{{
				ID:     fmt.Sprintf("call_%v", uuid.New().String()[:8]),
				Name:   "Done",
				Type:   "function",
				Inputs: &input,
			}},
		}},
		JSONAnswers: []string{`{"decision": "notify", "reasoning": "the mock model cannot read email, a human should"}`},
	}
}

func (m *Mock) Setup() error { return nil }

func (m *Mock) Complete(ctx context.Context, chat pub_models.Chat) (pub_models.Message, error) {
	if err := ctx.Err(); err != nil {
		return pub_models.Message{}, err
	}
	if m.completeCalls >= len(m.Script) {
		if !m.Loop || len(m.Script) == 0 {
			return pub_models.Message{}, fmt.Errorf("mock script exhausted after %v turns", m.completeCalls)
		}
		m.completeCalls = 0
	}
	msg := m.Script[m.completeCalls]
	m.completeCalls++
	if msg.Role == "" {
		msg.Role = "assistant"
	}
	return msg, nil
}

func (m *Mock) CompleteJSON(ctx context.Context, chat pub_models.Chat) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.jsonCalls >= len(m.JSONAnswers) {
		if !m.Loop || len(m.JSONAnswers) == 0 {
			return "", fmt.Errorf("mock json script exhausted after %v answers", m.jsonCalls)
		}
		m.jsonCalls = 0
	}
	ans := m.JSONAnswers[m.jsonCalls]
	m.jsonCalls++
	return ans, nil
}

func (m *Mock) RegisterTool(spec pub_models.Specification) {
	m.Registered = append(m.Registered, spec)
}
