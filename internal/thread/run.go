// Package thread persists run state keyed by thread ID, so that a run
// suspended on a human question can be resumed in a later invocation.
package thread

import (
	"fmt"
	"strings"
	"time"

	"github.com/baalimago/mai/internal/utils"
	pub_models "github.com/baalimago/mai/pkg/models"
	"github.com/google/uuid"
)

// Run is the complete state of one email's handling: the immutable
// email, the triage verdict, and the conversation built up by the
// response loop. It holds everything needed to pick up where a
// suspended run left off.
type Run struct {
	ID        string              `json:"id"`
	Email     pub_models.Email    `json:"email"`
	Decision  pub_models.Decision `json:"decision,omitempty"`
	Reasoning string              `json:"reasoning,omitempty"`
	Chat      pub_models.Chat     `json:"chat"`
	Phase     pub_models.Phase    `json:"phase"`

	// PendingCallID is the ask-user tool call which suspended the run.
	// The answer given on resume becomes that call's tool result.
	PendingCallID   string `json:"pending_call_id,omitempty"`
	PendingQuestion string `json:"pending_question,omitempty"`
	// PendingCalls are the not yet executed calls of the suspended
	// turn, picked up right after the resume answer lands.
	PendingCalls []pub_models.Call `json:"pending_calls,omitempty"`

	ToolCallsUsed int       `json:"tool_calls_used"`
	Created       time.Time `json:"created"`
	Updated       time.Time `json:"updated"`
}

// NewRun seeds run state for a freshly triaged email
func NewRun(email pub_models.Email, decision pub_models.Decision, reasoning string) Run {
	now := time.Now()
	id := NewRunID(email.Subject)
	return Run{
		ID:        id,
		Email:     email,
		Decision:  decision,
		Reasoning: reasoning,
		Chat:      pub_models.Chat{ID: id, Created: now},
		Phase:     pub_models.PhaseTriaged,
		Created:   now,
		Updated:   now,
	}
}

// Append adds messages to the run's conversation. The conversation is
// append only, resume correctness depends on the order staying intact.
func (r *Run) Append(msgs ...pub_models.Message) {
	r.Chat.Messages = append(r.Chat.Messages, msgs...)
}

// NewRunID derives a readable thread ID from the email subject: the
// first few subject tokens joined by underscores, suffixed with a uuid
// fragment so that repeated subjects don't collide.
func NewRunID(subject string) string {
	frag := uuid.New().String()[:8]
	tokens := utils.GetFirstTokens(strings.Split(subject, " "), 5)
	if len(tokens) == 0 {
		return frag
	}
	slug := strings.Join(tokens, "_")
	slug = strings.ReplaceAll(slug, "/", ".")
	slug = strings.ReplaceAll(slug, "\\", ".")
	return fmt.Sprintf("%v_%v", slug, frag)
}
