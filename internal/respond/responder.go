// Package respond drives the tool-calling loop for emails triaged as
// respond. Every assistant turn must carry at least one tool call, the
// calls are executed in emission order, and the run either terminates
// on the Done tool or suspends on ask-user.
package respond

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/mai/internal/models"
	"github.com/baalimago/mai/internal/policy"
	"github.com/baalimago/mai/internal/thread"
	"github.com/baalimago/mai/internal/tools"
	pub_models "github.com/baalimago/mai/pkg/models"
)

// DefaultMaxToolCalls caps the response loop so a stuck model can't
// burn tokens forever
const DefaultMaxToolCalls = 25

type Responder struct {
	Completer models.ToolCompleter
	Registry  *tools.Registry
	Store     *thread.Store
	Policy    *policy.Policy

	// MaxToolCalls aborts the run once exceeded
	MaxToolCalls int
	// ToolOutputRuneLimit truncates tool results fed back to the model,
	// 0 disables
	ToolOutputRuneLimit int
	// Out receives the transcript while the loop runs, nil silences it
	Out io.Writer
	Raw bool

	debug bool
}

// New returns a Responder with the production defaults. The store may
// be nil, in which case runs are held in memory only and resume must
// reuse the caller's run value.
func New(completer models.ToolCompleter, registry *tools.Registry, store *thread.Store, pol *policy.Policy) *Responder {
	return &Responder{
		Completer:    completer,
		Registry:     registry,
		Store:        store,
		Policy:       pol,
		MaxToolCalls: DefaultMaxToolCalls,
		Out:          os.Stdout,
		debug:        misc.Truthy(os.Getenv("DEBUG")),
	}
}

// Start seeds the conversation for a freshly triaged run and drives the
// loop until Done, suspension or a violation.
func (r *Responder) Start(ctx context.Context, run *thread.Run) error {
	if run.Decision != pub_models.DecisionRespond {
		return fmt.Errorf("refusing to respond to a run with decision '%v'", run.Decision)
	}
	if len(run.Chat.Messages) == 0 {
		run.Append(
			pub_models.Message{Role: "system", Content: r.Policy.RespondSystemPrompt()},
			pub_models.Message{Role: "user", Content: fmt.Sprintf("Respond to the email:\n\n%v", run.Email.String())},
		)
	}
	run.Phase = pub_models.PhaseAwaitingModel
	if err := r.save(run); err != nil {
		return err
	}
	return r.loop(ctx, run)
}

// Resume picks a suspended run back up. The answer substitutes the
// suspended ask-user call's return value, then any calls left over from
// that turn execute before the model is asked again.
func (r *Responder) Resume(ctx context.Context, run *thread.Run, answer string) error {
	if !run.Phase.Suspended() {
		return fmt.Errorf("run '%v' is not awaiting user input, phase: %v", run.ID, run.Phase)
	}
	if run.PendingCallID == "" {
		return fmt.Errorf("run '%v' has no pending call to answer", run.ID)
	}
	run.Append(pub_models.Message{
		Role:       "tool",
		Content:    answer,
		ToolCallID: run.PendingCallID,
	})
	r.printMessage(pub_models.Message{Role: "tool", Content: answer})
	remainder := run.PendingCalls
	run.PendingCallID = ""
	run.PendingQuestion = ""
	run.PendingCalls = nil

	if len(remainder) > 0 {
		if err := r.executeCalls(run, remainder); err != nil {
			return err
		}
	} else {
		run.Phase = pub_models.PhaseAwaitingModel
	}
	if err := r.save(run); err != nil {
		return err
	}
	return r.loop(ctx, run)
}

func (r *Responder) save(run *thread.Run) error {
	if r.Store == nil {
		return nil
	}
	if err := r.Store.Save(run); err != nil {
		return fmt.Errorf("failed to checkpoint run '%v': %w", run.ID, err)
	}
	return nil
}
