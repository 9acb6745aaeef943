package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/baalimago/mai/internal/thread"
	"github.com/baalimago/mai/internal/triage"
	"github.com/baalimago/mai/pkg/models"
)

// Result is the outward view of a run. Phase AwaitingUser means the run
// suspended, resume it with the answer to the question carried by the
// InterruptError.
type Result struct {
	ThreadID  string
	Decision  models.Decision
	Reasoning string
	Phase     models.Phase
	Chat      models.Chat
}

func resultFromRun(run *thread.Run) *Result {
	return &Result{
		ThreadID:  run.ID,
		Decision:  run.Decision,
		Reasoning: run.Reasoning,
		Phase:     run.Phase,
		Chat:      run.Chat,
	}
}

// Process triages the email and, on a respond verdict, drives the
// response loop until done. An empty threadID derives one from the
// subject. A suspension surfaces as *models.InterruptError, recover the
// partial state with Load.
func (a *Assistant) Process(ctx context.Context, email models.Email, threadID string) (*Result, error) {
	if a.responder == nil {
		return nil, errors.New("assistant is not set up, call Setup first")
	}
	verdict, err := triage.Classify(ctx, a.completer, a.pol, email)
	if err != nil {
		return nil, fmt.Errorf("failed to classify email: %w", err)
	}
	run := thread.NewRun(email, verdict.Decision, verdict.Reasoning)
	if threadID != "" {
		run.ID = threadID
		run.Chat.ID = threadID
	}
	if verdict.Decision.Terminal() {
		run.Phase = models.PhaseDone
		if err := a.store.Save(&run); err != nil {
			return nil, fmt.Errorf("failed to checkpoint run '%v': %w", run.ID, err)
		}
		return resultFromRun(&run), nil
	}
	if err := a.responder.Start(ctx, &run); err != nil {
		return nil, err
	}
	return resultFromRun(&run), nil
}

// Resume answers the pending question of a suspended run and drives the
// loop onward. Chained questions surface as fresh InterruptErrors.
func (a *Assistant) Resume(ctx context.Context, threadID, answer string) (*Result, error) {
	if a.responder == nil {
		return nil, errors.New("assistant is not set up, call Setup first")
	}
	run, err := a.store.Load(threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	if err := a.responder.Resume(ctx, &run, answer); err != nil {
		return nil, err
	}
	return resultFromRun(&run), nil
}

// Load returns the stored state of a run, suspended or finished.
func (a *Assistant) Load(threadID string) (*Result, error) {
	if a.store == nil {
		return nil, errors.New("assistant is not set up, call Setup first")
	}
	run, err := a.store.Load(threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	return resultFromRun(&run), nil
}
