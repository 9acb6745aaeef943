package respond

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/mai/internal/thread"
	"github.com/baalimago/mai/internal/tools"
	"github.com/baalimago/mai/internal/utils"
	pub_models "github.com/baalimago/mai/pkg/models"
)

// maxShortenedNewlines is how many lines of a tool result are shown in
// the transcript, the persisted conversation keeps the full output
const maxShortenedNewlines = 5

func (r *Responder) loop(ctx context.Context, run *thread.Run) error {
	for run.Phase.Active() {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch run.Phase {
		case pub_models.PhaseAwaitingModel:
			if err := r.stepModel(ctx, run); err != nil {
				return err
			}
		case pub_models.PhaseAwaitingTools:
			msg, _, err := run.Chat.LastOfRole("assistant")
			if err != nil {
				return fmt.Errorf("failed to find turn to execute: %w", err)
			}
			if err := r.executeCalls(run, msg.ToolCalls); err != nil {
				return err
			}
			if err := r.save(run); err != nil {
				return err
			}
		}
	}
	return nil
}

// stepModel asks for the next assistant turn and verifies the tool-use
// contract: a turn without tool calls is a protocol violation.
func (r *Responder) stepModel(ctx context.Context, run *thread.Run) error {
	msg, err := r.Completer.Complete(ctx, run.Chat)
	if err != nil {
		return fmt.Errorf("failed to complete assistant turn: %w", err)
	}
	if r.debug {
		ancli.Okf("assistant turn: %v\n", debug.IndentedJsonFmt(msg))
	}
	// Vendors reject resent tool calls with an empty function block, so
	// patch before the turn gets persisted
	for i := range msg.ToolCalls {
		msg.ToolCalls[i].Patch()
	}
	run.Append(msg)
	if len(msg.ToolCalls) == 0 {
		// Best effort persist so the faulting turn can be inspected
		_ = r.save(run)
		return &pub_models.ProtocolError{Turn: len(run.Chat.MessagesOfRole("assistant"))}
	}
	r.printAssistant(msg)
	run.Phase = pub_models.PhaseAwaitingTools
	return r.save(run)
}

// executeCalls runs a turn's calls strictly in emission order, records
// one tool message per call, and decides the next phase: Done when the
// batch contained the terminal marker, AwaitingUser when a call
// suspended, otherwise back to AwaitingModel.
func (r *Responder) executeCalls(run *thread.Run, calls []pub_models.Call) error {
	sawDone := false
	for i, call := range calls {
		if r.MaxToolCalls > 0 && run.ToolCallsUsed >= r.MaxToolCalls {
			_ = r.save(run)
			return fmt.Errorf("aborting run '%v': max tool calls (%v) exhausted", run.ID, r.MaxToolCalls)
		}
		out, err := r.Registry.Invoke(call)
		if err != nil {
			if errors.Is(err, tools.ErrAwaitUser) {
				return r.suspend(run, call, calls[i+1:])
			}
			_ = r.save(run)
			return err
		}
		run.ToolCallsUsed++
		if r.MaxToolCalls > 0 {
			out = fmt.Sprintf("[ Tool calls remaining: %v ] %v", r.MaxToolCalls-run.ToolCallsUsed, out)
		}
		out = limitToolOutput(out, r.ToolOutputRuneLimit)
		// Vendors reject tool results which carry no output at all
		if out == "" {
			out = "<EMPTY-RESPONSE>"
		}
		run.Append(pub_models.Message{
			Role:       "tool",
			Content:    out,
			ToolCallID: call.ID,
		})
		r.printTool(out)
		if call.Name == tools.Done.Name {
			sawDone = true
		}
	}
	if sawDone {
		run.Phase = pub_models.PhaseDone
	} else {
		run.Phase = pub_models.PhaseAwaitingModel
	}
	return nil
}

// suspend checkpoints the run while it waits for a human answer. The
// InterruptError is a signal, not a failure: callers branch on it with
// errors.As and later resume with the same thread ID.
func (r *Responder) suspend(run *thread.Run, call pub_models.Call, remainder []pub_models.Call) error {
	question := ""
	if call.Inputs != nil {
		if q, ok := (*call.Inputs)["question"].(string); ok {
			question = q
		}
	}
	run.Phase = pub_models.PhaseAwaitingUser
	run.PendingCallID = call.ID
	run.PendingQuestion = question
	run.PendingCalls = remainder
	if err := r.save(run); err != nil {
		return err
	}
	return &pub_models.InterruptError{
		ThreadID: run.ID,
		CallID:   call.ID,
		Question: question,
	}
}

func limitToolOutput(out string, limit int) string {
	if limit <= 0 {
		return out
	}
	amRunes := utf8.RuneCountInString(out)
	if amRunes <= limit {
		return out
	}
	return fmt.Sprintf("%v... and %v more characters. The tool's output has been truncated as it's too long.",
		string([]rune(out)[:limit]), amRunes-limit)
}

func (r *Responder) printAssistant(msg pub_models.Message) {
	if r.Out == nil {
		return
	}
	display := msg
	if display.Content == "" {
		pretty := make([]string, 0, len(msg.ToolCalls))
		for _, call := range msg.ToolCalls {
			pretty = append(pretty, call.PrettyPrint())
		}
		display.Content = strings.Join(pretty, "\n")
	}
	r.printMessage(display)
}

func (r *Responder) printTool(out string) {
	if r.Out == nil {
		return
	}
	r.printMessage(pub_models.Message{
		Role:    "tool",
		Content: utils.ShortenedOutput(out, maxShortenedNewlines),
	})
}

func (r *Responder) printMessage(msg pub_models.Message) {
	if r.Out == nil {
		return
	}
	if err := utils.AttemptPrettyPrint(r.Out, msg, msg.Role, r.Raw); err != nil {
		ancli.Warnf("failed to print %v message: %v\n", msg.Role, err)
	}
}
