package respond_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/baalimago/mai/internal/policy"
	"github.com/baalimago/mai/internal/respond"
	"github.com/baalimago/mai/internal/thread"
	"github.com/baalimago/mai/internal/tools"
	"github.com/baalimago/mai/internal/vendors"
	pub_models "github.com/baalimago/mai/pkg/models"
)

func testEmail() pub_models.Email {
	return pub_models.Email{
		Author:     "alice@example.com",
		Recipient:  "me@example.com",
		Subject:    "quick question",
		ThreadBody: "when are you free on thursday?",
	}
}

func newResponder(mock *vendors.Mock, store *thread.Store) *respond.Responder {
	r := respond.New(mock, tools.Defaults(), store, policy.Default())
	r.Out = nil
	return r
}

func call(id, name string, inputs pub_models.Input) pub_models.Call {
	return pub_models.Call{ID: id, Name: name, Type: "function", Inputs: &inputs}
}

func assistantTurn(calls ...pub_models.Call) pub_models.Message {
	return pub_models.Message{Role: "assistant", ToolCalls: calls}
}

func doneCall(id string) pub_models.Call {
	return call(id, "Done", pub_models.Input{"done": true})
}

func sendEmailCall(id string) pub_models.Call {
	return call(id, "send-email", pub_models.Input{
		"recipient": "alice@example.com",
		"subject":   "Re: quick question",
		"body":      "Thursday at 9:00 works.",
	})
}

// toolContents returns the contents of all tool role messages, in order
func toolContents(run *thread.Run) []string {
	var out []string
	for _, msg := range run.Chat.MessagesOfRole("tool") {
		out = append(out, msg.Content)
	}
	return out
}

func TestStart_RunsUntilDone(t *testing.T) {
	mock := &vendors.Mock{Script: []pub_models.Message{
		assistantTurn(call("call_1", "check-availability", pub_models.Input{"day": "2025-05-01"})),
		assistantTurn(sendEmailCall("call_2")),
		assistantTurn(doneCall("call_3")),
	}}
	r := newResponder(mock, nil)
	run := thread.NewRun(testEmail(), pub_models.DecisionRespond, "direct question")

	if err := r.Start(context.Background(), &run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Phase != pub_models.PhaseDone {
		t.Errorf("phase = %v, want done", run.Phase)
	}

	msgs := run.Chat.Messages
	if msgs[0].Role != "system" || msgs[1].Role != "user" {
		t.Fatalf("conversation should open with system then user, got %v %v", msgs[0].Role, msgs[1].Role)
	}
	if !strings.Contains(msgs[1].Content, "Respond to the email:") {
		t.Errorf("seed instruction missing, got %q", msgs[1].Content)
	}
	if !strings.Contains(msgs[1].Content, "alice@example.com") {
		t.Errorf("seed should carry the formatted email, got %q", msgs[1].Content)
	}

	// One tool message per call, interleaved with the assistant turns
	wantRoles := []string{"system", "user", "assistant", "tool", "assistant", "tool", "assistant", "tool"}
	if len(msgs) != len(wantRoles) {
		t.Fatalf("got %v messages, want %v", len(msgs), len(wantRoles))
	}
	for i, want := range wantRoles {
		if msgs[i].Role != want {
			t.Errorf("message %v role = %v, want %v", i, msgs[i].Role, want)
		}
	}

	// The send-email result must precede the terminal turn
	sendIdx, doneIdx := -1, -1
	for i, msg := range msgs {
		if msg.Role != "tool" {
			continue
		}
		if strings.Contains(msg.Content, "Email sent to") {
			sendIdx = i
		}
		if strings.Contains(msg.Content, "Marked done") {
			doneIdx = i
		}
	}
	if sendIdx == -1 || doneIdx == -1 || sendIdx >= doneIdx {
		t.Errorf("send-email result (idx %v) should precede the Done result (idx %v)", sendIdx, doneIdx)
	}

	// Tool messages carry the originating call IDs
	if msgs[3].ToolCallID != "call_1" || msgs[5].ToolCallID != "call_2" || msgs[7].ToolCallID != "call_3" {
		t.Errorf("tool call IDs not carried over: %v %v %v", msgs[3].ToolCallID, msgs[5].ToolCallID, msgs[7].ToolCallID)
	}
}

func TestStart_DoneOnlyFirstTurnIsValid(t *testing.T) {
	mock := &vendors.Mock{Script: []pub_models.Message{
		assistantTurn(doneCall("call_1")),
	}}
	r := newResponder(mock, nil)
	run := thread.NewRun(testEmail(), pub_models.DecisionRespond, "")

	if err := r.Start(context.Background(), &run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Phase != pub_models.PhaseDone {
		t.Errorf("phase = %v, want done", run.Phase)
	}
	if run.ToolCallsUsed != 1 {
		t.Errorf("tool calls used = %v, want 1", run.ToolCallsUsed)
	}
	if got := len(run.Chat.Messages); got != 4 {
		t.Errorf("got %v messages, want system, user, assistant, tool", got)
	}
}

func TestStart_DoneAlongsideOthersExecutesWholeTurn(t *testing.T) {
	mock := &vendors.Mock{Script: []pub_models.Message{
		assistantTurn(
			sendEmailCall("call_1"),
			doneCall("call_2"),
			call("call_3", "check-availability", pub_models.Input{"day": "2025-05-02"}),
		),
	}}
	r := newResponder(mock, nil)
	run := thread.NewRun(testEmail(), pub_models.DecisionRespond, "")

	if err := r.Start(context.Background(), &run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Phase != pub_models.PhaseDone {
		t.Errorf("phase = %v, want done", run.Phase)
	}
	outs := toolContents(&run)
	if len(outs) != 3 {
		t.Fatalf("every call of the terminal turn should be recorded, got %v results", len(outs))
	}
	if !strings.Contains(outs[0], "Email sent to") {
		t.Errorf("result 0 = %q, want send-email confirmation", outs[0])
	}
	if !strings.Contains(outs[1], "Marked done") {
		t.Errorf("result 1 = %q, want Done acknowledgement", outs[1])
	}
	if !strings.Contains(outs[2], "Available times") {
		t.Errorf("result 2 = %q, want availability listing", outs[2])
	}
	if run.ToolCallsUsed != 3 {
		t.Errorf("tool calls used = %v, want 3", run.ToolCallsUsed)
	}
}

func TestStart_UnknownToolAbortsRun(t *testing.T) {
	mock := &vendors.Mock{Script: []pub_models.Message{
		assistantTurn(
			call("call_1", "make-coffee", pub_models.Input{"strength": "double"}),
			sendEmailCall("call_2"),
		),
	}}
	r := newResponder(mock, nil)
	run := thread.NewRun(testEmail(), pub_models.DecisionRespond, "")

	err := r.Start(context.Background(), &run)
	if err == nil {
		t.Fatal("expected dispatch violation")
	}
	var unknownErr *pub_models.UnknownToolError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownToolError, got %T: %v", err, err)
	}
	if unknownErr.Tool != "make-coffee" {
		t.Errorf("tool = %q, want make-coffee", unknownErr.Tool)
	}
	if !strings.Contains(err.Error(), "make-coffee") {
		t.Errorf("error should name the tool, got: %v", err)
	}
	// Nothing after the faulting call may execute
	for _, out := range toolContents(&run) {
		if strings.Contains(out, "Email sent to") {
			t.Error("calls after the faulting one must not execute")
		}
	}
}

func TestStart_TurnWithoutToolCallsIsProtocolViolation(t *testing.T) {
	mock := &vendors.Mock{Script: []pub_models.Message{
		{Role: "assistant", Content: "I believe this email warrants a polite reply."},
	}}
	r := newResponder(mock, nil)
	run := thread.NewRun(testEmail(), pub_models.DecisionRespond, "")

	err := r.Start(context.Background(), &run)
	var protoErr *pub_models.ProtocolError
	if !errors.As(err, &protoErr) {
		t.Fatalf("expected ProtocolError, got %T: %v", err, err)
	}
	if protoErr.Turn != 1 {
		t.Errorf("turn = %v, want 1", protoErr.Turn)
	}
}

func TestStart_ToolExecutionErrorNamesToolAndCall(t *testing.T) {
	mock := &vendors.Mock{Script: []pub_models.Message{
		// Missing required fields trips schema validation at dispatch
		assistantTurn(call("call_9", "send-email", pub_models.Input{"recipient": "bob@example.com"})),
	}}
	r := newResponder(mock, nil)
	run := thread.NewRun(testEmail(), pub_models.DecisionRespond, "")

	err := r.Start(context.Background(), &run)
	var execErr *pub_models.ToolExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ToolExecutionError, got %T: %v", err, err)
	}
	if execErr.Tool != "send-email" || execErr.CallID != "call_9" {
		t.Errorf("error should name tool and call, got %+v", execErr)
	}
}

func TestStart_MaxToolCallsAbortsRun(t *testing.T) {
	avail := func(id string) pub_models.Message {
		return assistantTurn(call(id, "check-availability", pub_models.Input{"day": "2025-05-01"}))
	}
	mock := &vendors.Mock{Script: []pub_models.Message{
		avail("call_1"), avail("call_2"), avail("call_3"),
	}}
	r := newResponder(mock, nil)
	r.MaxToolCalls = 2
	run := thread.NewRun(testEmail(), pub_models.DecisionRespond, "")

	err := r.Start(context.Background(), &run)
	if err == nil || !strings.Contains(err.Error(), "max tool calls") {
		t.Fatalf("expected max tool calls abort, got: %v", err)
	}
	if run.ToolCallsUsed != 2 {
		t.Errorf("tool calls used = %v, want 2", run.ToolCallsUsed)
	}
}

func TestStart_RefusesNonRespondDecision(t *testing.T) {
	r := newResponder(&vendors.Mock{}, nil)
	run := thread.NewRun(testEmail(), pub_models.DecisionIgnore, "newsletter")

	if err := r.Start(context.Background(), &run); err == nil {
		t.Fatal("expected error for non-respond decision")
	}
	if got := len(run.Chat.Messages); got != 0 {
		t.Errorf("conversation should stay untouched, got %v messages", got)
	}
}

func TestStart_ToolResultsCarryRemainingBudget(t *testing.T) {
	mock := &vendors.Mock{Script: []pub_models.Message{
		assistantTurn(doneCall("call_1")),
	}}
	r := newResponder(mock, nil)
	r.MaxToolCalls = 10
	run := thread.NewRun(testEmail(), pub_models.DecisionRespond, "")

	if err := r.Start(context.Background(), &run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outs := toolContents(&run)
	if len(outs) != 1 || !strings.Contains(outs[0], "[ Tool calls remaining: 9 ]") {
		t.Errorf("expected remaining budget prefix, got %v", outs)
	}
}

func TestStart_PatchesScriptedCallsForTheWire(t *testing.T) {
	mock := &vendors.Mock{Script: []pub_models.Message{
		assistantTurn(doneCall("call_1")),
	}}
	r := newResponder(mock, nil)
	run := thread.NewRun(testEmail(), pub_models.DecisionRespond, "")

	if err := r.Start(context.Background(), &run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg, _, err := run.Chat.LastOfRole("assistant")
	if err != nil {
		t.Fatalf("no assistant turn recorded: %v", err)
	}
	got := msg.ToolCalls[0]
	if got.Function.Name != "Done" {
		t.Errorf("function name = %q, want Done", got.Function.Name)
	}
	if got.Function.Arguments == "" {
		t.Error("recorded calls should carry padded wire arguments, a resumed run resends them")
	}
}
