package models

import "fmt"

// The error types below are the contract violations a run can die on.
// They're distinct types so that callers can branch with errors.As
// instead of grepping error strings.

// ClassificationError means the triage model answered with a label
// outside the closed decision set. There is no retry: a model which
// can't hit a three-value enum shouldn't be trusted to act on email.
type ClassificationError struct {
	Label     string
	Reasoning string
}

func (c *ClassificationError) Error() string {
	return fmt.Sprintf("classification violation: label '%v' is not one of [respond, ignore, notify]", c.Label)
}

// ProtocolError means an assistant turn arrived without any tool call,
// even though tool use is mandatory on every turn of the response loop.
type ProtocolError struct {
	Turn int
}

func (p *ProtocolError) Error() string {
	return fmt.Sprintf("protocol violation: assistant turn %v contains no tool calls", p.Turn)
}

// UnknownToolError means the model called a tool which isn't in the
// registry. The faulting call is never executed.
type UnknownToolError struct {
	Tool   string
	CallID string
}

func (u *UnknownToolError) Error() string {
	return fmt.Sprintf("dispatch violation: unknown tool '%v' (call id: '%v')", u.Tool, u.CallID)
}

// ToolExecutionError means a registered tool's executor returned an
// error. The run is aborted, the cause is wrapped.
type ToolExecutionError struct {
	Tool   string
	CallID string
	Err    error
}

func (t *ToolExecutionError) Error() string {
	return fmt.Sprintf("tool '%v' failed (call id: '%v'): %v", t.Tool, t.CallID, t.Err)
}

func (t *ToolExecutionError) Unwrap() error {
	return t.Err
}

// InterruptError is not a failure. It signals that the run has suspended
// on a question to the human and has been checkpointed. Answer it with a
// resume carrying the same thread ID.
type InterruptError struct {
	ThreadID string
	CallID   string
	Question string
}

func (i *InterruptError) Error() string {
	return fmt.Sprintf("run '%v' awaits user input: %v", i.ThreadID, i.Question)
}
