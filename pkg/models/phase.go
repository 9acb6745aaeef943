package models

// Phase enumerates where a run sits in its lifecycle. The response loop
// only ever moves AwaitingModel -> AwaitingTools -> AwaitingModel until
// it lands in Done, or parks in AwaitingUser when a run suspends on a
// human question.
type Phase string

const (
	PhaseTriaged       Phase = "triaged"
	PhaseAwaitingModel Phase = "awaiting_model"
	PhaseAwaitingTools Phase = "awaiting_tools"
	PhaseAwaitingUser  Phase = "awaiting_user"
	PhaseDone          Phase = "done"
)

// Active is true while the run still wants another model turn
func (p Phase) Active() bool {
	return p == PhaseAwaitingModel || p == PhaseAwaitingTools
}

// Suspended is true when the run is parked waiting for a human answer
func (p Phase) Suspended() bool {
	return p == PhaseAwaitingUser
}
