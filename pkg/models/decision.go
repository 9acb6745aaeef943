package models

// Decision is the triage outcome. The set is closed: anything else
// coming back from a model is a ClassificationError, never a fourth
// category.
type Decision string

const (
	DecisionRespond Decision = "respond"
	DecisionIgnore  Decision = "ignore"
	DecisionNotify  Decision = "notify"
)

// ParseDecision maps a raw model label onto the closed Decision set.
// The bool is false for anything outside it, casing included.
func ParseDecision(raw string) (Decision, bool) {
	switch Decision(raw) {
	case DecisionRespond, DecisionIgnore, DecisionNotify:
		return Decision(raw), true
	default:
		return "", false
	}
}

// Terminal is true for decisions which end the run without entering
// the response loop
func (d Decision) Terminal() bool {
	return d == DecisionIgnore || d == DecisionNotify
}
