package policy

import (
	"fmt"
	"strings"
)

// TriageSystemPrompt renders the classifier's system prompt. The model
// must answer with a JSON object carrying exactly one of the three
// decisions plus its reasoning. Anything else is a contract violation
// handled upstream.
func (p *Policy) TriageSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You triage incoming email for the user described below. Classify each email as exactly one of 'respond', 'ignore' or 'notify'.\n\n")
	sb.WriteString("Background: ")
	sb.WriteString(p.Background)
	sb.WriteString("\n\n")
	writeRules(&sb, "Respond when", p.Triage.RespondWhen)
	writeRules(&sb, "Ignore when", p.Triage.IgnoreWhen)
	writeRules(&sb, "Notify when", p.Triage.NotifyWhen)
	sb.WriteString("Answer with a json object: {\"decision\": \"respond|ignore|notify\", \"reasoning\": \"<one or two sentences>\"}")
	return sb.String()
}

// RespondSystemPrompt renders the response loop's system prompt: tool
// usage guidance first, then background, then the two preference blocks.
func (p *Policy) RespondSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You handle email on behalf of the user described below. You act only through the available tools and you must call at least one tool on every turn. When the email is fully handled, call 'Done'. If you cannot proceed without input from the user, call 'ask-user'.\n\n")
	sb.WriteString("Background: ")
	sb.WriteString(p.Background)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Response preferences:\n- tone: %v\n- sign off with: %v\n\n", p.Response.Tone, p.Response.SignOff)
	fmt.Fprintf(&sb, "Calendar preferences:\n- workday: %v to %v\n- default meeting length: %v minutes\n", p.Calendar.WorkdayStart, p.Calendar.WorkdayEnd, p.Calendar.DefaultMeetingMinutes)
	return sb.String()
}

func writeRules(sb *strings.Builder, header string, rules []string) {
	if len(rules) == 0 {
		return
	}
	sb.WriteString(header)
	sb.WriteString(":\n")
	for _, rule := range rules {
		fmt.Fprintf(sb, "- %v\n", rule)
	}
	sb.WriteString("\n")
}
