package models

import (
	"fmt"
	"strings"
)

// Email is the inbound record which mai triages. It's treated as
// immutable: every stage reads it, nothing rewrites it.
type Email struct {
	Author     string `json:"author"`
	Recipient  string `json:"recipient"`
	Subject    string `json:"subject"`
	ThreadBody string `json:"thread_body"`
}

// String renders the email the way it's presented to the model inside
// prompts. Keep this stable, the prompts are calibrated around it.
func (e Email) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %v\n", e.Author))
	sb.WriteString(fmt.Sprintf("To: %v\n", e.Recipient))
	sb.WriteString(fmt.Sprintf("Subject: %v\n", e.Subject))
	sb.WriteString("\n")
	sb.WriteString(e.ThreadBody)
	return sb.String()
}

// Preview returns the subject truncated for list views
func (e Email) Preview(maxRunes int) string {
	runes := []rune(e.Subject)
	if len(runes) <= maxRunes {
		return e.Subject
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}
