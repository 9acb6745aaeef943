// Package triage classifies inbound email into respond, ignore or
// notify. It runs before any tools get involved and its verdict decides
// whether the response loop starts at all.
package triage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/mai/internal/models"
	"github.com/baalimago/mai/internal/policy"
	pub_models "github.com/baalimago/mai/pkg/models"
)

// Verdict is the triage outcome for one email
type Verdict struct {
	Decision  pub_models.Decision `json:"decision"`
	Reasoning string              `json:"reasoning"`
}

// rawVerdict mirrors the json object the model is instructed to answer with
type rawVerdict struct {
	Decision  string `json:"decision"`
	Reasoning string `json:"reasoning"`
}

// Classify asks the model to place the email in exactly one of the three
// decision categories. A label outside the closed set is a
// ClassificationError, there is no retry.
func Classify(ctx context.Context, c models.JSONCompleter, pol *policy.Policy, email pub_models.Email) (Verdict, error) {
	chat := pub_models.Chat{
		Messages: []pub_models.Message{
			{Role: "system", Content: pol.TriageSystemPrompt()},
			{Role: "user", Content: email.String()},
		},
	}
	answer, err := c.CompleteJSON(ctx, chat)
	if err != nil {
		return Verdict{}, fmt.Errorf("failed to complete triage: %w", err)
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.Okf("triage answer: %v\n", answer)
	}
	return Parse(answer)
}

// Parse validates a raw model answer against the closed decision set.
func Parse(answer string) (Verdict, error) {
	var raw rawVerdict
	if err := json.Unmarshal([]byte(stripFences(answer)), &raw); err != nil {
		return Verdict{}, fmt.Errorf("failed to decode triage answer '%v': %w", answer, err)
	}
	decision, ok := pub_models.ParseDecision(strings.TrimSpace(raw.Decision))
	if !ok {
		return Verdict{}, &pub_models.ClassificationError{Label: raw.Decision, Reasoning: raw.Reasoning}
	}
	return Verdict{Decision: decision, Reasoning: raw.Reasoning}, nil
}

// stripFences removes markdown code blocks, some models wrap their json
// in them regardless of response_format
func stripFences(answer string) string {
	answer = strings.TrimSpace(answer)
	answer = strings.TrimPrefix(answer, "```json")
	answer = strings.TrimPrefix(answer, "```")
	answer = strings.TrimSuffix(answer, "```")
	return strings.TrimSpace(answer)
}
