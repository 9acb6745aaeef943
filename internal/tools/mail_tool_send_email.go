package tools

import (
	"fmt"

	pub_models "github.com/baalimago/mai/pkg/models"
)

type SendEmailTool pub_models.Specification

var SendEmail = SendEmailTool{
	Name:        "send-email",
	Description: "Send an email reply to the given recipient. Use this to answer the email under triage.",
	Inputs: &pub_models.InputSchema{
		Type:     "object",
		Required: []string{"recipient", "subject", "body"},
		Properties: map[string]pub_models.ParameterObject{
			"recipient": {
				Type:        "string",
				Description: "Email address of the recipient.",
			},
			"subject": {
				Type:        "string",
				Description: "Subject line of the outgoing email.",
			},
			"body": {
				Type:        "string",
				Description: "Full body of the outgoing email.",
			},
		},
	},
}

// Call confirms the send. Delivery is a stub in this design, the
// confirmation text is what the model consumes to decide its next step.
func (s SendEmailTool) Call(input pub_models.Input) (string, error) {
	recipient, ok := input["recipient"].(string)
	if !ok {
		return "", fmt.Errorf("recipient must be a string")
	}
	subject, ok := input["subject"].(string)
	if !ok {
		return "", fmt.Errorf("subject must be a string")
	}
	if _, ok := input["body"].(string); !ok {
		return "", fmt.Errorf("body must be a string")
	}
	return fmt.Sprintf("Email sent to '%v' with subject '%v'", recipient, subject), nil
}

func (s SendEmailTool) Specification() pub_models.Specification {
	return pub_models.Specification(SendEmail)
}
