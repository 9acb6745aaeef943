package tools

import (
	pub_models "github.com/baalimago/mai/pkg/models"
)

type DoneTool pub_models.Specification

var Done = DoneTool{
	Name:        "Done",
	Description: "Signal that the email has been fully handled. Call this exactly once, as the final action.",
	Inputs: &pub_models.InputSchema{
		Type:     "object",
		Required: []string{"done"},
		Properties: map[string]pub_models.ParameterObject{
			"done": {
				Type:        "boolean",
				Description: "True if the email was handled, false if handling was abandoned.",
			},
		},
	},
}

// Call acknowledges the terminal marker. The output is recorded for the
// audit trail only. The loop terminates on the tool's name, so the flag
// is informational either way.
func (d DoneTool) Call(input pub_models.Input) (string, error) {
	if done, ok := input["done"].(bool); ok && !done {
		return "Marked done, completion flag false", nil
	}
	return "Marked done", nil
}

func (d DoneTool) Specification() pub_models.Specification {
	return pub_models.Specification(Done)
}
