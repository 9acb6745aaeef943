package tools

import (
	"errors"
	"fmt"

	pub_models "github.com/baalimago/mai/pkg/models"
)

// ErrAwaitUser signals that a run wants human input before it can
// continue. It is a suspension marker, not a failure: the response loop
// checkpoints the run and hands the question to the caller.
var ErrAwaitUser = errors.New("awaiting user input")

type AskUserTool pub_models.Specification

var AskUser = AskUserTool{
	Name:        "ask-user",
	Description: "Ask the user a clarifying question. The run pauses until they answer, and the answer arrives as this call's tool result.",
	Inputs: &pub_models.InputSchema{
		Type:     "object",
		Required: []string{"question"},
		Properties: map[string]pub_models.ParameterObject{
			"question": {
				Type:        "string",
				Description: "The question to put to the user.",
			},
		},
	},
}

func (a AskUserTool) Call(input pub_models.Input) (string, error) {
	if _, ok := input["question"].(string); !ok {
		return "", fmt.Errorf("question must be a string")
	}
	return "", ErrAwaitUser
}

func (a AskUserTool) Specification() pub_models.Specification {
	return pub_models.Specification(AskUser)
}
