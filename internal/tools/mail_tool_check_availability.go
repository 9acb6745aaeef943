package tools

import (
	"fmt"
	"strings"

	pub_models "github.com/baalimago/mai/pkg/models"
)

type CheckAvailabilityTool pub_models.Specification

var CheckAvailability = CheckAvailabilityTool{
	Name:        "check-availability",
	Description: "Check open calendar slots on a given day. Use before scheduling a meeting.",
	Inputs: &pub_models.InputSchema{
		Type:     "object",
		Required: []string{"day"},
		Properties: map[string]pub_models.ParameterObject{
			"day": {
				Type:        "string",
				Description: "The day to check, preferably as YYYY-MM-DD.",
			},
		},
	},
}

// Calendar lookup is a stub in this design. The slots are deterministic
// so that runs stay reproducible under test.
var availableSlots = []string{"9:00", "11:00", "14:00", "16:00"}

func (c CheckAvailabilityTool) Call(input pub_models.Input) (string, error) {
	day, ok := input["day"].(string)
	if !ok {
		return "", fmt.Errorf("day must be a string")
	}
	return fmt.Sprintf("Available times on %v: %v", formatDay(day), strings.Join(availableSlots, ", ")), nil
}

func (c CheckAvailabilityTool) Specification() pub_models.Specification {
	return pub_models.Specification(CheckAvailability)
}
