package tools

import (
	"fmt"

	pub_models "github.com/baalimago/mai/pkg/models"
)

// validateInputs checks the input against the tool's schema before the
// executor runs: every required field must be present, and present fields
// must match their declared JSON type. Numbers arrive as float64 since
// that's what encoding/json hands over for any numeric literal.
func validateInputs(spec pub_models.Specification, input pub_models.Input) error {
	if spec.Inputs == nil {
		return nil
	}
	var missingFields []string
	for _, requiredField := range spec.Inputs.Required {
		if _, ok := input[requiredField]; !ok {
			missingFields = append(missingFields, requiredField)
		}
	}
	if len(missingFields) > 0 {
		return NewValidationError(missingFields)
	}
	for field, param := range spec.Inputs.Properties {
		val, ok := input[field]
		if !ok || val == nil {
			continue
		}
		if err := checkType(field, param.Type, val); err != nil {
			return err
		}
	}
	return nil
}

func checkType(field, jsonType string, val any) error {
	switch jsonType {
	case "string":
		if _, ok := val.(string); !ok {
			return fmt.Errorf("%v must be a string", field)
		}
	case "number", "integer":
		if _, ok := val.(float64); !ok {
			return fmt.Errorf("%v must be a number", field)
		}
	case "boolean":
		if _, ok := val.(bool); !ok {
			return fmt.Errorf("%v must be a boolean", field)
		}
	case "array":
		if _, ok := val.([]any); !ok {
			return fmt.Errorf("%v must be an array", field)
		}
	case "object":
		if _, ok := val.(map[string]any); !ok {
			return fmt.Errorf("%v must be an object", field)
		}
	}
	return nil
}
