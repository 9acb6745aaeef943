package tools

import (
	"fmt"
	"slices"

	pub_models "github.com/baalimago/mai/pkg/models"
)

// LLMTool is one entry in the tool registry. The email assistant treats
// its registry as fixed: fully populated at construction, read-only after.
type LLMTool interface {
	// Call the tool with the given Input. Returns output from the tool or
	// an error if the executor failed.
	Call(pub_models.Input) (string, error)

	// Specification returns the schema which vendors translate into
	// their respective tool wire formats.
	Specification() pub_models.Specification
}

type ValidationError struct {
	fieldsMissing []string
}

func NewValidationError(fieldsMissing []string) error {
	// Sort for deterministic error print
	slices.Sort(fieldsMissing)
	return ValidationError{fieldsMissing: fieldsMissing}
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("validation error, fields missing: %v", v.fieldsMissing)
}
