package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/mai/internal/models"
	"github.com/baalimago/mai/internal/tools"
	"github.com/baalimago/mai/internal/vendors"
	"github.com/baalimago/mai/internal/vendors/ollama"
	"github.com/baalimago/mai/internal/vendors/openai"
	pub_models "github.com/baalimago/mai/pkg/models"
)

// CreateCompleter by checking the model for which vendor to use. The
// ollama check runs before gpt since selectors like 'ollama:gpt-oss'
// carry both markers.
func CreateCompleter(model string) (models.Completer, error) {
	var c models.Completer
	switch {
	case strings.Contains(model, "mock"):
		c = vendors.Canned()
	case strings.Contains(model, "ollama"):
		vendor := ollama.Default
		vendor.Model = model
		c = &vendor
	case strings.Contains(model, "gpt"):
		vendor := openai.GptDefault
		vendor.Model = model
		c = &vendor
	default:
		return nil, fmt.Errorf("failed to find completer for model: '%v'", model)
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.Okf("model: '%v' -> completer: %T\n", model, c)
	}
	if err := c.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup completer: %w", err)
	}
	return c, nil
}

// RegisterTools hands the registry's schemas to vendors which build
// their wire format ahead of time. The mock ignores them, which is fine.
func RegisterTools(c any, reg *tools.Registry) {
	registrant, ok := c.(models.ToolRegistrant)
	if !ok {
		return
	}
	for _, spec := range reg.Specifications() {
		if spec.Inputs == nil {
			spec.Inputs = &pub_models.InputSchema{}
		}
		spec.Inputs.Patch()
		if !spec.Inputs.IsOk() {
			ancli.Warnf("skipping tool '%v', its schema has array properties without items\n", spec.Name)
			continue
		}
		registrant.RegisterTool(spec)
	}
}
