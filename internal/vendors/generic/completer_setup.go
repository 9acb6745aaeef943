package generic

import (
	"fmt"
	"net/http"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	pub_models "github.com/baalimago/mai/pkg/models"
)

func (c *Completer) Setup(apiKeyEnv, url, debugEnv string) error {
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return fmt.Errorf("environment variable '%v' not set", apiKeyEnv)
	}
	c.client = &http.Client{}
	c.limiter = RateLimiter{}
	c.apiKey = apiKey
	c.url = url

	if misc.Truthy(os.Getenv("DEBUG")) || misc.Truthy(os.Getenv(debugEnv)) {
		c.debug = true
	}

	return nil
}

// InternalRegisterTool adds the specification to the tools sent along
// on every tool-enabled completion request
func (c *Completer) InternalRegisterTool(spec pub_models.Specification) {
	c.tools = append(c.tools, ToolSuper{
		Type:     "function",
		Function: convertToGenericTool(spec),
	})
}

func (c *Completer) SetRateLimiter(rl RateLimiter) {
	c.limiter = rl
}

func convertToGenericTool(spec pub_models.Specification) Tool {
	return Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Inputs:      *spec.Inputs,
	}
}
