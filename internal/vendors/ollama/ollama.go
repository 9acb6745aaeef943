package ollama

import (
	"fmt"
	"os"
	"strings"

	"github.com/baalimago/mai/internal/vendors/generic"
	pub_models "github.com/baalimago/mai/pkg/models"
)

const ChatURL = "http://localhost:11434/v1/chat/completions"

var Default = Ollama{
	Model:       "llama3",
	Temperature: 1.0,
	TopP:        1.0,
	URL:         ChatURL,
}

type Ollama struct {
	generic.Completer
	Model       string  `json:"model"`
	MaxTokens   *int    `json:"max_tokens"` // Use a pointer to allow null value
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	URL         string  `json:"url"`
}

func (o *Ollama) Setup() error {
	// Local ollama doesn't check the key, but the completer requires one
	if os.Getenv("OLLAMA_API_KEY") == "" {
		os.Setenv("OLLAMA_API_KEY", "ollama")
	}
	if o.URL == "" {
		o.URL = ChatURL
	}
	err := o.Completer.Setup("OLLAMA_API_KEY", o.URL, "DEBUG_OLLAMA")
	if err != nil {
		return fmt.Errorf("failed to setup completer: %w", err)
	}
	// Model selectors arrive as 'ollama:<model>', the prefix is only
	// routing information
	o.Completer.Model = strings.TrimPrefix(o.Model, "ollama:")
	o.Completer.MaxTokens = o.MaxTokens
	o.Completer.Temperature = &o.Temperature
	o.Completer.TopP = &o.TopP
	toolChoice := "required"
	o.ToolChoice = &toolChoice
	return nil
}

func (o *Ollama) RegisterTool(spec pub_models.Specification) {
	o.InternalRegisterTool(spec)
}
