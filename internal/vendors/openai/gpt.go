package openai

import (
	"fmt"

	"github.com/baalimago/mai/internal/vendors/generic"
	pub_models "github.com/baalimago/mai/pkg/models"
)

const ChatURL = "https://api.openai.com/v1/chat/completions"

var GptDefault = ChatGPT{
	Model:       "gpt-4.1-mini",
	Temperature: 1.0,
	TopP:        1.0,
	URL:         ChatURL,
}

type ChatGPT struct {
	generic.Completer
	Model       string  `json:"model"`
	MaxTokens   *int    `json:"max_tokens"` // Use a pointer to allow null value
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	URL         string  `json:"url"`
}

func (g *ChatGPT) Setup() error {
	if g.URL == "" {
		g.URL = ChatURL
	}
	err := g.Completer.Setup("OPENAI_API_KEY", g.URL, "DEBUG_OPENAI")
	if err != nil {
		return fmt.Errorf("failed to setup completer: %w", err)
	}
	// Sweeps fire one completion per file, so honor the vendor's token
	// budget headers between requests
	g.SetRateLimiter(generic.NewRateLimiter("x-ratelimit-remaining-tokens", "x-ratelimit-reset-tokens"))
	g.Completer.Model = g.Model
	g.Completer.MaxTokens = g.MaxTokens
	g.Completer.Temperature = &g.Temperature
	g.Completer.TopP = &g.TopP
	// Every assistant turn must carry at least one tool call, so ask
	// the vendor to enforce it too
	toolChoice := "required"
	g.ToolChoice = &toolChoice
	return nil
}

func (g *ChatGPT) RegisterTool(spec pub_models.Specification) {
	g.InternalRegisterTool(spec)
}
