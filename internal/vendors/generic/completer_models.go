package generic

import (
	"net/http"

	pub_models "github.com/baalimago/mai/pkg/models"
)

// Completer talks to any OpenAI compatible chat completion API. mai
// consumes whole assistant turns, so the response is read in one piece
// instead of streamed.
type Completer struct {
	Model       string
	MaxTokens   *int
	Temperature *float64
	TopP        *float64
	ToolChoice  *string
	// Clean is an optional hook to amend the messages before sending,
	// for vendors with picky role or ordering rules
	Clean func([]pub_models.Message) []pub_models.Message

	url     string
	apiKey  string
	client  *http.Client
	limiter RateLimiter
	tools   []ToolSuper
	debug   bool
}

type ToolSuper struct {
	Type     string `json:"type"`
	Function Tool   `json:"function"`
}

type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Inputs      pub_models.InputSchema `json:"parameters"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type req struct {
	Model          string               `json:"model,omitempty"`
	ResponseFormat responseFormat       `json:"response_format,omitempty"`
	Messages       []pub_models.Message `json:"messages,omitempty"`
	MaxTokens      *int                 `json:"max_tokens,omitempty"`
	Temperature    *float64             `json:"temperature,omitempty"`
	TopP           *float64             `json:"top_p,omitempty"`
	ToolChoice     *string              `json:"tool_choice,omitempty"`
	Tools          []ToolSuper          `json:"tools,omitempty"`
}

type completionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
}

type choice struct {
	Index        int         `json:"index"`
	Message      wireMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type wireMessage struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []toolCall `json:"tool_calls"`
}

type toolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function fn     `json:"function"`
}

type fn struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}
