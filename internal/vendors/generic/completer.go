package generic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	pub_models "github.com/baalimago/mai/pkg/models"
)

// Complete asks the model for the next assistant turn with tools
// enabled. Tool calls come back exactly in the order the vendor
// emitted them.
func (c *Completer) Complete(ctx context.Context, chat pub_models.Chat) (pub_models.Message, error) {
	wire, err := c.complete(ctx, chat, responseFormat{Type: "text"}, true)
	if err != nil {
		return pub_models.Message{}, err
	}
	return convertMessage(wire)
}

// CompleteJSON asks the model for a single json object answer with
// tools disabled. Triage uses this to force the categorical verdict.
func (c *Completer) CompleteJSON(ctx context.Context, chat pub_models.Chat) (string, error) {
	wire, err := c.complete(ctx, chat, responseFormat{Type: "json_object"}, false)
	if err != nil {
		return "", err
	}
	return wire.Content, nil
}

func (c *Completer) complete(ctx context.Context, chat pub_models.Chat, format responseFormat, withTools bool) (wireMessage, error) {
	if c.Clean != nil {
		cpy := make([]pub_models.Message, len(chat.Messages))
		copy(cpy, chat.Messages)
		chat.Messages = c.Clean(cpy)
	}
	req, err := c.createRequest(ctx, chat, format, withTools)
	if err != nil {
		return wireMessage{}, fmt.Errorf("failed to create request: %w", err)
	}
	c.limiter.WaitIfNeeded(ctx)
	res, err := c.client.Do(req)
	if err != nil {
		return wireMessage{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer res.Body.Close()
	if err := c.limiter.UpdateFromHeaders(res.Header); err != nil && c.debug {
		ancli.Warnf("failed to update rate limits: %v\n", err)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return wireMessage{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return wireMessage{}, fmt.Errorf("unexpected status code: %v, body: %v", res.Status, string(body))
	}
	var compResp completionResponse
	if err := json.Unmarshal(body, &compResp); err != nil {
		return wireMessage{}, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if c.debug {
		ancli.Okf("generic completer response: %v\n", debug.IndentedJsonFmt(compResp))
	}
	if len(compResp.Choices) == 0 {
		return wireMessage{}, fmt.Errorf("no choices in completion response, body: %v", string(body))
	}
	return compResp.Choices[0].Message, nil
}

func (c *Completer) createRequest(ctx context.Context, chat pub_models.Chat, format responseFormat, withTools bool) (*http.Request, error) {
	reqData := req{
		Model:          c.Model,
		ResponseFormat: format,
		Messages:       chat.Messages,
		MaxTokens:      c.MaxTokens,
		Temperature:    c.Temperature,
		TopP:           c.TopP,
	}
	if withTools && len(c.tools) > 0 {
		reqData.Tools = c.tools
		reqData.ToolChoice = c.ToolChoice
	}
	if c.debug {
		ancli.Okf("generic completer request: %v\n", debug.IndentedJsonFmt(reqData))
	}
	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %v", c.apiKey))
	return httpReq, nil
}

// convertMessage maps the wire message onto the internal chat shape,
// parsing tool call arguments while keeping their emission order.
func convertMessage(wire wireMessage) (pub_models.Message, error) {
	msg := pub_models.Message{
		Role:    wire.Role,
		Content: wire.Content,
	}
	if msg.Role == "" {
		msg.Role = "assistant"
	}
	for _, tc := range wire.ToolCalls {
		input := pub_models.Input{}
		if tc.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &input); err != nil {
				return pub_models.Message{}, fmt.Errorf("failed to unmarshal arguments of tool call '%v': %w", tc.ID, err)
			}
		}
		msg.ToolCalls = append(msg.ToolCalls, pub_models.Call{
			ID:     tc.ID,
			Name:   tc.Function.Name,
			Type:   "function",
			Inputs: &input,
			Function: pub_models.Specification{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		})
	}
	return msg, nil
}
