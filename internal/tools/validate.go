package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sandevgo/grok-mcp/internal/xai"
)

// validRoles are the roles accepted in a supplied conversation history.
var validRoles = map[string]bool{
	"system":    true,
	"user":      true,
	"assistant": true,
	"tool":      true,
}

func validateTemperature(t *float64) error {
	if t == nil {
		return nil
	}
	if math.IsNaN(*t) || math.IsInf(*t, 0) || *t < 0.0 || *t > 2.0 {
		return fmt.Errorf("temperature must be a finite number between 0.0 and 2.0, got %v", *t)
	}
	return nil
}

func validateImageURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("image_url must be a valid http:// or https:// URL")
	}
	return nil
}

// buildMessages assembles the outbound conversation: system prompt
// first, then any supplied history, then the new user prompt last.
func buildMessages(systemPrompt, historyJSON, prompt string) ([]xai.ChatMessage, error) {
	var messages []xai.ChatMessage

	if systemPrompt != "" {
		messages = append(messages, xai.SystemMessage(systemPrompt))
	}

	if historyJSON != "" {
		var history []xai.ChatMessage
		if err := json.Unmarshal([]byte(historyJSON), &history); err != nil {
			return nil, fmt.Errorf("invalid messages JSON: %w", err)
		}
		for _, msg := range history {
			if !validRoles[msg.Role] {
				return nil, fmt.Errorf("invalid role %q in messages: must be one of system, user, assistant, tool", msg.Role)
			}
		}
		messages = append(messages, history...)
	}

	messages = append(messages, xai.UserMessage(prompt))
	return messages, nil
}

type chatOptions struct {
	model          string
	temperature    *float64
	maxTokens      *int
	responseSchema string
	tools          []xai.ToolSpec
}

// buildChatRequest applies the default model and the shared optional
// fields, wrapping a response schema as a strict structured-output
// constraint.
func buildChatRequest(messages []xai.ChatMessage, opts chatOptions) (*xai.ChatRequest, error) {
	model := opts.model
	if model == "" {
		model = DefaultModel
	}

	req := &xai.ChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: opts.temperature,
		MaxTokens:   opts.maxTokens,
		Tools:       opts.tools,
	}

	if opts.responseSchema != "" {
		var schema json.RawMessage
		if err := json.Unmarshal([]byte(opts.responseSchema), &schema); err != nil {
			return nil, fmt.Errorf("invalid response_schema JSON: %w", err)
		}
		req.ResponseFormat = &xai.ResponseFormat{
			Type: "json_schema",
			JSONSchema: &xai.JSONSchema{
				Name:   "structured_output",
				Strict: true,
				Schema: schema,
			},
		}
	}

	return req, nil
}

// searchTools maps a search_type to the xAI search-tool activations.
func searchTools(searchType string) ([]xai.ToolSpec, error) {
	switch searchType {
	case "web":
		return []xai.ToolSpec{{Type: "web_search"}}, nil
	case "x":
		return []xai.ToolSpec{{Type: "x_search"}}, nil
	case "both":
		return []xai.ToolSpec{{Type: "web_search"}, {Type: "x_search"}}, nil
	default:
		return nil, fmt.Errorf("search_type must be \"web\", \"x\" or \"both\", got %q", searchType)
	}
}

// parseEmbeddingInput checks the input is JSON encoding a single string
// or an array of strings and returns it unchanged for the wire.
func parseEmbeddingInput(input string) (json.RawMessage, error) {
	var single string
	if err := json.Unmarshal([]byte(input), &single); err == nil {
		return json.RawMessage(input), nil
	}
	var many []string
	if err := json.Unmarshal([]byte(input), &many); err == nil {
		return json.RawMessage(input), nil
	}
	return nil, fmt.Errorf("input must be JSON: a quoted string or an array of strings")
}

// floatArg returns the numeric argument when present. JSON numbers
// always arrive as float64.
func floatArg(req mcp.CallToolRequest, key string) *float64 {
	if v, ok := req.GetArguments()[key].(float64); ok {
		return &v
	}
	return nil
}

func intArg(req mcp.CallToolRequest, key string) *int {
	if f := floatArg(req, key); f != nil {
		v := int(*f)
		return &v
	}
	return nil
}
