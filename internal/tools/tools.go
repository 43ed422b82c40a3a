package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sandevgo/grok-mcp/internal/xai"
)

const (
	// DefaultModel is used when a tool call does not name one.
	DefaultModel = "grok-4-1-fast-non-reasoning"
	// DefaultEmbeddingModel is used by the embedding tool.
	DefaultEmbeddingModel = "grok-2-text-embedding"
)

// Handlers holds the shared API client behind every tool.
type Handlers struct {
	client *xai.Client
}

func New(client *xai.Client) *Handlers {
	return &Handlers{client: client}
}

// Register declares the five Grok tools and their parameter schemas on
// the MCP server.
func (h *Handlers) Register(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("chat",
		mcp.WithDescription("Send a chat completion request to Grok. Supports multi-turn conversations, structured output via JSON schema, and model selection."),
		mcp.WithString("prompt", mcp.Required(),
			mcp.Description("The user message / prompt to send to Grok")),
		mcp.WithString("system_prompt",
			mcp.Description("Optional system prompt to set context/behaviour")),
		mcp.WithString("messages",
			mcp.Description("Full conversation history as JSON array of {role, content} objects. When provided, 'prompt' is appended as the final user message.")),
		mcp.WithString("model",
			mcp.Description("Model to use. Defaults to "+DefaultModel+".")),
		mcp.WithNumber("temperature",
			mcp.Description("Sampling temperature (0.0 - 2.0)"),
			mcp.Min(0), mcp.Max(2)),
		mcp.WithNumber("max_tokens",
			mcp.Description("Maximum tokens to generate")),
		mcp.WithString("response_schema",
			mcp.Description("Optional JSON schema string to enforce structured output. The model response will conform to this schema.")),
	), h.Chat)

	s.AddTool(mcp.NewTool("chat_with_vision",
		mcp.WithDescription("Analyse an image with Grok's vision capabilities. Provide an image URL and a text prompt."),
		mcp.WithString("prompt", mcp.Required(),
			mcp.Description("Text prompt describing what to analyse in the image")),
		mcp.WithString("image_url", mcp.Required(),
			mcp.Description("URL of the image to analyse (must be http:// or https://)")),
		mcp.WithString("detail",
			mcp.Description("Image detail level (default: high)"),
			mcp.Enum("low", "high")),
		mcp.WithString("model",
			mcp.Description("Model to use. Defaults to "+DefaultModel+". Must be a vision-capable model.")),
		mcp.WithNumber("temperature",
			mcp.Description("Sampling temperature (0.0 - 2.0)"),
			mcp.Min(0), mcp.Max(2)),
		mcp.WithNumber("max_tokens",
			mcp.Description("Maximum tokens to generate")),
	), h.ChatWithVision)

	s.AddTool(mcp.NewTool("chat_with_search",
		mcp.WithDescription("Chat with Grok using live web search and/or X (Twitter) search. The model will automatically search the internet to ground its response."),
		mcp.WithString("prompt", mcp.Required(),
			mcp.Description("The user message / prompt")),
		mcp.WithString("system_prompt",
			mcp.Description("Optional system prompt")),
		mcp.WithString("search_type",
			mcp.Description("Search type to enable (default: both)"),
			mcp.Enum("web", "x", "both")),
		mcp.WithString("model",
			mcp.Description("Model to use. Defaults to "+DefaultModel+".")),
		mcp.WithNumber("temperature",
			mcp.Description("Sampling temperature (0.0 - 2.0)"),
			mcp.Min(0), mcp.Max(2)),
		mcp.WithNumber("max_tokens",
			mcp.Description("Maximum tokens to generate")),
	), h.ChatWithSearch)

	s.AddTool(mcp.NewTool("embedding",
		mcp.WithDescription("Generate text embeddings using Grok's embedding model."),
		mcp.WithString("input", mcp.Required(),
			mcp.Description("Text to embed as JSON: a single string or array of strings.")),
		mcp.WithString("model",
			mcp.Description("Embedding model to use (default: "+DefaultEmbeddingModel+")")),
	), h.Embedding)

	s.AddTool(mcp.NewTool("list_models",
		mcp.WithDescription("List all available Grok models and their IDs."),
	), h.ListModels)
}
