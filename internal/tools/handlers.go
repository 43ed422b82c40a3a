package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sandevgo/grok-mcp/internal/xai"
	"github.com/sandevgo/grok-mcp/pkg/log"
)

// doChat issues the built request and formats the completion. Upstream
// and network failures become tool error results, never handler errors.
func (h *Handlers) doChat(ctx context.Context, req *xai.ChatRequest) (*mcp.CallToolResult, error) {
	resp, err := h.client.ChatCompletion(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(xai.FormatChatResponse(resp)), nil
}

func (h *Handlers) Chat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	log.FromCtx(ctx).Debug().Str("model", req.GetString("model", DefaultModel)).Msg("chat tool called")

	temp := floatArg(req, "temperature")
	if err := validateTemperature(temp); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	messages, err := buildMessages(req.GetString("system_prompt", ""), req.GetString("messages", ""), prompt)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	chatReq, err := buildChatRequest(messages, chatOptions{
		model:          req.GetString("model", ""),
		temperature:    temp,
		maxTokens:      intArg(req, "max_tokens"),
		responseSchema: req.GetString("response_schema", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return h.doChat(ctx, chatReq)
}

func (h *Handlers) ChatWithVision(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	imageURL, err := req.RequireString("image_url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	log.FromCtx(ctx).Debug().Str("model", req.GetString("model", DefaultModel)).Msg("chat_with_vision tool called")

	if err := validateImageURL(imageURL); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	temp := floatArg(req, "temperature")
	if err := validateTemperature(temp); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	detail := req.GetString("detail", "high")
	if detail != "low" && detail != "high" {
		return mcp.NewToolResultError(fmt.Sprintf("detail must be \"low\" or \"high\", got %q", detail)), nil
	}

	messages := []xai.ChatMessage{xai.UserImageMessage(prompt, imageURL, detail)}

	chatReq, err := buildChatRequest(messages, chatOptions{
		model:       req.GetString("model", ""),
		temperature: temp,
		maxTokens:   intArg(req, "max_tokens"),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return h.doChat(ctx, chatReq)
}

func (h *Handlers) ChatWithSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	searchType := req.GetString("search_type", "both")
	log.FromCtx(ctx).Debug().
		Str("model", req.GetString("model", DefaultModel)).
		Str("search_type", searchType).
		Msg("chat_with_search tool called")

	temp := floatArg(req, "temperature")
	if err := validateTemperature(temp); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	searchSpecs, err := searchTools(searchType)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	messages, err := buildMessages(req.GetString("system_prompt", ""), "", prompt)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	chatReq, err := buildChatRequest(messages, chatOptions{
		model:       req.GetString("model", ""),
		temperature: temp,
		maxTokens:   intArg(req, "max_tokens"),
		tools:       searchSpecs,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return h.doChat(ctx, chatReq)
}

func (h *Handlers) Embedding(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := req.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	log.FromCtx(ctx).Debug().Msg("embedding tool called")

	raw, err := parseEmbeddingInput(input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := h.client.CreateEmbeddings(ctx, &xai.EmbeddingRequest{
		Model: req.GetString("model", DefaultEmbeddingModel),
		Input: raw,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(xai.FormatEmbeddingResponse(resp)), nil
}

func (h *Handlers) ListModels(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.FromCtx(ctx).Debug().Msg("list_models tool called")

	resp, err := h.client.ListModels(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(xai.FormatModels(resp)), nil
}
