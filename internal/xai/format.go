package xai

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FormatChatResponse renders a chat completion as human-readable text.
func FormatChatResponse(resp *ChatResponse) string {
	var b strings.Builder

	for i, choice := range resp.Choices {
		if i > 0 {
			b.WriteByte('\n')
		}
		if choice.Message.Role != "" && choice.Message.Role != "assistant" {
			fmt.Fprintf(&b, "[%s] ", choice.Message.Role)
		}
		b.WriteString(choice.Message.Content)

		if len(choice.Message.ToolCalls) > 0 {
			pretty, err := json.MarshalIndent(choice.Message.ToolCalls, "", "  ")
			if err != nil {
				pretty = fmt.Appendf(nil, "<failed to format tool calls: %v>", err)
			}
			fmt.Fprintf(&b, "\nTool calls: %s", pretty)
		}

		if choice.FinishReason != "" {
			fmt.Fprintf(&b, "\n[finish_reason: %s]", choice.FinishReason)
		}
	}

	if resp.Usage != nil {
		fmt.Fprintf(&b, "\n[tokens: %d prompt + %d completion = %d total]",
			resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)
	}

	return b.String()
}

// FormatEmbeddingResponse renders each vector as its index, dimension
// and a short preview of the first values.
func FormatEmbeddingResponse(resp *EmbeddingResponse) string {
	var b strings.Builder

	for i, item := range resp.Data {
		if i > 0 {
			b.WriteByte('\n')
		}
		n := min(len(item.Embedding), 5)
		preview := make([]string, 0, n)
		for _, v := range item.Embedding[:n] {
			preview = append(preview, strconv.FormatFloat(v, 'f', 6, 64))
		}
		fmt.Fprintf(&b, "[%d] dim=%d [%s, ...]", item.Index, len(item.Embedding), strings.Join(preview, ", "))
	}

	if resp.Usage != nil {
		fmt.Fprintf(&b, "\n[tokens: %d prompt, %d total]",
			resp.Usage.PromptTokens, resp.Usage.TotalTokens)
	}

	return b.String()
}

// FormatModels renders the model listing one model per line.
func FormatModels(resp *ModelsResponse) string {
	lines := make([]string, 0, len(resp.Data))
	for _, m := range resp.Data {
		owner := m.OwnedBy
		if owner == "" {
			owner = "xai"
		}
		lines = append(lines, fmt.Sprintf("- %s (%s)", m.ID, owner))
	}
	return strings.Join(lines, "\n")
}
