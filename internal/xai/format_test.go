package xai

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatChatResponse(t *testing.T) {
	tests := []struct {
		name         string
		resp         *ChatResponse
		want         string
		wantContains []string
	}{
		{
			name: "basic",
			resp: &ChatResponse{
				Choices: []ChatChoice{{
					Message:      ResponseMessage{Role: "assistant", Content: "Hello!"},
					FinishReason: "stop",
				}},
				Usage: &Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
			},
			wantContains: []string{
				"Hello!",
				"[finish_reason: stop]",
				"[tokens: 10 prompt + 5 completion = 15 total]",
			},
		},
		{
			name: "empty_choices",
			resp: &ChatResponse{},
			want: "",
		},
		{
			name: "non_assistant_role_prefixed",
			resp: &ChatResponse{
				Choices: []ChatChoice{{
					Message: ResponseMessage{Role: "tool", Content: "result"},
				}},
			},
			want: "[tool] result",
		},
		{
			name: "tool_calls",
			resp: &ChatResponse{
				Choices: []ChatChoice{{
					Message: ResponseMessage{
						Role:      "assistant",
						ToolCalls: []json.RawMessage{json.RawMessage(`{"id": "call_1", "type": "function"}`)},
					},
				}},
			},
			wantContains: []string{"Tool calls:", "call_1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatChatResponse(tt.resp)
			if len(tt.wantContains) == 0 {
				assert.Equal(t, tt.want, got)
				return
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestFormatEmbeddingResponse(t *testing.T) {
	resp := &EmbeddingResponse{
		Data: []EmbeddingData{
			{Embedding: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, Index: 0},
			{Embedding: []float64{0.7, 0.8}, Index: 1},
		},
		Usage: &EmbeddingUsage{PromptTokens: 8, TotalTokens: 8},
	}

	got := FormatEmbeddingResponse(resp)

	assert.Contains(t, got, "[0] dim=6 [0.100000, 0.200000, 0.300000, 0.400000, 0.500000, ...]")
	assert.Contains(t, got, "[1] dim=2 [0.700000, 0.800000, ...]")
	assert.Contains(t, got, "[tokens: 8 prompt, 8 total]")
	// One vector per input, in input order.
	assert.Less(t, strings.Index(got, "[0] dim=6"), strings.Index(got, "[1] dim=2"))
}

func TestFormatModels(t *testing.T) {
	resp := &ModelsResponse{
		Data: []ModelInfo{
			{ID: "grok-3", OwnedBy: "xai"},
			{ID: "grok-3-mini"},
		},
	}

	assert.Equal(t, "- grok-3 (xai)\n- grok-3-mini (xai)", FormatModels(resp))
}
