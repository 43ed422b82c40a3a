package tools

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/grok-mcp/internal/xai"
)

func f(v float64) *float64 { return &v }

func TestValidateTemperature(t *testing.T) {
	tests := []struct {
		name    string
		temp    *float64
		wantErr bool
	}{
		{name: "nil_is_ok", temp: nil},
		{name: "zero", temp: f(0.0)},
		{name: "one", temp: f(1.0)},
		{name: "two", temp: f(2.0)},
		{name: "below_range", temp: f(-0.1), wantErr: true},
		{name: "above_range", temp: f(2.1), wantErr: true},
		{name: "nan", temp: f(math.NaN()), wantErr: true},
		{name: "positive_inf", temp: f(math.Inf(1)), wantErr: true},
		{name: "negative_inf", temp: f(math.Inf(-1)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTemperature(tt.temp)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateImageURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https", url: "https://example.com/a.png"},
		{name: "http", url: "http://example.com/a.png"},
		{name: "ftp_rejected", url: "ftp://x.com/a.png", wantErr: true},
		{name: "file_rejected", url: "file:///etc/passwd", wantErr: true},
		{name: "no_scheme", url: "example.com/a.png", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateImageURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildMessages(t *testing.T) {
	t.Run("prompt_only", func(t *testing.T) {
		msgs, err := buildMessages("", "", "hello")

		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "user", msgs[0].Role)
		assert.Equal(t, "hello", msgs[0].Content)
	})

	t.Run("system_prompt_first", func(t *testing.T) {
		msgs, err := buildMessages("be terse", "", "hello")

		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "system", msgs[0].Role)
		assert.Equal(t, "be terse", msgs[0].Content)
		assert.Equal(t, "user", msgs[1].Role)
	})

	t.Run("history_between_system_and_prompt", func(t *testing.T) {
		history := `[{"role": "user", "content": "hi"}, {"role": "assistant", "content": "hey"}]`

		msgs, err := buildMessages("be terse", history, "bye")

		require.NoError(t, err)
		require.Len(t, msgs, 4)
		assert.Equal(t, "system", msgs[0].Role)
		assert.Equal(t, "user", msgs[1].Role)
		assert.Equal(t, "hi", msgs[1].Content)
		assert.Equal(t, "assistant", msgs[2].Role)
		assert.Equal(t, "user", msgs[3].Role)
		assert.Equal(t, "bye", msgs[3].Content)
	})

	t.Run("malformed_history_json", func(t *testing.T) {
		_, err := buildMessages("", `{not valid`, "hello")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid messages JSON")
	})

	t.Run("history_not_an_array", func(t *testing.T) {
		_, err := buildMessages("", `{"role": "user", "content": "hi"}`, "hello")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid messages JSON")
	})

	t.Run("invalid_role", func(t *testing.T) {
		_, err := buildMessages("", `[{"role": "hacker", "content": "hi"}]`, "hello")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid role "hacker"`)
	})
}

func TestBuildChatRequest(t *testing.T) {
	msgs := []xai.ChatMessage{xai.UserMessage("hello")}

	t.Run("defaults", func(t *testing.T) {
		req, err := buildChatRequest(msgs, chatOptions{})

		require.NoError(t, err)
		assert.Equal(t, DefaultModel, req.Model)
		assert.Nil(t, req.Temperature)
		assert.Nil(t, req.MaxTokens)
		assert.Nil(t, req.ResponseFormat)
		assert.Empty(t, req.Tools)
	})

	t.Run("explicit_model", func(t *testing.T) {
		req, err := buildChatRequest(msgs, chatOptions{model: "grok-3"})

		require.NoError(t, err)
		assert.Equal(t, "grok-3", req.Model)
	})

	t.Run("response_schema", func(t *testing.T) {
		schema := `{"type": "object", "properties": {"name": {"type": "string"}}}`

		req, err := buildChatRequest(msgs, chatOptions{responseSchema: schema})

		require.NoError(t, err)
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_schema", req.ResponseFormat.Type)
		require.NotNil(t, req.ResponseFormat.JSONSchema)
		assert.Equal(t, "structured_output", req.ResponseFormat.JSONSchema.Name)
		assert.True(t, req.ResponseFormat.JSONSchema.Strict)
		assert.JSONEq(t, schema, string(req.ResponseFormat.JSONSchema.Schema))
	})

	t.Run("invalid_schema", func(t *testing.T) {
		_, err := buildChatRequest(msgs, chatOptions{responseSchema: "not json"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid response_schema JSON")
	})
}

func TestSearchTools(t *testing.T) {
	tests := []struct {
		name       string
		searchType string
		want       []xai.ToolSpec
		wantErr    bool
	}{
		{name: "web_only", searchType: "web", want: []xai.ToolSpec{{Type: "web_search"}}},
		{name: "x_only", searchType: "x", want: []xai.ToolSpec{{Type: "x_search"}}},
		{name: "both", searchType: "both", want: []xai.ToolSpec{{Type: "web_search"}, {Type: "x_search"}}},
		{name: "invalid", searchType: "telepathy", wantErr: true},
		{name: "empty", searchType: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := searchTools(tt.searchType)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmbeddingInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "single_string", input: `"hello"`},
		{name: "array_of_strings", input: `["a", "b"]`},
		{name: "empty_array", input: `[]`},
		{name: "bare_text", input: `hello`, wantErr: true},
		{name: "number", input: `42`, wantErr: true},
		{name: "array_of_numbers", input: `[1, 2]`, wantErr: true},
		{name: "object", input: `{"text": "hi"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := parseEmbeddingInput(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, string(raw))
		})
	}
}
