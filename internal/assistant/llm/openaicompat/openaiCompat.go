package openaicompat

import (
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/usicamm-ai/GobiAPI/internal/assistant/llm"
	"github.com/usicamm-ai/GobiAPI/pkg/logger_i"
)

// Client speaks the OpenAI chat-completions wire format. Pointed at an
// Ollama server's /v1 endpoint it is a drop-in third backend; the API key
// only matters for servers that check one.
type Client struct {
	client openai.Client
	model  string
	logger *logger_i.Logger
}

func NewClient(baseURL string, apiKey string, model string) *Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(baseURL, "/")+"/v1"))
	}
	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
		logger: logger_i.NewLogger("llm_openai_compat"),
	}
}

func (c *Client) Complete(ctx context.Context, system string, prompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    openai.ChatModel(c.model),
	})
	if err != nil {
		c.logger.Error("chat completion failed", "model", c.model, "error", err)
		return "", &llm.CompletionError{Backend: "openai", Diag: err.Error()}
	}

	if len(resp.Choices) == 0 {
		return "", &llm.CompletionError{Backend: "openai", Diag: "response has no choices"}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
