package ollamahttp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/usicamm-ai/GobiAPI/internal/assistant/llm"
	"github.com/usicamm-ai/GobiAPI/pkg/logger_i"
)

// Client talks to a local Ollama server's /api/chat endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	logger     *logger_i.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message *chatMessage `json:"message"`
	Done    bool         `json:"done"`
}

func NewClient(baseURL string, model string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		logger:     logger_i.NewLogger("llm_ollama_http"),
	}
}

func (c *Client) Complete(ctx context.Context, system string, prompt string) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   false,
	})
	if err != nil {
		return "", &llm.CompletionError{Backend: "http", Diag: "encode request: " + err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", &llm.CompletionError{Backend: "http", Diag: "build request: " + err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("completion request failed", "url", c.baseURL, "error", err)
		return "", &llm.CompletionError{Backend: "http", Diag: err.Error()}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("couldn't close the completion response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", &llm.CompletionError{Backend: "http", Status: resp.StatusCode, Diag: string(raw)}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", &llm.CompletionError{Backend: "http", Diag: "decode response: " + err.Error()}
	}

	// a missing message field is a service error, never a silent empty answer
	if chatResp.Message == nil {
		return "", &llm.CompletionError{Backend: "http", Diag: "response has no message.content field"}
	}

	return strings.TrimSpace(chatResp.Message.Content), nil
}
