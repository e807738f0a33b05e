package assistant

import (
	"github.com/usicamm-ai/GobiAPI/internal/assistant/llm"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/llm/ollamahttp"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/llm/ollamaproc"
	"github.com/usicamm-ai/GobiAPI/internal/assistant/llm/openaicompat"
	"github.com/usicamm-ai/GobiAPI/internal/config"
)

// NewProviderFromConfig picks the completion backend. The three backends are
// interchangeable; everything above this point only sees llm.Provider.
func NewProviderFromConfig(cfg config.LLMConfig) llm.Provider {
	switch cfg.Backend {
	case "subprocess":
		return ollamaproc.NewClient(cfg.Binary, cfg.Model)
	case "openai":
		return openaicompat.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Model)
	default:
		return ollamahttp.NewClient(cfg.BaseURL, cfg.Model)
	}
}
