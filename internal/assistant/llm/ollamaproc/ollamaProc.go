package ollamaproc

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/usicamm-ai/GobiAPI/internal/assistant/llm"
	"github.com/usicamm-ai/GobiAPI/pkg/logger_i"
)

// Client runs the model through an `ollama run <model>` subprocess: prompt
// piped to stdin, reply read from stdout until the process exits.
type Client struct {
	binary string
	model  string
	logger *logger_i.Logger

	// startCommand is swapped in tests to avoid spawning a real process.
	startCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
}

func NewClient(binary string, model string) *Client {
	if binary == "" {
		binary = "ollama"
	}
	return &Client{
		binary:       binary,
		model:        model,
		logger:       logger_i.NewLogger("llm_ollama_proc"),
		startCommand: exec.CommandContext,
	}
}

// Complete blocks until the subprocess exits. A non-zero exit is not a
// failure: whatever landed on stdout is returned as-is (degraded output).
// Only failing to start the process at all is a CompletionError.
func (c *Client) Complete(ctx context.Context, system string, prompt string) (string, error) {
	full := prompt
	if system != "" {
		full = system + "\n\n" + prompt
	}

	cmd := c.startCommand(ctx, c.binary, "run", c.model)
	cmd.Stdin = strings.NewReader(full)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		c.logger.Error("failed to start completion subprocess", "binary", c.binary, "error", err)
		return "", &llm.CompletionError{Backend: "subprocess", Diag: err.Error()}
	}

	if err := cmd.Wait(); err != nil {
		c.logger.Warn("completion subprocess exited non-zero, keeping partial output",
			"model", c.model, "error", err, "stdout_bytes", out.Len())
	}

	return strings.TrimSpace(out.String()), nil
}
