package llm

import (
	"context"
	"fmt"
)

// Provider is the completion client contract. One request per call,
// blocking, no retry and no internal timeout - deadlines belong to the
// caller's context. The model id is bound at construction.
type Provider interface {
	Complete(ctx context.Context, system string, prompt string) (string, error)
}

// CompletionError is returned when the completion service is unreachable or
// answers with a non-success status or a malformed payload.
type CompletionError struct {
	Backend string
	Status  int // HTTP status when applicable, 0 otherwise
	Diag    string
}

func (e *CompletionError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("completion service (%s) failed with status %d: %s", e.Backend, e.Status, e.Diag)
	}
	return fmt.Sprintf("completion service (%s) failed: %s", e.Backend, e.Diag)
}
