package report

import (
	"context"
	"os/exec"
)

// converter shells out to the external document converter; an interface so
// tests never spawn LibreOffice.
type converter interface {
	Convert(ctx context.Context, name string, args ...string) error
}

type execConverter struct{}

func (execConverter) Convert(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
