// Package slog provides logging decorators for srcdoc interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/srcdoc"
)

// Ensure LoggingGenerator implements srcdoc.Generator.
var _ srcdoc.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with debug logging for each
// generation call.
type LoggingGenerator struct {
	next   srcdoc.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next srcdoc.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the call.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	begin := time.Now()
	text, err := g.next.Generate(ctx, prompt)
	if err != nil {
		g.logger.Error("generation failed",
			"prompt_bytes", len(prompt),
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	g.logger.Info("generation",
		"prompt_bytes", len(prompt),
		"response_bytes", len(text),
		"duration", time.Since(begin),
	)
	return text, nil
}
