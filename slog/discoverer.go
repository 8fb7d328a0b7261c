package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/srcdoc"
)

// Ensure LoggingDiscoverer implements srcdoc.SourceDiscoverer.
var _ srcdoc.SourceDiscoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps a SourceDiscoverer with debug logging.
type LoggingDiscoverer struct {
	next   srcdoc.SourceDiscoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next srcdoc.SourceDiscoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// Discover delegates to the wrapped discoverer and logs the result.
func (d *LoggingDiscoverer) Discover(ctx context.Context, root string) ([]srcdoc.SourceFile, error) {
	begin := time.Now()
	files, err := d.next.Discover(ctx, root)
	if err != nil {
		d.logger.Error("discovery failed",
			"root", root,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	d.logger.Info("discovery",
		"root", root,
		"files", len(files),
		"duration", time.Since(begin),
	)
	return files, nil
}
