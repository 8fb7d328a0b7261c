// Package mock provides hand-written mocks for srcdoc interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/srcdoc"
)

var _ srcdoc.SourceDiscoverer = (*SourceDiscoverer)(nil)

// SourceDiscoverer is a mock implementation of srcdoc.SourceDiscoverer.
type SourceDiscoverer struct {
	DiscoverFn func(ctx context.Context, root string) ([]srcdoc.SourceFile, error)
}

func (d *SourceDiscoverer) Discover(ctx context.Context, root string) ([]srcdoc.SourceFile, error) {
	return d.DiscoverFn(ctx, root)
}
