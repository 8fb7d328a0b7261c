package docgen

import (
	"context"
	"time"

	"github.com/fwojciec/srcdoc"
	"golang.org/x/time/rate"
)

// DefaultDelay is the pause between consecutive generation requests.
const DefaultDelay = 500 * time.Millisecond

var _ srcdoc.RequestPacer = (*Pacer)(nil)

// Pacer enforces a fixed delay between generation requests using a
// token bucket with a burst of 1. The bucket starts full, so the first
// request proceeds immediately.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer with the given inter-request delay.
// A non-positive delay disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	if delay <= 0 {
		return &Pacer{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the delay since the previous request has elapsed.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
