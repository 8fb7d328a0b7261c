package mock

import (
	"context"

	"github.com/fwojciec/srcdoc"
)

var _ srcdoc.RequestPacer = (*RequestPacer)(nil)

// RequestPacer is a mock implementation of srcdoc.RequestPacer.
type RequestPacer struct {
	WaitFn func(ctx context.Context) error
}

func (p *RequestPacer) Wait(ctx context.Context) error {
	return p.WaitFn(ctx)
}
