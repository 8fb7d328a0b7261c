package srcdoc

import "context"

// RequestPacer spaces out requests to the generation provider.
type RequestPacer interface {
	// Wait blocks until the pacing policy allows the next request.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
