package srcdoc

import "context"

// Generator produces documentation text from a prompt. It is the single
// external capability boundary of the pipeline: a request/response call
// to a hosted text-generation service. Implementations do not retry;
// the caller decides whether to continue a batch after a failure.
type Generator interface {
	// Generate sends the prompt and returns the generated text.
	// Returns EINVALID if the prompt is empty.
	Generate(ctx context.Context, prompt string) (string, error)
}
