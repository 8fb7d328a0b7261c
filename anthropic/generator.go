// Package anthropic provides documentation generation using the
// Anthropic Messages API.
package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/srcdoc"
)

// maxTokens caps the length of a single generated document.
const maxTokens = 4096

// Ensure Generator implements srcdoc.Generator at compile time.
var _ srcdoc.Generator = (*Generator)(nil)

// Generator implements srcdoc.Generator using Anthropic Claude.
type Generator struct {
	client *anthropic.Client
	model  string
}

// NewGenerator creates a new Generator for the given model.
func NewGenerator(client *anthropic.Client, model string) *Generator {
	return &Generator{client: client, model: model}
}

// NewClient returns an API client authenticated with the given key.
func NewClient(apiKey string) *anthropic.Client {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &client
}

// SystemPrompt returns the system prompt sent with every request.
func SystemPrompt() string {
	return "You are a technical writer documenting source code. Produce clear markdown documentation for the file you are given. Describe only what is in the file; do not invent behavior."
}

// Generate sends the prompt to the Messages API and returns the
// concatenated text blocks of the response.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", srcdoc.Errorf(srcdoc.EINVALID, "prompt required")
	}

	response, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: SystemPrompt()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var text string
	for _, block := range response.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", srcdoc.Errorf(srcdoc.EINTERNAL, "anthropic returned no text content")
	}

	return text, nil
}
