// Package gemini provides documentation generation using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/srcdoc"
	"google.golang.org/genai"
)

// Ensure Generator implements srcdoc.Generator at compile time.
var _ srcdoc.Generator = (*Generator)(nil)

// Generator implements srcdoc.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator for the given model.
func NewGenerator(client *genai.Client, model string) *Generator {
	return &Generator{client: client, model: model}
}

// Generate sends the prompt to Gemini and returns the generated text.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", srcdoc.Errorf(srcdoc.EINVALID, "prompt required")
	}

	config := BuildConfig()

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", srcdoc.Errorf(srcdoc.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a technical writer documenting source code. Produce clear markdown documentation for the file you are given. Describe only what is in the file; do not invent behavior.",
			}},
		},
		Temperature: &temp,
	}
}
