package anthropic_test

import (
	"context"
	"testing"

	"github.com/fwojciec/srcdoc"
	"github.com/fwojciec/srcdoc/anthropic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	g := anthropic.NewGenerator(nil, "claude-sonnet-4-5") // nil client ok for this test

	_, err := g.Generate(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, srcdoc.EINVALID, srcdoc.ErrorCode(err))
	assert.Contains(t, srcdoc.ErrorMessage(err), "prompt required")
}

func TestSystemPrompt_DescribesDocumentationTask(t *testing.T) {
	t.Parallel()

	assert.Contains(t, anthropic.SystemPrompt(), "documenting source code")
}
