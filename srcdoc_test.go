package srcdoc_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/srcdoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := srcdoc.Errorf(srcdoc.ENOTFOUND, "run %q not found", "test")

	assert.Equal(t, srcdoc.ENOTFOUND, srcdoc.ErrorCode(err))
	assert.Equal(t, "run \"test\" not found", srcdoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, srcdoc.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, srcdoc.EINTERNAL, srcdoc.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, srcdoc.ErrorMessage(nil))
}

func TestRun_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires source directory", func(t *testing.T) {
		t.Parallel()

		run := &srcdoc.Run{OutputDir: "docs"}
		err := run.Validate()

		assert.Equal(t, srcdoc.EINVALID, srcdoc.ErrorCode(err))
		assert.Contains(t, srcdoc.ErrorMessage(err), "source directory")
	})

	t.Run("requires output directory", func(t *testing.T) {
		t.Parallel()

		run := &srcdoc.Run{SourceDir: "src"}
		err := run.Validate()

		assert.Equal(t, srcdoc.EINVALID, srcdoc.ErrorCode(err))
		assert.Contains(t, srcdoc.ErrorMessage(err), "output directory")
	})

	t.Run("valid run passes", func(t *testing.T) {
		t.Parallel()

		run := &srcdoc.Run{SourceDir: "src", OutputDir: "docs"}
		assert.NoError(t, run.Validate())
	})
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires run ID", func(t *testing.T) {
		t.Parallel()

		doc := &srcdoc.Document{SourcePath: "main.go"}
		err := doc.Validate()

		assert.Equal(t, srcdoc.EINVALID, srcdoc.ErrorCode(err))
	})

	t.Run("requires source path", func(t *testing.T) {
		t.Parallel()

		doc := &srcdoc.Document{RunID: "run-1"}
		err := doc.Validate()

		assert.Equal(t, srcdoc.EINVALID, srcdoc.ErrorCode(err))
	})
}
