package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/srcdoc"
	main "github.com/fwojciec/srcdoc/cmd/srcdoc"
	"github.com/fwojciec/srcdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes run with force flag", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		runs := &mock.RunService{
			DeleteRunFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs:   runs,
		}

		cmd := &main.DeleteCmd{RunID: "run-42", Force: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "run-42", deletedID)
		assert.Contains(t, stdout.String(), "Deleted run \"run-42\"")
	})

	t.Run("refuses without force flag", func(t *testing.T) {
		t.Parallel()

		var deleted bool
		runs := &mock.RunService{
			DeleteRunFn: func(_ context.Context, _ string) error {
				deleted = true
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Runs:   runs,
		}

		cmd := &main.DeleteCmd{RunID: "run-42"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, srcdoc.EINVALID, srcdoc.ErrorCode(err))
		assert.False(t, deleted)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("unknown run surfaces not found", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			DeleteRunFn: func(_ context.Context, id string) error {
				return srcdoc.Errorf(srcdoc.ENOTFOUND, "run %q not found", id)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Runs:   runs,
		}

		cmd := &main.DeleteCmd{RunID: "missing", Force: true}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, srcdoc.ENOTFOUND, srcdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "missing")
	})
}
