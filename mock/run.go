package mock

import (
	"context"

	"github.com/fwojciec/srcdoc"
)

var _ srcdoc.RunService = (*RunService)(nil)

// RunService is a mock implementation of srcdoc.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *srcdoc.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*srcdoc.Run, error)
	FindRunsFn    func(ctx context.Context, filter srcdoc.RunFilter) ([]*srcdoc.Run, error)
	UpdateRunFn   func(ctx context.Context, id string, upd srcdoc.RunUpdate) (*srcdoc.Run, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *srcdoc.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*srcdoc.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter srcdoc.RunFilter) ([]*srcdoc.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) UpdateRun(ctx context.Context, id string, upd srcdoc.RunUpdate) (*srcdoc.Run, error) {
	return s.UpdateRunFn(ctx, id, upd)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
