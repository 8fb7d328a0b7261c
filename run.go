package srcdoc

import (
	"context"
	"time"
)

// Run represents one documentation pipeline invocation.
type Run struct {
	ID         string    `json:"id"`
	SourceDir  string    `json:"sourceDir"`
	OutputDir  string    `json:"outputDir"`
	Model      string    `json:"model"`
	Succeeded  int       `json:"succeeded"`
	Failed     int       `json:"failed"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.SourceDir == "" {
		return Errorf(EINVALID, "run source directory required")
	}
	if r.OutputDir == "" {
		return Errorf(EINVALID, "run output directory required")
	}
	return nil
}

// RunService represents a service for managing run history.
type RunService interface {
	// CreateRun records a new run.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// UpdateRun updates an existing run.
	// Returns ENOTFOUND if the run does not exist.
	UpdateRun(ctx context.Context, id string, upd RunUpdate) (*Run, error)

	// DeleteRun permanently removes a run and all associated documents.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID        *string `json:"id"`
	SourceDir *string `json:"sourceDir"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RunUpdate represents fields that can be updated on a run.
type RunUpdate struct {
	Succeeded  *int       `json:"succeeded"`
	Failed     *int       `json:"failed"`
	FinishedAt *time.Time `json:"finishedAt"`
}
