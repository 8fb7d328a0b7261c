package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/srcdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ srcdoc.RunService = (*RunService)(nil)

// RunService implements srcdoc.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a new run.
func (s *RunService) CreateRun(ctx context.Context, run *srcdoc.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source_dir, output_dir, model, succeeded, failed, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.SourceDir, run.OutputDir, run.Model, run.Succeeded, run.Failed,
		formatTime(run.StartedAt), formatTime(run.FinishedAt))

	return err
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*srcdoc.Run, error) {
	var run srcdoc.Run
	var startedAt, finishedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_dir, output_dir, model, succeeded, failed, started_at, finished_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.SourceDir, &run.OutputDir, &run.Model,
		&run.Succeeded, &run.Failed, &startedAt, &finishedAt)

	if err == sql.ErrNoRows {
		return nil, srcdoc.Errorf(srcdoc.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if run.FinishedAt, err = parseOptionalRFC3339(finishedAt, "finished_at"); err != nil {
		return nil, err
	}

	return &run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter srcdoc.RunFilter) ([]*srcdoc.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_dir, output_dir, model, succeeded, failed, started_at, finished_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceDir != nil {
		query.WriteString(" AND source_dir = ?")
		args = append(args, *filter.SourceDir)
	}

	query.WriteString(" ORDER BY started_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*srcdoc.Run
	for rows.Next() {
		var run srcdoc.Run
		var startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &run.SourceDir, &run.OutputDir, &run.Model,
			&run.Succeeded, &run.Failed, &startedAt, &finishedAt); err != nil {
			return nil, err
		}

		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseOptionalRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// UpdateRun updates an existing run.
func (s *RunService) UpdateRun(ctx context.Context, id string, upd srcdoc.RunUpdate) (*srcdoc.Run, error) {
	// First check if run exists
	run, err := s.FindRunByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if upd.Succeeded != nil {
		run.Succeeded = *upd.Succeeded
	}
	if upd.Failed != nil {
		run.Failed = *upd.Failed
	}
	if upd.FinishedAt != nil {
		run.FinishedAt = *upd.FinishedAt
	}

	if err := run.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE runs
		SET succeeded = ?, failed = ?, finished_at = ?
		WHERE id = ?
	`, run.Succeeded, run.Failed, formatTime(run.FinishedAt), id)

	if err != nil {
		return nil, err
	}

	return run, nil
}

// DeleteRun permanently removes a run.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return srcdoc.Errorf(srcdoc.ENOTFOUND, "run not found")
	}

	return nil
}
