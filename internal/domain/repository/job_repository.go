package repository

import (
	"context"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/internal/domain/jobfilter"
)

// JobRepository persists jobs and evaluates filter predicates.
type JobRepository interface {
	Create(ctx context.Context, j *entity.Job) error
	// GetByID returns the job with its Company populated.
	GetByID(ctx context.Context, id string) (*entity.Job, error)
	// List returns jobs matching p, newest first. An empty predicate matches all jobs.
	List(ctx context.Context, p jobfilter.Predicate) ([]*entity.Job, error)
	// SuggestTitles returns at most limit jobs whose title contains q, case-insensitively.
	SuggestTitles(ctx context.Context, q string, limit int) ([]entity.JobSuggestion, error)
}

// SavedJobRepository persists per-user bookmarks. Save and Delete are idempotent.
type SavedJobRepository interface {
	Save(ctx context.Context, userID, jobID string) error
	Delete(ctx context.Context, userID, jobID string) error
	ListByUser(ctx context.Context, userID string) ([]*entity.SavedJob, error)
}
