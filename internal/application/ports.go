package application

import (
	"context"
	"errors"
	"io"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/internal/domain/jobfilter"
	repo "github.com/oksasatya/go-job-board/internal/domain/repository"
	"github.com/oksasatya/go-job-board/pkg/apperror"
)

// Optional side channels. A nil port disables the feature.

// EmailPublisher enqueues email jobs for the worker.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// JobIndexer mirrors jobs into the full-text index.
type JobIndexer interface {
	Index(ctx context.Context, j *entity.Job) error
	Search(ctx context.Context, p jobfilter.Predicate, size int) ([]*entity.Job, error)
}

// SuggestionCache memoizes typeahead results.
type SuggestionCache interface {
	Get(ctx context.Context, q string) ([]entity.JobSuggestion, bool, error)
	Set(ctx context.Context, q string, v []entity.JobSuggestion) error
}

// LogoStorage stores uploaded company logos and returns their public URL.
type LogoStorage interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// storeErr converts an unexpected repository failure into a 500 with a
// stable public message.
func storeErr(msg string, err error) error {
	if ae, ok := apperror.As(err); ok {
		return ae
	}
	return apperror.Unexpected(msg, err)
}

func isNotFound(err error) bool  { return errors.Is(err, repo.ErrNotFound) }
func isDuplicate(err error) bool { return errors.Is(err, repo.ErrDuplicate) }
