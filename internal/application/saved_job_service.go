package application

import (
	"context"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	repo "github.com/oksasatya/go-job-board/internal/domain/repository"
	"github.com/oksasatya/go-job-board/pkg/apperror"
)

type SavedJobService struct {
	Saved repo.SavedJobRepository
	Jobs  repo.JobRepository
}

func NewSavedJobService(saved repo.SavedJobRepository, jobs repo.JobRepository) *SavedJobService {
	return &SavedJobService{Saved: saved, Jobs: jobs}
}

func (s *SavedJobService) List(ctx context.Context, userID string) ([]*entity.SavedJob, error) {
	out, err := s.Saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr("could not list saved jobs", err)
	}
	return out, nil
}

// SavedIDs returns the set of job ids userID has bookmarked.
func (s *SavedJobService) SavedIDs(ctx context.Context, userID string) (map[string]bool, error) {
	saved, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(saved))
	for _, sj := range saved {
		ids[sj.JobID] = true
	}
	return ids, nil
}

// Save bookmarks jobID for userID. Saving twice is a no-op.
func (s *SavedJobService) Save(ctx context.Context, userID, jobID string) error {
	if _, err := s.Jobs.GetByID(ctx, jobID); err != nil {
		if isNotFound(err) {
			return apperror.NotFound("job not found")
		}
		return storeErr("could not save job", err)
	}
	if err := s.Saved.Save(ctx, userID, jobID); err != nil {
		if isNotFound(err) {
			return apperror.NotFound("job not found")
		}
		return storeErr("could not save job", err)
	}
	return nil
}

// Remove deletes the bookmark if present.
func (s *SavedJobService) Remove(ctx context.Context, userID, jobID string) error {
	if err := s.Saved.Delete(ctx, userID, jobID); err != nil {
		return storeErr("could not remove saved job", err)
	}
	return nil
}
