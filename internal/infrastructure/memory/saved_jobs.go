package memory

import (
	"context"
	"sort"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/internal/domain/repository"
)

type SavedJobRepository struct{ s *Store }

func (r *SavedJobRepository) Save(_ context.Context, userID, jobID string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := s.jobs[jobID]; !ok {
		return repository.ErrNotFound
	}
	k := savedKey{userID, jobID}
	if _, exists := s.saved[k]; !exists {
		s.saved[k] = s.now().UTC()
	}
	return nil
}

func (r *SavedJobRepository) Delete(_ context.Context, userID, jobID string) error {
	r.s.mu.Lock()
	delete(r.s.saved, savedKey{userID, jobID})
	r.s.mu.Unlock()
	return nil
}

func (r *SavedJobRepository) ListByUser(_ context.Context, userID string) ([]*entity.SavedJob, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.SavedJob, 0)
	for k, at := range r.s.saved {
		if k.userID != userID {
			continue
		}
		rec, ok := r.s.jobs[k.jobID]
		if !ok {
			continue
		}
		j := rec.job
		out = append(out, &entity.SavedJob{UserID: k.userID, JobID: k.jobID, SavedAt: at, Job: &j})
	}
	sort.SliceStable(out, func(i, k int) bool {
		if !out[i].SavedAt.Equal(out[k].SavedAt) {
			return out[i].SavedAt.After(out[k].SavedAt)
		}
		return out[i].JobID < out[k].JobID
	})
	return out, nil
}

var _ repository.SavedJobRepository = (*SavedJobRepository)(nil)
