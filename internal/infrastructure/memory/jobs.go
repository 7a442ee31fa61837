package memory

import (
	"context"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/internal/domain/jobfilter"
	"github.com/oksasatya/go-job-board/internal/domain/repository"
)

type JobRepository struct{ s *Store }

func (r *JobRepository) Create(_ context.Context, j *entity.Job) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.companies[j.CompanyID]; !ok {
		return repository.ErrNotFound
	}
	id, now, seq := s.stamp()
	j.ID, j.CreatedAt, j.UpdatedAt = id, now, now
	rec := *j
	rec.Company = nil
	s.jobs[id] = jobRecord{job: rec, seq: seq}
	return nil
}

func (r *JobRepository) GetByID(_ context.Context, id string) (*entity.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	j := rec.job
	if c, ok := r.s.companies[j.CompanyID]; ok {
		j.Company = &c
	}
	return &j, nil
}

func (r *JobRepository) List(_ context.Context, p jobfilter.Predicate) ([]*entity.Job, error) {
	r.s.mu.RLock()
	recs := make([]jobRecord, 0, len(r.s.jobs))
	for _, rec := range r.s.jobs {
		if p.Matches(&rec.job) {
			recs = append(recs, rec)
		}
	}
	r.s.mu.RUnlock()

	sortNewest(recs)
	out := make([]*entity.Job, 0, len(recs))
	for i := range recs {
		j := recs[i].job
		out = append(out, &j)
	}
	return out, nil
}

// SuggestTitles walks jobs in insertion order and stops at limit.
func (r *JobRepository) SuggestTitles(_ context.Context, q string, limit int) ([]entity.JobSuggestion, error) {
	r.s.mu.RLock()
	recs := make([]jobRecord, 0, len(r.s.jobs))
	for _, rec := range r.s.jobs {
		if jobfilter.ContainsFold(rec.job.Title, q) {
			recs = append(recs, rec)
		}
	}
	r.s.mu.RUnlock()

	sortNewest(recs)
	out := make([]entity.JobSuggestion, 0, limit)
	for i := len(recs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, entity.JobSuggestion{ID: recs[i].job.ID, Title: recs[i].job.Title})
	}
	return out, nil
}

var _ repository.JobRepository = (*JobRepository)(nil)
