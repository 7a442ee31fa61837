package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/internal/domain/jobfilter"
	repo "github.com/oksasatya/go-job-board/internal/domain/repository"
	"github.com/oksasatya/go-job-board/pkg/apperror"
)

const (
	MaxSuggestions    = 5
	DefaultSearchSize = 20
	MaxSearchSize     = 100
)

type JobService struct {
	Jobs      repo.JobRepository
	Companies repo.CompanyRepository
	Index     JobIndexer
	Cache     SuggestionCache
	Logger    *logrus.Logger
}

func NewJobService(jobs repo.JobRepository, companies repo.CompanyRepository, index JobIndexer, cache SuggestionCache, logger *logrus.Logger) *JobService {
	return &JobService{Jobs: jobs, Companies: companies, Index: index, Cache: cache, Logger: logger}
}

type CreateJobInput struct {
	Title          string
	Description    string
	Location       string
	Salary         int
	EmploymentType string
	JobType        string
	CompanyID      string
}

func validEmployment(v string) bool {
	switch entity.EmploymentType(v) {
	case entity.FullTime, entity.PartTime, entity.Contract, entity.Internship:
		return true
	}
	return false
}

func validJobType(v string) bool {
	switch entity.JobType(v) {
	case entity.Onsite, entity.Remote, entity.Hybrid:
		return true
	}
	return false
}

// List returns jobs matching the filter params, newest first.
func (s *JobService) List(ctx context.Context, params jobfilter.Params) ([]*entity.Job, error) {
	pred, err := jobfilter.Build(params)
	if err != nil {
		return nil, err
	}
	jobs, err := s.Jobs.List(ctx, pred)
	if err != nil {
		return nil, storeErr("could not list jobs", err)
	}
	return jobs, nil
}

// Suggest returns up to MaxSuggestions titles containing q. Cache errors are
// logged and bypassed.
func (s *JobService) Suggest(ctx context.Context, q string) ([]entity.JobSuggestion, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []entity.JobSuggestion{}, nil
	}

	if s.Cache != nil {
		cached, ok, err := s.Cache.Get(ctx, q)
		if err != nil {
			s.Logger.WithError(err).Warn("suggestion cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	out, err := s.Jobs.SuggestTitles(ctx, q, MaxSuggestions)
	if err != nil {
		return nil, storeErr("could not load suggestions", err)
	}
	if out == nil {
		out = []entity.JobSuggestion{}
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, q, out); err != nil {
			s.Logger.WithError(err).Warn("suggestion cache write failed")
		}
	}
	return out, nil
}

// Search queries the full-text index and falls back to the store when the
// index is not configured or unreachable.
func (s *JobService) Search(ctx context.Context, params jobfilter.Params, size int) ([]*entity.Job, error) {
	if size <= 0 {
		size = DefaultSearchSize
	}
	if size > MaxSearchSize {
		size = MaxSearchSize
	}
	pred, err := jobfilter.Build(params)
	if err != nil {
		return nil, err
	}

	if s.Index != nil {
		jobs, err := s.Index.Search(ctx, pred, size)
		if err == nil {
			return jobs, nil
		}
		s.Logger.WithError(err).Warn("job index search failed; falling back to store")
	}

	jobs, err := s.Jobs.List(ctx, pred)
	if err != nil {
		return nil, storeErr("could not search jobs", err)
	}
	if len(jobs) > size {
		jobs = jobs[:size]
	}
	return jobs, nil
}

// Create posts a job for a company owned by callerID.
func (s *JobService) Create(ctx context.Context, callerID string, in CreateJobInput) (*entity.Job, error) {
	if in.Salary < 0 {
		return nil, apperror.Validation("salary must be a whole number", map[string]string{"salary": "must not be negative"})
	}
	if in.Salary > entity.MaxSalary {
		return nil, apperror.Validation("salary is too large", map[string]string{"salary": fmt.Sprintf("must be at most %d", entity.MaxSalary)})
	}
	if !validEmployment(in.EmploymentType) {
		return nil, apperror.Validation("invalid employment_type", map[string]string{"employment_type": "must be one of [full_time part_time contract internship]"})
	}
	if !validJobType(in.JobType) {
		return nil, apperror.Validation("invalid job_type", map[string]string{"job_type": "must be one of [onsite remote hybrid]"})
	}

	company, err := s.Companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("company not found")
		}
		return nil, storeErr("could not create job", err)
	}
	if company.OwnerID != callerID {
		return nil, apperror.Forbidden("you can only post jobs for your own company")
	}

	j := &entity.Job{
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		Location:       strings.TrimSpace(in.Location),
		Salary:         in.Salary,
		EmploymentType: entity.EmploymentType(in.EmploymentType),
		JobType:        entity.JobType(in.JobType),
		CompanyID:      company.ID,
	}
	if err := s.Jobs.Create(ctx, j); err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("company not found")
		}
		return nil, storeErr("could not create job", err)
	}

	if s.Index != nil {
		if err := s.Index.Index(ctx, j); err != nil {
			s.Logger.WithError(err).WithField("job_id", j.ID).Warn("index job failed")
		}
	}
	s.Logger.WithFields(logrus.Fields{"job_id": j.ID, "company_id": j.CompanyID}).Info("job created")
	return j, nil
}

func (s *JobService) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	j, err := s.Jobs.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, storeErr("could not load job", err)
	}
	return j, nil
}
