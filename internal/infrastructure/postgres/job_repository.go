package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/internal/domain/jobfilter"
	"github.com/oksasatya/go-job-board/internal/domain/repository"
)

const jobColumns = `j.id, j.title, j.description, j.location, j.salary, j.employment_type, j.job_type,
	j.company_id, j.created_at, j.updated_at`

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) Create(ctx context.Context, j *entity.Job) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO jobs (title, description, location, salary, employment_type, job_type, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, j.Title, j.Description, j.Location, j.Salary, string(j.EmploymentType), string(j.JobType), j.CompanyID)

	return mapErr(row.Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt))
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	j := &entity.Job{}
	c := &entity.Company{}
	err := r.pool.QueryRow(ctx, `
		SELECT `+jobColumns+`,
			c.id, c.name, c.description, c.location, c.logo, c.owner_id, c.created_at, c.updated_at
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1
	`, id).Scan(
		&j.ID, &j.Title, &j.Description, &j.Location, &j.Salary, &j.EmploymentType, &j.JobType,
		&j.CompanyID, &j.CreatedAt, &j.UpdatedAt,
		&c.ID, &c.Name, &c.Description, &c.Location, &c.Logo, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	j.Company = c
	return j, nil
}

func (r *JobRepository) List(ctx context.Context, p jobfilter.Predicate) ([]*entity.Job, error) {
	where, args := jobWhere(p, 1)
	rows, err := r.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs j `+where+` ORDER BY j.created_at DESC`, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	return collectJobs(rows)
}

func (r *JobRepository) SuggestTitles(ctx context.Context, q string, limit int) ([]entity.JobSuggestion, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title FROM jobs
		WHERE title ILIKE $1 ESCAPE '\'
		LIMIT $2
	`, containsPattern(q), limit)
	if err != nil {
		return nil, mapErr(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.JobSuggestion, error) {
		var s entity.JobSuggestion
		err := row.Scan(&s.ID, &s.Title)
		return s, err
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

func collectJobs(rows pgx.Rows) ([]*entity.Job, error) {
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Job, error) {
		j := &entity.Job{}
		err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Location, &j.Salary, &j.EmploymentType, &j.JobType,
			&j.CompanyID, &j.CreatedAt, &j.UpdatedAt)
		return j, err
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

var _ repository.JobRepository = (*JobRepository)(nil)
