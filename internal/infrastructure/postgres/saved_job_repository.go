package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/internal/domain/repository"
)

type SavedJobRepository struct {
	pool *pgxpool.Pool
}

func NewSavedJobRepository(pool *pgxpool.Pool) *SavedJobRepository {
	return &SavedJobRepository{pool: pool}
}

func (r *SavedJobRepository) Save(ctx context.Context, userID, jobID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO saved_jobs (user_id, job_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, job_id) DO NOTHING
	`, userID, jobID)
	return mapErr(err)
}

func (r *SavedJobRepository) Delete(ctx context.Context, userID, jobID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	return mapErr(err)
}

func (r *SavedJobRepository) ListByUser(ctx context.Context, userID string) ([]*entity.SavedJob, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.user_id, s.job_id, s.saved_at, `+jobColumns+`
		FROM saved_jobs s
		JOIN jobs j ON j.id = s.job_id
		WHERE s.user_id = $1
		ORDER BY s.saved_at DESC
	`, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.SavedJob, error) {
		s := &entity.SavedJob{Job: &entity.Job{}}
		j := s.Job
		err := row.Scan(&s.UserID, &s.JobID, &s.SavedAt,
			&j.ID, &j.Title, &j.Description, &j.Location, &j.Salary, &j.EmploymentType, &j.JobType,
			&j.CompanyID, &j.CreatedAt, &j.UpdatedAt)
		return s, err
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

var _ repository.SavedJobRepository = (*SavedJobRepository)(nil)
