package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/internal/domain/repository"
)

const companyColumns = `id, name, description, location, logo, owner_id, created_at, updated_at`

type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

func (r *CompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO companies (name, description, location, logo, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, c.Name, c.Description, c.Location, c.Logo, c.OwnerID)

	return mapErr(row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt))
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

func (r *CompanyRepository) GetByOwner(ctx context.Context, ownerID string) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE owner_id = $1`, ownerID)
}

func (r *CompanyRepository) UpdateLogo(ctx context.Context, id, logo string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE companies SET logo = $1, updated_at = now() WHERE id = $2
	`, logo, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) getOne(ctx context.Context, query, arg string) (*entity.Company, error) {
	c := &entity.Company{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.Description, &c.Location, &c.Logo, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)
