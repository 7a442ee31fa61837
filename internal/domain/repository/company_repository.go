package repository

import (
	"context"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
)

// CompanyRepository persists companies. Create returns ErrDuplicate when the
// owner already has a company.
type CompanyRepository interface {
	Create(ctx context.Context, c *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByOwner(ctx context.Context, ownerID string) (*entity.Company, error)
	UpdateLogo(ctx context.Context, id, logo string) error
}
