package memory

import (
	"context"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/internal/domain/repository"
)

type CompanyRepository struct{ s *Store }

func (r *CompanyRepository) Create(_ context.Context, c *entity.Company) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[c.OwnerID]; !ok {
		return repository.ErrNotFound
	}
	if _, taken := s.companyByOwner[c.OwnerID]; taken {
		return repository.ErrDuplicate
	}
	id, now, _ := s.stamp()
	c.ID, c.CreatedAt, c.UpdatedAt = id, now, now
	s.companies[id] = *c
	s.companyByOwner[c.OwnerID] = id
	return nil
}

func (r *CompanyRepository) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.companies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *CompanyRepository) GetByOwner(ctx context.Context, ownerID string) (*entity.Company, error) {
	r.s.mu.RLock()
	id, ok := r.s.companyByOwner[ownerID]
	r.s.mu.RUnlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *CompanyRepository) UpdateLogo(_ context.Context, id, logo string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.companies[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Logo = logo
	c.UpdatedAt = s.now().UTC()
	s.companies[id] = c
	return nil
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)
