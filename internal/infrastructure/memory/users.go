package memory

import (
	"context"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/internal/domain/repository"
)

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usersByEmail[u.Email]; taken {
		return repository.ErrDuplicate
	}
	id, now, _ := s.stamp()
	u.ID, u.CreatedAt, u.UpdatedAt = id, now, now
	s.users[id] = *u
	s.usersByEmail[u.Email] = id
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	id, ok := r.s.usersByEmail[email]
	r.s.mu.RUnlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

var _ repository.UserRepository = (*UserRepository)(nil)
