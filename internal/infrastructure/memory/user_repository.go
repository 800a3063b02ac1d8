package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"identity-service/internal/domain/entity"
	"identity-service/internal/domain/repository"
)

// UsersRepository is an in-memory implementation used in tests and as a
// local fallback when no database is configured.
type UsersRepository struct {
	mu    sync.RWMutex
	items []*entity.User
}

func NewUsersRepository() *UsersRepository {
	return &UsersRepository{}
}

func (r *UsersRepository) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}

	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now

	stored := *u
	r.items = append(r.items, &stored)
	return nil
}

func (r *UsersRepository) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.Email == email {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UsersRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

var _ repository.UsersRepository = (*UsersRepository)(nil)
