package repository

import (
	"errors"

	"identity-service/internal/domain/entity"
)

// ErrDuplicateEmail is returned by Create when the storage-level unique
// constraint on email rejects the insert. It is the authoritative guard
// against concurrent duplicate registrations; the use-case pre-check is
// only a fast path.
var ErrDuplicateEmail = errors.New("duplicate email")

// UsersRepository defines the persistence capability for user records.
// Create assigns ID, CreatedAt, and UpdatedAt on the passed entity.
// GetByEmail and GetByID return (nil, nil) when no record matches.
type UsersRepository interface {
	Create(u *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
