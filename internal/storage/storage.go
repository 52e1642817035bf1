package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/userauth-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures the persistence operations the service needs. Lookups
// are exact-match and case-sensitive. CreateUser exists for the seeding
// command only; no HTTP endpoint writes users.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	Close()
}
