package ports

import (
	"context"

	"github.com/uqcareers/jobboard-api/internal/core/domain"
)

// UserRepository defines the persistence interface for accounts.
//
// Create must be atomic with respect to the username uniqueness constraint:
// two concurrent inserts of the same username must result in exactly one
// success, with the loser receiving domain.ErrUserExists. Check-then-insert
// at the application layer is not acceptable.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
}
