package ports

import (
	"context"

	"github.com/uqcareers/jobboard-api/internal/core/domain"
)

// UserService exposes account administration, restricted to super_admin.
type UserService interface {
	List(ctx context.Context, p domain.Principal) ([]domain.User, error)
	// UpdateRole sets the target account's role. The role string is
	// validated against the closed enum before any storage write.
	UpdateRole(ctx context.Context, p domain.Principal, userID, role string) error
}
