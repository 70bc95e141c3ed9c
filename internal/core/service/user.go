package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/uqcareers/jobboard-api/internal/core/domain"
	"github.com/uqcareers/jobboard-api/internal/core/ports"
)

// UserService implements account administration. Both operations are gated
// on the access policy, so only a super_admin principal gets past the first
// line of either method.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// List returns every account.
func (s *UserService) List(ctx context.Context, p domain.Principal) ([]domain.User, error) {
	if _, err := domain.ScopeFor(p.Role, domain.OpListUsers); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// UpdateRole changes the target account's role. The incoming role string is
// validated into the closed enum before the repository is touched, so an
// invalid role can never reach storage.
func (s *UserService) UpdateRole(ctx context.Context, p domain.Principal, userID, role string) error {
	if _, err := domain.ScopeFor(p.Role, domain.OpUpdateUserRole); err != nil {
		return err
	}

	parsed, err := domain.ParseRole(role)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateRole(ctx, userID, parsed); err != nil {
		return err
	}

	s.log.Info().
		Str("actor", p.Username).
		Str("user_id", userID).
		Str("role", string(parsed)).
		Msg("user role updated")
	return nil
}
