package service

import (
	"context"
	"errors"

	"github.com/uqcareers/jobboard-api/internal/core/domain"
	"github.com/uqcareers/jobboard-api/internal/core/ports"
)

// Resolver turns a presented token into a live Principal. It is the single
// point where "valid signature" is distinguished from "valid live identity":
// the subject is re-read from the account store on every request, so a token
// for a since-deleted account is rejected and a role change is visible
// immediately.
type Resolver struct {
	tokens ports.TokenService
	repo   ports.UserRepository
}

func NewResolver(tokens ports.TokenService, repo ports.UserRepository) *Resolver {
	return &Resolver{tokens: tokens, repo: repo}
}

func (r *Resolver) Resolve(ctx context.Context, token string) (domain.Principal, error) {
	subject, err := r.tokens.Verify(token)
	if err != nil {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	user, err := r.repo.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Principal{}, domain.ErrInvalidToken
		}
		return domain.Principal{}, err
	}

	return domain.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
