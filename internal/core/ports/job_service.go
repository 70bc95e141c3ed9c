package ports

import (
	"context"

	"github.com/uqcareers/jobboard-api/internal/core/domain"
)

// JobService serves catalog reads constrained to the caller's role scope.
type JobService interface {
	List(ctx context.Context, p domain.Principal) ([]domain.Job, error)
	Search(ctx context.Context, p domain.Principal, keyword string) ([]domain.Job, error)
}
