package ports

import (
	"context"

	"github.com/uqcareers/jobboard-api/internal/core/domain"
)

// JobRepository reads the job-postings catalog. Every query takes the
// caller's scope; the repository composes it with any further filtering so
// out-of-scope rows never leave the store.
type JobRepository interface {
	List(ctx context.Context, scope domain.Scope) ([]domain.Job, error)
	// Search returns jobs matching the keyword case-insensitively against
	// title or org, ANDed with the scope.
	Search(ctx context.Context, scope domain.Scope, keyword string) ([]domain.Job, error)
}
