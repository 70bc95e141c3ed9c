package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/uqcareers/jobboard-api/internal/api/metrics"
	"github.com/uqcareers/jobboard-api/internal/core/domain"
	"github.com/uqcareers/jobboard-api/internal/core/ports"
)

// JobCache abstracts the listing cache (Redis). A miss or a cache failure
// always falls through to the repository.
type JobCache interface {
	Get(ctx context.Context, scope domain.Scope) ([]domain.Job, bool, error)
	Set(ctx context.Context, scope domain.Scope, jobs []domain.Job) error
}

// JobService answers catalog reads, constrained to the scope the access
// policy grants the caller's role.
type JobService struct {
	repo  ports.JobRepository
	cache JobCache
	log   zerolog.Logger
}

// NewJobService returns a JobService. cache may be nil, in which case every
// listing hits the repository.
func NewJobService(repo ports.JobRepository, cache JobCache, log zerolog.Logger) *JobService {
	return &JobService{repo: repo, cache: cache, log: log}
}

// List returns the postings visible to the principal's role.
func (s *JobService) List(ctx context.Context, p domain.Principal) ([]domain.Job, error) {
	scope, err := domain.ScopeFor(p.Role, domain.OpListJobs)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		jobs, ok, cacheErr := s.cache.Get(ctx, scope)
		switch {
		case cacheErr != nil:
			metrics.JobCacheTotal.WithLabelValues("error").Inc()
			s.log.Warn().Err(cacheErr).Msg("job cache read failed, falling back to store")
		case ok:
			metrics.JobCacheTotal.WithLabelValues("hit").Inc()
			return jobs, nil
		default:
			metrics.JobCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	jobs, err := s.repo.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, scope, jobs); cacheErr != nil {
			s.log.Warn().Err(cacheErr).Msg("job cache write failed")
		}
	}
	return jobs, nil
}

// Search returns postings matching keyword case-insensitively against title
// or org, restricted to the principal's scope. An empty keyword degenerates
// to a plain scoped listing. Search results are not cached.
func (s *JobService) Search(ctx context.Context, p domain.Principal, keyword string) ([]domain.Job, error) {
	scope, err := domain.ScopeFor(p.Role, domain.OpSearchJobs)
	if err != nil {
		return nil, err
	}

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.repo.List(ctx, scope)
	}
	return s.repo.Search(ctx, scope, keyword)
}
