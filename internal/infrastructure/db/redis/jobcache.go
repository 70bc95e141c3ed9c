package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/uqcareers/jobboard-api/internal/core/domain"
)

const cacheTTL = time.Minute

// JobCache caches scoped job listings in Redis for a short TTL. The catalog
// changes out of band, so a stale window of cacheTTL is acceptable.
// Key format: jobs:all for unrestricted scope, jobs:org:<org> otherwise.
type JobCache struct {
	client *redis.Client
}

// NewJobCache creates a JobCache wrapping the given Redis client.
func NewJobCache(client *redis.Client) *JobCache {
	return &JobCache{client: client}
}

// Get returns the cached listing for the scope, reporting whether there was a hit.
func (c *JobCache) Get(ctx context.Context, scope domain.Scope) ([]domain.Job, bool, error) {
	raw, err := c.client.Get(ctx, c.key(scope)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("job cache get: %w", err)
	}

	var jobs []domain.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, false, fmt.Errorf("job cache decode: %w", err)
	}
	return jobs, true, nil
}

// Set stores the listing for the scope (expires after cacheTTL).
func (c *JobCache) Set(ctx context.Context, scope domain.Scope, jobs []domain.Job) error {
	raw, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("job cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(scope), raw, cacheTTL).Err()
}

func (c *JobCache) key(scope domain.Scope) string {
	if scope.Unrestricted() {
		return "jobs:all"
	}
	return "jobs:org:" + scope.Org
}
