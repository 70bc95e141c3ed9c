// Package metrics defines and registers all custom Prometheus metrics for the
// job board API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry via promauto at
// package load; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "conflict" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenResolutionsTotal counts bearer-token resolutions performed by the
// auth middleware.
// Label:
//   - result: "ok", "rejected" (invalid token) or "error" (store failure)
var TokenResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_resolutions_total",
		Help:      "Total number of bearer token resolutions, by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts authorization denials (authenticated principals
// whose role does not permit the requested operation).
// Labels:
//   - operation: the denied operation (e.g. "list_users")
//   - role: the principal's role
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of authorization denials, by operation and role.",
	},
	[]string{"operation", "role"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// JobCacheTotal counts listing-cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var JobCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_cache_total",
		Help:      "Total number of job listing cache lookups, by result.",
	},
	[]string{"result"},
)

// JobQueriesTotal counts catalog reads.
// Labels:
//   - operation: "list" or "search"
//   - scope: "unrestricted" or the restricting org (e.g. "UQ")
var JobQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_queries_total",
		Help:      "Total number of catalog queries, by operation and scope.",
	},
	[]string{"operation", "scope"},
)
