// Package metrics defines and registers all custom Prometheus metrics for
// the content platform. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry via promauto at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "publishing"

// ── Identity metrics ─────────────────────────────────────────────────────────

// RegistrationsTotal counts successful user registrations.
// Label:
//   - role: the role assigned to the new account ("reader", "creator", "admin")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered users, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found", "invalid_password", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Repository metrics ───────────────────────────────────────────────────────

// QueryDuration measures how long a repository operation takes against the
// document store, population included.
// Labels:
//   - collection: the target collection ("users", "topics", "contents", ...)
//   - operation: "create", "find", "find_one", "update", or "delete"
var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "repository_query_duration_seconds",
		Help:      "Duration of repository operations against MongoDB.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"collection", "operation"},
)

// ── Topic cache metrics ──────────────────────────────────────────────────────

// TopicCacheTotal counts capability lookups served by the Redis topic cache.
// Label:
//   - result: "hit" (served from cache) or "miss" (fell through to the store)
var TopicCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "topic_cache_total",
		Help:      "Total number of topic capability lookups, labelled by cache result.",
	},
	[]string{"result"},
)
