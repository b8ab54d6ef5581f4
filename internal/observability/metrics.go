// Package observability provides Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LikesRecorded counts successfully recorded likes by target kind.
	LikesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "karmafeed_likes_recorded_total",
		Help: "Total number of likes recorded, by target kind",
	}, []string{"target"})

	// DuplicateLikes counts like attempts rejected by the uniqueness constraint.
	DuplicateLikes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "karmafeed_duplicate_likes_total",
		Help: "Total number of like attempts rejected as duplicates, by target kind",
	}, []string{"target"})

	// KarmaPointsAwarded counts karma points appended to the event log.
	KarmaPointsAwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "karmafeed_karma_points_awarded_total",
		Help: "Total karma points appended to the event log",
	})

	// LeaderboardQueryLatency records leaderboard aggregate query latency.
	LeaderboardQueryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "karmafeed_leaderboard_query_latency_seconds",
		Help:    "Leaderboard aggregate query latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "karmafeed_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})
)
