package service

import (
	"context"
	"time"

	"karmafeed/internal/models"
	"karmafeed/internal/observability"
	"karmafeed/internal/repository"
)

const (
	// DefaultLeaderboardLimit is the number of rows returned when the
	// caller does not ask for more.
	DefaultLeaderboardLimit = 5
	// MaxLeaderboardLimit caps how many rows a single request may fetch.
	MaxLeaderboardLimit = 100
	// DefaultLeaderboardWindow is the trailing window used when the caller
	// does not specify one.
	DefaultLeaderboardWindow = 7 * 24 * time.Hour
)

// LeaderboardService computes ranked karma snapshots from the append-only
// event log. Pure reads; totals are summed at query time and never cached,
// so results always reflect the committed log.
type LeaderboardService struct {
	karma repository.KarmaRepository
	now   func() time.Time
}

// NewLeaderboardService creates a new LeaderboardService. The now function
// may be nil, in which case time.Now is used; tests inject a fixed clock.
func NewLeaderboardService(karma repository.KarmaRepository, now func() time.Time) *LeaderboardService {
	if now == nil {
		now = time.Now
	}
	return &LeaderboardService{karma: karma, now: now}
}

// Leaderboard returns the top karma earners within the trailing window.
// Ties on total are broken by ascending user ID so the ranking is
// deterministic. Users without events in the window are absent.
func (s *LeaderboardService) Leaderboard(ctx context.Context, window time.Duration, limit int) ([]models.LeaderboardEntry, error) {
	if window <= 0 {
		window = DefaultLeaderboardWindow
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	start := time.Now()
	defer func() {
		observability.LeaderboardQueryLatency.Observe(time.Since(start).Seconds())
	}()

	since := s.now().Add(-window)
	return s.karma.Leaderboard(ctx, since, limit)
}

// UserKarma returns one user's karma total within the trailing window.
func (s *LeaderboardService) UserKarma(ctx context.Context, userID uint, window time.Duration) (int64, error) {
	if window <= 0 {
		window = DefaultLeaderboardWindow
	}
	since := s.now().Add(-window)
	return s.karma.UserTotal(ctx, userID, since)
}
