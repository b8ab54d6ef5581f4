package repository

import (
	"context"
	"time"

	"karmafeed/internal/models"

	"gorm.io/gorm"
)

// KarmaRepository reads aggregates from the append-only karma event log.
type KarmaRepository interface {
	// Leaderboard sums points per user for events at or after `since`,
	// ordered by total descending with ascending user ID as the tie-break.
	Leaderboard(ctx context.Context, since time.Time, limit int) ([]models.LeaderboardEntry, error)
	// UserTotal sums one user's points for events at or after `since`.
	UserTotal(ctx context.Context, userID uint, since time.Time) (int64, error)
}

type karmaRepository struct {
	db *gorm.DB
}

// NewKarmaRepository creates a new KarmaRepository
func NewKarmaRepository(db *gorm.DB) KarmaRepository {
	return &karmaRepository{db: db}
}

func (r *karmaRepository) Leaderboard(ctx context.Context, since time.Time, limit int) ([]models.LeaderboardEntry, error) {
	entries := make([]models.LeaderboardEntry, 0, limit)
	err := r.db.WithContext(ctx).Raw(`
		SELECT users.id AS user_id, users.username AS username, SUM(karma_events.points) AS total_karma
		FROM karma_events
		JOIN users ON users.id = karma_events.user_id
		WHERE karma_events.created_at >= ? AND users.deleted_at IS NULL
		GROUP BY users.id, users.username
		ORDER BY total_karma DESC, user_id ASC
		LIMIT ?`, since, limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *karmaRepository) UserTotal(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(points), 0)
		FROM karma_events
		WHERE user_id = ? AND created_at >= ?`, userID, since).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
