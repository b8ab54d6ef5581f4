package models

import "time"

// KarmaEvent is an immutable, append-only award of points to a user,
// written in the same transaction as the like that caused it. The event
// log is the sole source of truth for karma; no running total exists
// anywhere, which keeps leaderboard reads consistent with the log.
type KarmaEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Points     int       `gorm:"not null" json:"points"`
	SourceType string    `gorm:"not null;size:50" json:"source_type"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// LeaderboardEntry is one ranked row of the windowed karma leaderboard.
type LeaderboardEntry struct {
	UserID     uint   `json:"user_id"`
	Username   string `json:"username"`
	TotalKarma int64  `json:"total_karma"`
}
