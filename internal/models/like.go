package models

import "time"

// LikeTarget identifies what kind of entity a like refers to.
type LikeTarget string

const (
	LikeTargetPost    LikeTarget = "post"
	LikeTargetComment LikeTarget = "comment"
)

// Valid reports whether t is a known target kind.
func (t LikeTarget) Valid() bool {
	return t == LikeTargetPost || t == LikeTargetComment
}

// Points returns the karma awarded to the target's author for a like.
func (t LikeTarget) Points() int {
	if t == LikeTargetPost {
		return 5
	}
	return 1
}

// KarmaSource returns the source type tag recorded on the karma event.
func (t LikeTarget) KarmaSource() string {
	if t == LikeTargetPost {
		return "post_like"
	}
	return "comment_like"
}

// Like records that a user liked exactly one of a post or a comment.
// Rows are immutable and append-only; there is no unlike. Duplicate likes
// are prevented by the unique indexes on (user_id, post_id) and
// (user_id, comment_id) rather than by application-level checks, so
// concurrent likes for the same pair race at the constraint and exactly
// one commits.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post;uniqueIndex:idx_likes_user_comment" json:"user_id"`
	PostID    *uint     `gorm:"uniqueIndex:idx_likes_user_post" json:"post_id,omitempty"`
	CommentID *uint     `gorm:"uniqueIndex:idx_likes_user_comment" json:"comment_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Target returns the kind of entity this like points at.
func (l *Like) Target() LikeTarget {
	if l.PostID != nil {
		return LikeTargetPost
	}
	return LikeTargetComment
}
