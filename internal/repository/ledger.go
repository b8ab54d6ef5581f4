package repository

import (
	"context"
	"errors"

	"karmafeed/internal/models"

	"gorm.io/gorm"
)

// LedgerRepository records like events and their paired karma awards.
type LedgerRepository interface {
	// RecordLike inserts a like for (actorID, target, targetID) and appends a
	// karma event for the target's author, atomically. It returns
	// DUPLICATE_LIKE if the pair already has a like and NOT_FOUND if the
	// target does not exist.
	RecordLike(ctx context.Context, actorID uint, target models.LikeTarget, targetID uint) (*models.Like, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

// RecordLike runs the whole operation inside one transaction so the like
// and its karma event commit together or not at all. Duplicate detection
// is left entirely to the unique indexes on the likes table; a concurrent
// like for the same pair loses at commit time and surfaces here as
// DUPLICATE_LIKE, with the transaction rolled back.
func (r *ledgerRepository) RecordLike(ctx context.Context, actorID uint, target models.LikeTarget, targetID uint) (*models.Like, error) {
	var recorded *models.Like

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := &models.Like{UserID: actorID}

		var recipientID uint
		switch target {
		case models.LikeTargetPost:
			var post models.Post
			if err := tx.First(&post, targetID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.NewNotFoundError("Post", targetID)
				}
				return err
			}
			recipientID = post.UserID
			like.PostID = &post.ID
		case models.LikeTargetComment:
			var comment models.Comment
			if err := tx.First(&comment, targetID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.NewNotFoundError("Comment", targetID)
				}
				return err
			}
			recipientID = comment.UserID
			like.CommentID = &comment.ID
		default:
			return models.NewValidationError("Unknown like target kind")
		}

		if err := tx.Create(like).Error; err != nil {
			if isUniqueViolation(err) {
				return models.NewDuplicateLikeError(target, targetID)
			}
			return err
		}

		event := &models.KarmaEvent{
			UserID:     recipientID,
			Points:     target.Points(),
			SourceType: target.KarmaSource(),
		}
		if err := tx.Create(event).Error; err != nil {
			return err
		}

		recorded = like
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recorded, nil
}
