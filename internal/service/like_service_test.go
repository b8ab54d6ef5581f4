package service

import (
	"context"
	"errors"
	"testing"

	"karmafeed/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeService_RecordLike_Success(t *testing.T) {
	t.Parallel()

	postID := uint(7)
	ledger := &ledgerStub{
		recordLikeFn: func(_ context.Context, actorID uint, target models.LikeTarget, targetID uint) (*models.Like, error) {
			assert.Equal(t, uint(1), actorID)
			assert.Equal(t, models.LikeTargetPost, target)
			assert.Equal(t, postID, targetID)
			return &models.Like{ID: 3, UserID: actorID, PostID: &postID}, nil
		},
	}

	svc := NewLikeService(ledger)
	like, err := svc.RecordLike(context.Background(), RecordLikeInput{
		ActorID:  1,
		Target:   models.LikeTargetPost,
		TargetID: postID,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), like.ID)
	assert.Equal(t, models.LikeTargetPost, like.Target())
}

func TestLikeService_RecordLike_InvalidTargetKind(t *testing.T) {
	t.Parallel()

	called := false
	ledger := &ledgerStub{
		recordLikeFn: func(_ context.Context, _ uint, _ models.LikeTarget, _ uint) (*models.Like, error) {
			called = true
			return nil, nil
		},
	}

	svc := NewLikeService(ledger)
	_, err := svc.RecordLike(context.Background(), RecordLikeInput{
		ActorID:  1,
		Target:   models.LikeTarget("user"),
		TargetID: 1,
	})
	assertValidationError(t, err)
	assert.False(t, called, "ledger must not be reached for an invalid target kind")
}

func TestLikeService_RecordLike_DuplicatePropagated(t *testing.T) {
	t.Parallel()

	ledger := &ledgerStub{
		recordLikeFn: func(_ context.Context, _ uint, target models.LikeTarget, targetID uint) (*models.Like, error) {
			return nil, models.NewDuplicateLikeError(target, targetID)
		},
	}

	svc := NewLikeService(ledger)
	_, err := svc.RecordLike(context.Background(), RecordLikeInput{
		ActorID:  1,
		Target:   models.LikeTargetComment,
		TargetID: 4,
	})
	assertAppErrorCode(t, err, models.CodeDuplicateLike)
}

func TestLikeService_RecordLike_StorageErrorPropagated(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("connection reset")
	ledger := &ledgerStub{
		recordLikeFn: func(_ context.Context, _ uint, _ models.LikeTarget, _ uint) (*models.Like, error) {
			return nil, repoErr
		},
	}

	svc := NewLikeService(ledger)
	_, err := svc.RecordLike(context.Background(), RecordLikeInput{
		ActorID:  1,
		Target:   models.LikeTargetPost,
		TargetID: 1,
	})
	assert.ErrorIs(t, err, repoErr)
}
