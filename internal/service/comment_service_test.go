package service

import (
	"context"
	"strings"
	"testing"

	"karmafeed/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_CreateComment_Success(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, comment *models.Comment) error {
		comment.ID = 11
		return nil
	}
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, PostID: 2, UserID: 1, Content: "hello"}, nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo())
	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  1,
		PostID:  2,
		Content: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(11), comment.ID)
}

func TestCommentService_CreateComment_PostMissing(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", 999)
	}

	svc := NewCommentService(noopCommentRepo(), postRepo)
	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  1,
		PostID:  999,
		Content: "hello",
	})
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestCommentService_CreateComment_ContentValidation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopPostRepo())

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, PostID: 2})
	assertValidationError(t, err)

	_, err = svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  1,
		PostID:  2,
		Content: strings.Repeat("a", maxCommentLen+1),
	})
	assertValidationError(t, err)
}

func TestCommentService_CreateComment_ParentMustBelongToPost(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, PostID: 7}, nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo())
	parentID := uint(4)
	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:   1,
		PostID:   2,
		ParentID: &parentID,
		Content:  "reply",
	})
	assertValidationError(t, err)
}

func TestCommentService_CreateComment_ParentMissing(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
		return nil, models.NewNotFoundError("Comment", 4)
	}

	svc := NewCommentService(commentRepo, noopPostRepo())
	parentID := uint(4)
	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:   1,
		PostID:   2,
		ParentID: &parentID,
		Content:  "reply",
	})
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestCommentService_GetCommentForest(t *testing.T) {
	t.Parallel()

	parentID := uint(1)
	commentRepo := noopCommentRepo()
	commentRepo.listByPostFn = func(_ context.Context, postID uint) ([]*models.Comment, error) {
		assert.Equal(t, uint(2), postID)
		return []*models.Comment{
			{ID: 1, PostID: 2, Content: "root"},
			{ID: 2, PostID: 2, ParentID: &parentID, Content: "child"},
		}, nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo())
	forest, err := svc.GetCommentForest(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, uint(2), forest[0].Children[0].ID)
}

func TestCommentService_GetCommentForest_PostMissing(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, _, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", 999)
	}

	svc := NewCommentService(noopCommentRepo(), postRepo)
	_, err := svc.GetCommentForest(context.Background(), 999)
	assertAppErrorCode(t, err, models.CodeNotFound)
}
