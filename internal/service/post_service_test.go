package service

import (
	"context"
	"strings"
	"testing"

	"karmafeed/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost_Success(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.createFn = func(_ context.Context, post *models.Post) error {
		post.ID = 5
		return nil
	}
	postRepo.getByIDFn = func(_ context.Context, id, currentUserID uint) (*models.Post, error) {
		assert.Equal(t, uint(1), currentUserID)
		return &models.Post{ID: id, UserID: 1, Content: "first"}, nil
	}

	svc := NewPostService(postRepo)
	post, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Content: "first"})
	require.NoError(t, err)
	assert.Equal(t, uint(5), post.ID)
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo())

	_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1})
	assertValidationError(t, err)

	_, err = svc.CreatePost(context.Background(), CreatePostInput{
		UserID:  1,
		Content: strings.Repeat("a", maxPostLen+1),
	})
	assertValidationError(t, err)
}

func TestPostService_ListPosts_PassesPagination(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.listFn = func(_ context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
		assert.Equal(t, 20, limit)
		assert.Equal(t, 40, offset)
		assert.Equal(t, uint(3), currentUserID)
		return []*models.Post{{ID: 1}}, nil
	}

	svc := NewPostService(postRepo)
	posts, err := svc.ListPosts(context.Background(), 20, 40, 3)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}
