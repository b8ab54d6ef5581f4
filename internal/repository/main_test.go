package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"karmafeed/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database and applies the
// schema. cache=shared keeps the database alive across pooled connections;
// the per-test name keeps tests isolated from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.KarmaEvent{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createPost(t *testing.T, db *gorm.DB, author *models.User, content string) *models.Post {
	t.Helper()
	post := &models.Post{UserID: author.ID, Content: content}
	require.NoError(t, db.Create(post).Error)
	return post
}

func createComment(t *testing.T, db *gorm.DB, author *models.User, post *models.Post, parentID *uint, content string) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		UserID:   author.ID,
		PostID:   post.ID,
		ParentID: parentID,
		Content:  content,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func createKarmaEvent(t *testing.T, db *gorm.DB, userID uint, points int, source string, at time.Time) {
	t.Helper()
	event := &models.KarmaEvent{
		UserID:     userID,
		Points:     points,
		SourceType: source,
		CreatedAt:  at,
	}
	require.NoError(t, db.Create(event).Error)
}
