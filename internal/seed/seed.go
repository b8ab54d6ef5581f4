// Package seed provides database seeding utilities for development and
// testing.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"karmafeed/internal/models"
	"karmafeed/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with demo data. Likes go through the
// ledger repository so every like also produces its karma event, the same
// path production traffic takes.
type Seeder struct {
	db     *gorm.DB
	ledger repository.LedgerRepository
	rng    *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:     db,
		ledger: repository.NewLedgerRepository(db),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Order matters for foreign keys.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"karma_events", "likes", "comments", "posts", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// Run seeds users, posts, threaded comments, and likes.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 50
	}

	users, err := s.seedUsers(opts.NumUsers)
	if err != nil {
		return err
	}
	log.Printf("Created %d users", len(users))

	posts, err := s.seedPosts(users, opts.NumPosts)
	if err != nil {
		return err
	}
	log.Printf("Created %d posts", len(posts))

	comments, err := s.seedComments(users, posts)
	if err != nil {
		return err
	}
	log.Printf("Created %d comments", len(comments))

	likes, err := s.seedLikes(ctx, users, posts, comments)
	if err != nil {
		return err
	}
	log.Printf("Recorded %d likes (karma events included)", likes)

	return nil
}

func (s *Seeder) seedUsers(n int) ([]*models.User, error) {
	// One bcrypt hash shared by all demo accounts keeps seeding fast.
	hashed, err := bcrypt.GenerateFromPassword([]byte("SeedPassword12!"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:    gofakeit.Email(),
			Password: string(hashed),
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("creating user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedPosts(users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rng.Intn(len(users))]
		post := &models.Post{
			UserID:    author.ID,
			Content:   gofakeit.Paragraph(1, 3, 8, "\n"),
			CreatedAt: s.pastTimestamp(14 * 24 * time.Hour),
		}
		if err := s.db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("creating post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// seedComments writes a mix of root comments and replies. Replies always
// target a comment on the same post, so every tree is well formed.
func (s *Seeder) seedComments(users []*models.User, posts []*models.Post) ([]*models.Comment, error) {
	var comments []*models.Comment
	byPost := make(map[uint][]*models.Comment)

	for _, post := range posts {
		for i := 0; i < s.rng.Intn(6); i++ {
			author := users[s.rng.Intn(len(users))]
			comment := &models.Comment{
				UserID:    author.ID,
				PostID:    post.ID,
				Content:   gofakeit.Sentence(12),
				CreatedAt: s.pastTimestamp(7 * 24 * time.Hour),
			}
			if siblings := byPost[post.ID]; len(siblings) > 0 && s.rng.Intn(2) == 0 {
				parent := siblings[s.rng.Intn(len(siblings))]
				comment.ParentID = &parent.ID
			}
			if err := s.db.Create(comment).Error; err != nil {
				return nil, fmt.Errorf("creating comment: %w", err)
			}
			byPost[post.ID] = append(byPost[post.ID], comment)
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (s *Seeder) seedLikes(ctx context.Context, users []*models.User, posts []*models.Post, comments []*models.Comment) (int, error) {
	recorded := 0
	record := func(actor *models.User, target models.LikeTarget, targetID uint) error {
		_, err := s.ledger.RecordLike(ctx, actor.ID, target, targetID)
		if err != nil {
			var appErr *models.AppError
			// Random pairs collide; the ledger's duplicate rejection is
			// exactly the behavior we want to exercise.
			if errors.As(err, &appErr) && appErr.Code == models.CodeDuplicateLike {
				return nil
			}
			return err
		}
		recorded++
		return nil
	}

	for _, post := range posts {
		for i := 0; i < s.rng.Intn(len(users)); i++ {
			actor := users[s.rng.Intn(len(users))]
			if err := record(actor, models.LikeTargetPost, post.ID); err != nil {
				return recorded, err
			}
		}
	}
	for _, comment := range comments {
		for i := 0; i < s.rng.Intn(4); i++ {
			actor := users[s.rng.Intn(len(users))]
			if err := record(actor, models.LikeTargetComment, comment.ID); err != nil {
				return recorded, err
			}
		}
	}
	return recorded, nil
}

func (s *Seeder) pastTimestamp(maxAge time.Duration) time.Time {
	return time.Now().Add(-time.Duration(s.rng.Int63n(int64(maxAge))))
}
