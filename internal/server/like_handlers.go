package server

import (
	"karmafeed/internal/models"
	"karmafeed/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/posts/:id/like. A repeated like from the same
// user yields 409 and awards no karma.
func (s *Server) LikePost(c *fiber.Ctx) error {
	return s.recordLike(c, models.LikeTargetPost)
}

// LikeComment handles POST /api/comments/:id/like.
func (s *Server) LikeComment(c *fiber.Ctx) error {
	return s.recordLike(c, models.LikeTargetComment)
}

func (s *Server) recordLike(c *fiber.Ctx, target models.LikeTarget) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	like, err := s.likeService.RecordLike(ctx, service.RecordLikeInput{
		ActorID:  userID,
		Target:   target,
		TargetID: targetID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}
