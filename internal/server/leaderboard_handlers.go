package server

import (
	"time"

	"karmafeed/internal/models"
	"karmafeed/internal/service"

	"github.com/gofiber/fiber/v2"
)

// parseWindow reads the optional ?window= query as a Go duration string
// ("24h", "168h"). Zero means the default window.
func parseWindow(c *fiber.Ctx) (time.Duration, error) {
	raw := c.Query("window")
	if raw == "" {
		return 0, nil
	}
	window, err := time.ParseDuration(raw)
	if err != nil || window <= 0 {
		return 0, models.NewValidationError("Invalid window; use a duration like 24h")
	}
	return window, nil
}

// GetLeaderboard handles GET /api/leaderboard (public). Returns the top
// karma earners for the trailing window, default the last 7 days.
func (s *Server) GetLeaderboard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	window, err := parseWindow(c)
	if err != nil {
		return respondError(c, err)
	}
	limit := c.QueryInt("limit", service.DefaultLeaderboardLimit)

	entries, err := s.karmaService.Leaderboard(ctx, window, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"leaderboard": entries})
}

// GetFullLeaderboard handles GET /api/leaderboard/full (public). Same as
// GetLeaderboard but with the maximum row count.
func (s *Server) GetFullLeaderboard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	window, err := parseWindow(c)
	if err != nil {
		return respondError(c, err)
	}

	entries, err := s.karmaService.Leaderboard(ctx, window, service.MaxLeaderboardLimit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"leaderboard": entries})
}

// GetUserKarma handles GET /api/users/:id/karma (public).
func (s *Server) GetUserKarma(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	window, err := parseWindow(c)
	if err != nil {
		return respondError(c, err)
	}

	// 404 for unknown users rather than a zero total.
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return respondError(c, err)
	}

	total, err := s.karmaService.UserKarma(ctx, userID, window)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"user_id":     userID,
		"total_karma": total,
	})
}
