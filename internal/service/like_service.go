// Package service contains the application's business logic, composed from
// the repository layer.
package service

import (
	"context"
	"errors"

	"karmafeed/internal/models"
	"karmafeed/internal/observability"
	"karmafeed/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// LikeService turns a like action into a durable, de-duplicated fact plus a
// deterministic karma award. All correctness (atomicity, duplicate
// rejection) is delegated to the ledger repository's transaction and the
// storage uniqueness constraints; this layer validates input and records
// telemetry. It holds no state between calls, so any number of likes may
// be recorded concurrently.
type LikeService struct {
	ledger repository.LedgerRepository
}

// RecordLikeInput carries a like action. ActorID is the resolved principal
// supplied by the authentication layer; there is no ambient current user.
type RecordLikeInput struct {
	ActorID  uint
	Target   models.LikeTarget
	TargetID uint
}

// NewLikeService creates a new LikeService
func NewLikeService(ledger repository.LedgerRepository) *LikeService {
	return &LikeService{ledger: ledger}
}

// RecordLike records the like and its karma award. A duplicate is a
// rejected-but-expected outcome and is not retried; transient storage
// failures propagate so the caller can retry, which is safe because the
// uniqueness constraint absorbs re-submissions.
func (s *LikeService) RecordLike(ctx context.Context, in RecordLikeInput) (*models.Like, error) {
	if !in.Target.Valid() {
		return nil, models.NewValidationError("Unknown like target kind")
	}

	span, ctx := observability.NewSpan(ctx, "ledger.record_like")
	defer span.End()
	span.AddAttributes(
		attribute.String("like.target", string(in.Target)),
		attribute.Int64("like.target_id", int64(in.TargetID)),
	)

	like, err := s.ledger.RecordLike(ctx, in.ActorID, in.Target, in.TargetID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeDuplicateLike {
			observability.DuplicateLikes.WithLabelValues(string(in.Target)).Inc()
		}
		span.SetError(err)
		return nil, err
	}

	observability.LikesRecorded.WithLabelValues(string(in.Target)).Inc()
	observability.KarmaPointsAwarded.Add(float64(in.Target.Points()))
	return like, nil
}
