package cache

import (
	"context"
	"fmt"
	"time"
)

// Only entity lookups are cached. Karma totals and the leaderboard are
// always computed from the event log; caching them would reintroduce the
// stale-aggregate problem the append-only design avoids.
const (
	UserKeyPrefix    = "user:%d"
	RefreshKeyPrefix = "refresh:%s"
)

const (
	UserTTL    = 5 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func RefreshKey(token string) string {
	return fmt.Sprintf(RefreshKeyPrefix, token)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
