package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	cacheport "github.com/luizfilipeschaeffer/omni/internal/infrastructure/cache/port"
	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

const unreadCountTTL = 15 * time.Second

func unreadCountKey(userID string) string {
	return "notif:unread:" + userID
}

// invalidateUnreadCount drops the cached badge count after a write. Cache
// failures are logged and swallowed; the store remains the source of truth.
func invalidateUnreadCount(ctx context.Context, cache cacheport.Cache, userID string) {
	if cache == nil {
		return
	}
	if _, err := cache.Del(ctx, unreadCountKey(userID)); err != nil {
		slog.Debug("unread count invalidation failed", "user", userID, "err", err)
	}
}

// CountUnreadInput identifies whose badge count to compute.
type CountUnreadInput struct {
	UserID string
}

// CountUnreadUseCase serves the unread badge. The count is cached with a short
// TTL because clients poll it aggressively; a stale value self-corrects within
// the TTL even when a writer skipped invalidation.
type CountUnreadUseCase struct {
	Repo  repository.NotificationRepository
	Cache cacheport.Cache
}

func NewCountUnreadUseCase(repo repository.NotificationRepository, cache cacheport.Cache) *CountUnreadUseCase {
	return &CountUnreadUseCase{Repo: repo, Cache: cache}
}

func (uc *CountUnreadUseCase) Execute(ctx context.Context, in CountUnreadInput) (int64, error) {
	if in.UserID == "" {
		return 0, apperrors.InvalidArg("user id is required")
	}

	key := unreadCountKey(in.UserID)
	if uc.Cache != nil {
		if v, err := uc.Cache.Get(ctx, key); err == nil {
			if count, convErr := strconv.ParseInt(v, 10, 64); convErr == nil {
				return count, nil
			}
		} else if err != cacheport.ErrMiss {
			slog.Debug("unread count cache read failed", "user", in.UserID, "err", err)
		}
	}

	count, err := uc.Repo.CountUnread(ctx, in.UserID)
	if err != nil {
		return 0, storeErr(err)
	}

	if uc.Cache != nil {
		if err := uc.Cache.Set(ctx, key, strconv.FormatInt(count, 10), unreadCountTTL); err != nil {
			slog.Debug("unread count cache write failed", "user", in.UserID, "err", err)
		}
	}
	return count, nil
}
