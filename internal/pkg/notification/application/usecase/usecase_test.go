package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cacheport "github.com/luizfilipeschaeffer/omni/internal/infrastructure/cache/port"
	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// countingStore tracks repository hits so the caching behavior is observable.
type countingStore struct {
	unread     int64
	countCalls int
	markCalls  []int64
	fail       error
}

func (s *countingStore) Append(context.Context, notification.Notification) (int64, error) {
	return 0, nil
}

func (s *countingStore) GetByID(context.Context, int64, string) (*notification.Notification, error) {
	return nil, apperrors.ErrNotificationNotFound
}

func (s *countingStore) ListByTarget(_ context.Context, _ string, limit int) ([]notification.Notification, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	out := make([]notification.Notification, 0, limit)
	for i := int64(1); i <= int64(limit); i++ {
		out = append(out, notification.Notification{ID: i, UserID: "alice", Type: notification.TypeGeneric})
	}
	return out, nil
}

func (s *countingStore) ListSentPending(context.Context, string, int) ([]notification.Notification, error) {
	return nil, nil
}

func (s *countingStore) MarkRead(_ context.Context, id int64, _ string) error {
	if s.fail != nil {
		return s.fail
	}
	s.markCalls = append(s.markCalls, id)
	return nil
}

func (s *countingStore) MarkAllRead(context.Context, string) error { return s.fail }

func (s *countingStore) Delete(context.Context, int64, string) error { return s.fail }

func (s *countingStore) DeleteRead(context.Context, string) (int64, error) { return 2, s.fail }

func (s *countingStore) DeleteReadOlderThan(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (s *countingStore) CountUnread(context.Context, string) (int64, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	s.countCalls++
	return s.unread, nil
}

func (s *countingStore) HasPendingChatRequest(context.Context, string, string) (bool, error) {
	return false, nil
}

func (s *countingStore) HasPendingDeletionRequest(context.Context, string) (bool, error) {
	return false, nil
}

// mapCache is an in-memory Cache; TTLs are recorded but never enforced.
type mapCache struct {
	values map[string]string
	ttls   map[string]time.Duration
	fail   error
}

func newMapCache() *mapCache {
	return &mapCache{values: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (c *mapCache) Get(_ context.Context, key string) (string, error) {
	if c.fail != nil {
		return "", c.fail
	}
	v, ok := c.values[key]
	if !ok {
		return "", cacheport.ErrMiss
	}
	return v, nil
}

func (c *mapCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if c.fail != nil {
		return c.fail
	}
	c.values[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *mapCache) Del(_ context.Context, keys ...string) (int64, error) {
	if c.fail != nil {
		return 0, c.fail
	}
	var n int64
	for _, k := range keys {
		if _, ok := c.values[k]; ok {
			delete(c.values, k)
			n++
		}
	}
	return n, nil
}

func (c *mapCache) Ping(context.Context) error { return nil }

func (c *mapCache) Close() error { return nil }

func TestCountUnreadUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - second read served from cache", func(t *testing.T) {
		store := &countingStore{unread: 4}
		cache := newMapCache()
		uc := NewCountUnreadUseCase(store, cache)

		count, err := uc.Execute(ctx, CountUnreadInput{UserID: "alice"})
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		count, err = uc.Execute(ctx, CountUnreadInput{UserID: "alice"})
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
		assert.Equal(t, 1, store.countCalls)
		assert.Equal(t, unreadCountTTL, cache.ttls[unreadCountKey("alice")])
	})

	t.Run("cache failure falls through to the store", func(t *testing.T) {
		store := &countingStore{unread: 2}
		cache := newMapCache()
		cache.fail = errors.New("redis down")
		uc := NewCountUnreadUseCase(store, cache)

		count, err := uc.Execute(ctx, CountUnreadInput{UserID: "alice"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.Equal(t, 1, store.countCalls)
	})

	t.Run("nil cache is allowed", func(t *testing.T) {
		store := &countingStore{unread: 1}
		uc := NewCountUnreadUseCase(store, nil)

		count, err := uc.Execute(ctx, CountUnreadInput{UserID: "alice"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("sad path - store failure surfaces as internal", func(t *testing.T) {
		store := &countingStore{fail: errors.New("connection refused")}
		uc := NewCountUnreadUseCase(store, newMapCache())

		_, err := uc.Execute(ctx, CountUnreadInput{UserID: "alice"})
		assert.Equal(t, apperrors.CodeInternal, apperrors.CodeOf(err))
	})
}

func TestMarkReadUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - cached badge invalidated", func(t *testing.T) {
		store := &countingStore{unread: 3}
		cache := newMapCache()
		countUC := NewCountUnreadUseCase(store, cache)
		markUC := NewMarkReadUseCase(store, cache)

		_, err := countUC.Execute(ctx, CountUnreadInput{UserID: "alice"})
		require.NoError(t, err)
		require.Contains(t, cache.values, unreadCountKey("alice"))

		require.NoError(t, markUC.Execute(ctx, MarkReadInput{UserID: "alice", NotificationID: 9}))
		assert.Equal(t, []int64{9}, store.markCalls)
		assert.NotContains(t, cache.values, unreadCountKey("alice"))
	})

	t.Run("sad path - missing input", func(t *testing.T) {
		uc := NewMarkReadUseCase(&countingStore{}, nil)
		err := uc.Execute(ctx, MarkReadInput{UserID: "", NotificationID: 9})
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})
}

func TestListNotificationsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - page capped at limit", func(t *testing.T) {
		uc := NewListNotificationsUseCase(&countingStore{})

		ns, err := uc.Execute(ctx, ListNotificationsInput{UserID: "alice", Limit: 5})
		require.NoError(t, err)
		assert.Len(t, ns, 5)
	})

	t.Run("sad path - store failure surfaces as internal", func(t *testing.T) {
		uc := NewListNotificationsUseCase(&countingStore{fail: errors.New("boom")})

		_, err := uc.Execute(ctx, ListNotificationsInput{UserID: "alice", Limit: 5})
		assert.Equal(t, apperrors.CodeInternal, apperrors.CodeOf(err))
	})
}
