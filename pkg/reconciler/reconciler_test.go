package reconciler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
)

// memorySource is a mutable stand-in for the notification store, newest first.
type memorySource struct {
	mu   sync.Mutex
	rows []notification.Notification
	err  error
}

func (s *memorySource) List(_ context.Context, _ string) ([]notification.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]notification.Notification, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *memorySource) set(rows ...notification.Notification) {
	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()
}

type collector struct {
	mu  sync.Mutex
	ids []int64
}

func (c *collector) sink(n notification.Notification) {
	c.mu.Lock()
	c.ids = append(c.ids, n.ID)
	c.mu.Unlock()
}

func (c *collector) seen() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]int64, len(c.ids))
	copy(out, c.ids)
	return out
}

func n(id int64) notification.Notification {
	return notification.Notification{ID: id, UserID: "alice", Type: notification.TypeGeneric}
}

func TestRefetch(t *testing.T) {
	ctx := context.Background()

	t.Run("new entries surface once, oldest first", func(t *testing.T) {
		src := &memorySource{}
		src.set(n(3), n(2), n(1))
		c := &collector{}
		r := New(src, "alice", time.Minute, c.sink)

		require.NoError(t, r.Refetch(ctx))
		assert.Equal(t, []int64{1, 2, 3}, c.seen())
	})

	t.Run("unchanged store surfaces nothing on repeat", func(t *testing.T) {
		src := &memorySource{}
		src.set(n(2), n(1))
		c := &collector{}
		r := New(src, "alice", time.Minute, c.sink)

		require.NoError(t, r.Refetch(ctx))
		require.NoError(t, r.Refetch(ctx))
		require.NoError(t, r.Refetch(ctx))
		assert.Equal(t, []int64{1, 2}, c.seen())
	})

	t.Run("only the delta surfaces after new writes", func(t *testing.T) {
		src := &memorySource{}
		src.set(n(1))
		c := &collector{}
		r := New(src, "alice", time.Minute, c.sink)

		require.NoError(t, r.Refetch(ctx))
		src.set(n(3), n(2), n(1))
		require.NoError(t, r.Refetch(ctx))
		assert.Equal(t, []int64{1, 2, 3}, c.seen())
	})

	t.Run("vanished ids are forgotten and may resurface", func(t *testing.T) {
		src := &memorySource{}
		src.set(n(1))
		c := &collector{}
		r := New(src, "alice", time.Minute, c.sink)

		require.NoError(t, r.Refetch(ctx))
		src.set()
		require.NoError(t, r.Refetch(ctx))

		// The store reusing an id after deletion counts as a new entry.
		src.set(n(1))
		require.NoError(t, r.Refetch(ctx))
		assert.Equal(t, []int64{1, 1}, c.seen())
	})

	t.Run("sad path - source failure leaves the view untouched", func(t *testing.T) {
		src := &memorySource{}
		src.set(n(1))
		c := &collector{}
		r := New(src, "alice", time.Minute, c.sink)

		require.NoError(t, r.Refetch(ctx))

		src.err = errors.New("store down")
		assert.Error(t, r.Refetch(ctx))

		src.err = nil
		require.NoError(t, r.Refetch(ctx))
		assert.Equal(t, []int64{1}, c.seen())
	})
}

func TestRunAndWake(t *testing.T) {
	t.Run("wake triggers an out-of-cycle refetch", func(t *testing.T) {
		src := &memorySource{}
		src.set(n(1))
		c := &collector{}
		// Interval far beyond the test horizon so only Wake can trigger.
		r := New(src, "alice", time.Hour, c.sink)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		done := make(chan struct{})
		go func() {
			_ = r.Run(ctx)
			close(done)
		}()

		require.Eventually(t, func() bool {
			return len(c.seen()) == 1
		}, 2*time.Second, 10*time.Millisecond, "initial refetch")

		src.set(n(2), n(1))
		r.Wake()
		require.Eventually(t, func() bool {
			ids := c.seen()
			return len(ids) == 2 && ids[1] == 2
		}, 2*time.Second, 10*time.Millisecond, "refetch after wake")

		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not stop on cancel")
		}
	})

	t.Run("redundant wakes coalesce", func(t *testing.T) {
		r := New(&memorySource{}, "alice", time.Hour, func(notification.Notification) {})
		// Must not block even with no loop draining the channel.
		for i := 0; i < 10; i++ {
			r.Wake()
		}
	})
}
