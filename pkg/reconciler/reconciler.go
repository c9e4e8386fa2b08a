// Package reconciler keeps a client-side view of the notification log in sync
// with the store. The store is the only source of truth: push frames reaching
// the client just request an out-of-cycle refetch, their payloads are never
// merged into the view directly. A client that missed every push converges on
// the next poll tick.
package reconciler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
)

// Source lists the current notifications for a user, newest first.
type Source interface {
	List(ctx context.Context, userID string) ([]notification.Notification, error)
}

// Sink receives each notification exactly once, when it first appears in a
// refetch.
type Sink func(notification.Notification)

type Reconciler struct {
	source   Source
	sink     Sink
	userID   string
	interval time.Duration
	wake     chan struct{}

	mu   sync.Mutex
	seen map[int64]struct{}
}

func New(source Source, userID string, interval time.Duration, sink Sink) *Reconciler {
	return &Reconciler{
		source:   source,
		sink:     sink,
		userID:   userID,
		interval: interval,
		wake:     make(chan struct{}, 1),
		seen:     make(map[int64]struct{}),
	}
}

// Wake requests an out-of-cycle refetch. Safe to call from any goroutine;
// multiple calls before the loop services them coalesce into one refetch.
func (r *Reconciler) Wake() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Run refetches immediately, then on every interval tick and every Wake,
// until ctx is canceled. Refetch failures are logged and retried on the next
// trigger; they never stop the loop.
func (r *Reconciler) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	if err := r.Refetch(ctx); err != nil {
		slog.Debug("reconciler refetch failed", "user_id", r.userID, "err", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		case <-r.wake:
		}
		if err := r.Refetch(ctx); err != nil {
			slog.Debug("reconciler refetch failed", "user_id", r.userID, "err", err)
		}
	}
}

// Refetch loads the current log and reconciles the local view against it:
// entries never seen before are surfaced through the sink, entries that
// vanished from the store are forgotten so their ids can be garbage collected.
// Calling it repeatedly with an unchanged store surfaces nothing.
func (r *Reconciler) Refetch(ctx context.Context) error {
	ns, err := r.source.List(ctx, r.userID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	present := make(map[int64]struct{}, len(ns))
	var fresh []notification.Notification
	for _, n := range ns {
		present[n.ID] = struct{}{}
		if _, ok := r.seen[n.ID]; !ok {
			r.seen[n.ID] = struct{}{}
			fresh = append(fresh, n)
		}
	}
	for id := range r.seen {
		if _, ok := present[id]; !ok {
			delete(r.seen, id)
		}
	}

	// Source order is newest first; surface oldest first so the sink sees
	// events in the order they happened.
	for i := len(fresh) - 1; i >= 0; i-- {
		r.sink(fresh[i])
	}
	return nil
}
