package task

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	qport "github.com/luizfilipeschaeffer/omni/internal/infrastructure/queue/port"
	repoAdapter "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/adapter"
)

// SweepTaskType is the queue task name for the notification retention sweep.
const SweepTaskType = "notification:sweep"

// SweepTaskPayload carries the retention window. Kept as a wire type so the
// queue payload stays decoupled from configuration structs.
type SweepTaskPayload struct {
	Retention time.Duration `json:"retention"`
}

// RegisterSweepTask binds the retention sweep to the provided server. The
// handler deletes read notifications older than the retention window and then
// re-enqueues itself for the next day, forming a self-perpetuating schedule.
// Unread notifications are never swept: an unread chat_request IS pending
// negotiation state and must survive until the recipient acts.
func RegisterSweepTask(srv qport.Server, client qport.Client, pool *pgxpool.Pool) {
	srv.Register(SweepTaskType, func(ctx context.Context, t qport.Task) error {
		var p SweepTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			return err
		}
		if p.Retention <= 0 {
			p.Retention = 30 * 24 * time.Hour
		}

		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		repo := repoAdapter.NewPgNotificationRepository(pool)
		removed, err := repo.DeleteReadOlderThan(ctx, time.Now().UTC().Add(-p.Retention))
		if err != nil {
			return err
		}
		slog.Info("notification sweep completed", "removed", removed, "retention", p.Retention)

		if _, err := EnqueueSweep(ctx, client, p.Retention, 24*time.Hour); err != nil {
			slog.Error("failed to reschedule notification sweep", "err", err)
		}
		return nil
	})
}

// EnqueueSweep schedules one sweep run after delay. UniqueTTL keeps a single
// pending sweep regardless of how many processes call this at startup.
func EnqueueSweep(ctx context.Context, client qport.Client, retention, delay time.Duration) (string, error) {
	b, err := json.Marshal(SweepTaskPayload{Retention: retention})
	if err != nil {
		return "", err
	}
	return client.Enqueue(ctx, qport.Task{Type: SweepTaskType, Payload: b}, qport.EnqueueOption{
		Queue:     "maintenance",
		ProcessIn: delay,
		MaxRetry:  5,
		UniqueTTL: delay,
	})
}
