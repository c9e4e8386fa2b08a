package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

const defaultPageSize = 30

type PgNotificationRepository struct {
	pool *pgxpool.Pool
}

func NewPgNotificationRepository(pool *pgxpool.Pool) *PgNotificationRepository {
	return &PgNotificationRepository{pool: pool}
}

func (r *PgNotificationRepository) Append(ctx context.Context, n notification.Notification) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgNotificationRepository: nil pool")
	}
	raw, err := notification.EncodePayload(n.Payload)
	if err != nil {
		return 0, err
	}
	var id int64
	err = r.pool.QueryRow(ctx, `
		INSERT INTO notifications (user_id, type, payload)
		VALUES ($1::uuid, $2, $3::jsonb)
		RETURNING id
	`, n.UserID, string(n.Type), raw).Scan(&id)
	return id, err
}

func (r *PgNotificationRepository) GetByID(ctx context.Context, id int64, userID string) (*notification.Notification, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgNotificationRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id::text, type, payload, read, created_at
		FROM notifications
		WHERE id = $1 AND user_id = $2::uuid
	`, id, userID)
	n, err := scanNotification(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *PgNotificationRepository) ListByTarget(ctx context.Context, userID string, limit int) ([]notification.Notification, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgNotificationRepository: nil pool")
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id::text, type, payload, read, created_at
		FROM notifications
		WHERE user_id = $1::uuid
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func (r *PgNotificationRepository) ListSentPending(ctx context.Context, userID string, limit int) ([]notification.Notification, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgNotificationRepository: nil pool")
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id::text, type, payload, read, created_at
		FROM notifications
		WHERE type = $1 AND read = false AND payload->>'fromUserId' = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`, string(notification.TypeChatRequest), userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func (r *PgNotificationRepository) MarkRead(ctx context.Context, id int64, userID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgNotificationRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE notifications SET read = true
		WHERE id = $1 AND user_id = $2::uuid
	`, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

func (r *PgNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgNotificationRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE notifications SET read = true
		WHERE user_id = $1::uuid AND read = false
	`, userID)
	return err
}

func (r *PgNotificationRepository) Delete(ctx context.Context, id int64, userID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgNotificationRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		DELETE FROM notifications WHERE id = $1 AND user_id = $2::uuid
	`, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

func (r *PgNotificationRepository) DeleteRead(ctx context.Context, userID string) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgNotificationRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		DELETE FROM notifications WHERE user_id = $1::uuid AND read = true
	`, userID)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

func (r *PgNotificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgNotificationRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		DELETE FROM notifications WHERE read = true AND created_at < $1
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

func (r *PgNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgNotificationRepository: nil pool")
	}
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM notifications WHERE user_id = $1::uuid AND read = false
	`, userID).Scan(&count)
	return count, err
}

func (r *PgNotificationRepository) HasPendingChatRequest(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgNotificationRepository: nil pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE user_id = $1::uuid AND type = $2 AND read = false
			  AND payload->>'fromUserId' = $3
		)
	`, toUserID, string(notification.TypeChatRequest), fromUserID).Scan(&exists)
	return exists, err
}

func (r *PgNotificationRepository) HasPendingDeletionRequest(ctx context.Context, conversationID string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgNotificationRepository: nil pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE type = $1 AND read = false
			  AND payload->>'conversationId' = $2
		)
	`, string(notification.TypeChatDeletionRequest), conversationID).Scan(&exists)
	return exists, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (*notification.Notification, error) {
	var (
		n       notification.Notification
		rawType string
		raw     []byte
	)
	if err := row.Scan(&n.ID, &n.UserID, &rawType, &raw, &n.Read, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.Type = notification.Type(rawType)
	payload, err := notification.DecodePayload(n.Type, raw)
	if err != nil {
		return nil, err
	}
	n.Payload = payload
	return &n, nil
}

func collectNotifications(rows pgx.Rows) ([]notification.Notification, error) {
	var out []notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
