package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/domain"
	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

type PgNegotiationRepository struct {
	pool *pgxpool.Pool
}

func NewPgNegotiationRepository(pool *pgxpool.Pool) *PgNegotiationRepository {
	return &PgNegotiationRepository{pool: pool}
}

// lockNotification loads the notification addressed to userID inside the
// transaction, row-locked so a racing transition on the same notification
// blocks here and then fails with not-found once the winner commits.
func lockNotification(ctx context.Context, tx pgx.Tx, id int64, userID string) (*notification.Notification, error) {
	var (
		n       notification.Notification
		rawType string
		raw     []byte
	)
	err := tx.QueryRow(ctx, `
		SELECT id, user_id::text, type, payload, read, created_at
		FROM notifications
		WHERE id = $1 AND user_id = $2::uuid
		FOR UPDATE
	`, id, userID).Scan(&n.ID, &n.UserID, &rawType, &raw, &n.Read, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotificationNotFound
	}
	if err != nil {
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

func (r *PgNegotiationRepository) AcceptChatRequest(ctx context.Context, targetUserID string, notificationID int64, name *string) (*chat.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgNegotiationRepository: nil pool")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	n, err := lockNotification(ctx, tx, notificationID, targetUserID)
	if err != nil {
		return nil, err
	}
	payload, ok := n.Payload.(notification.ChatRequestPayload)
	if !ok {
		return nil, apperrors.ErrWrongNotificationType
	}

	var conv chat.Conversation
	err = tx.QueryRow(ctx, `
		INSERT INTO conversations (name, is_group)
		VALUES ($1, false)
		RETURNING id::text, name, is_group, created_at
	`, name).Scan(&conv.ID, &conv.Name, &conv.IsGroup, &conv.CreatedAt)
	if err != nil {
		return nil, err
	}

	for _, uid := range []string{targetUserID, payload.FromUserID} {
		if _, err := tx.Exec(ctx, `
			INSERT INTO memberships (conversation_id, user_id)
			VALUES ($1::uuid, $2::uuid)
		`, conv.ID, uid); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM notifications WHERE id = $1
	`, n.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *PgNegotiationRepository) ApproveDeletion(ctx context.Context, approverUserID string, notificationID int64) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgNegotiationRepository: nil pool")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	n, err := lockNotification(ctx, tx, notificationID, approverUserID)
	if err != nil {
		return "", err
	}
	payload, ok := n.Payload.(notification.ChatDeletionRequestPayload)
	if !ok {
		return "", apperrors.ErrWrongNotificationType
	}

	convID := payload.ConversationID
	if _, err := tx.Exec(ctx, `DELETE FROM messages WHERE conversation_id = $1::uuid`, convID); err != nil {
		return "", err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM memberships WHERE conversation_id = $1::uuid`, convID); err != nil {
		return "", err
	}
	ct, err := tx.Exec(ctx, `DELETE FROM conversations WHERE id = $1::uuid`, convID)
	if err != nil {
		return "", err
	}
	if ct.RowsAffected() == 0 {
		return "", apperrors.ErrConversationNotFound
	}

	// The resolved notification is removed by its own id, never by the
	// conversation id it happens to reference.
	if _, err := tx.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, n.ID); err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return convID, nil
}

func (r *PgNegotiationRepository) RejectDeletion(ctx context.Context, approverUserID string, notificationID int64) (*notification.Notification, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgNegotiationRepository: nil pool")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	n, err := lockNotification(ctx, tx, notificationID, approverUserID)
	if err != nil {
		return nil, err
	}
	payload, ok := n.Payload.(notification.ChatDeletionRequestPayload)
	if !ok {
		return nil, apperrors.ErrWrongNotificationType
	}

	if _, err := tx.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, n.ID); err != nil {
		return nil, err
	}

	rejected := notification.Notification{
		UserID: payload.FromUserID,
		Type:   notification.TypeChatDeletionRejected,
		Payload: notification.ChatDeletionRejectedPayload{
			ConversationID:   payload.ConversationID,
			ConversationName: payload.ConversationName,
			FromUserID:       approverUserID,
		},
	}
	raw, err := notification.EncodePayload(rejected.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode rejection payload: %w", err)
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO notifications (user_id, type, payload)
		VALUES ($1::uuid, $2, $3::jsonb)
		RETURNING id, read, created_at
	`, rejected.UserID, string(rejected.Type), raw).Scan(&rejected.ID, &rejected.Read, &rejected.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &rejected, nil
}
