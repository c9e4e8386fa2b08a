package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/domain"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

func (r *PgChatRepository) GetConversation(ctx context.Context, id string) (*chat.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	var c chat.Conversation
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, is_group, created_at
		FROM conversations WHERE id = $1::uuid
	`, id).Scan(&c.ID, &c.Name, &c.IsGroup, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgChatRepository) ListConversationsByUser(ctx context.Context, userID string) ([]chat.ConversationSummary, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT c.id::text, c.name, c.is_group, c.created_at,
			(SELECT content FROM messages msg
			 WHERE msg.conversation_id = c.id
			 ORDER BY msg.created_at DESC LIMIT 1) AS last_message
		FROM conversations c
		JOIN memberships m ON m.conversation_id = c.id
		WHERE m.user_id = $1::uuid
		ORDER BY c.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []chat.ConversationSummary
	for rows.Next() {
		var s chat.ConversationSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.IsGroup, &s.CreatedAt, &s.LastMessage); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	for i := range out {
		ids, err := r.ListParticipantIDs(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].ParticipantIDs = ids
	}
	return out, nil
}

func (r *PgChatRepository) ListParticipantIDs(ctx context.Context, conversationID string) ([]string, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT user_id::text FROM memberships WHERE conversation_id = $1::uuid
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PgChatRepository) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgChatRepository: nil pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM memberships
			WHERE conversation_id = $1::uuid AND user_id = $2::uuid
		)
	`, conversationID, userID).Scan(&exists)
	return exists, err
}

func (r *PgChatRepository) OtherParticipant(ctx context.Context, conversationID, userID string) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT user_id::text FROM memberships
		WHERE conversation_id = $1::uuid AND user_id <> $2::uuid
	`, conversationID, userID)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var others []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", err
		}
		others = append(others, id)
	}
	if rows.Err() != nil {
		return "", rows.Err()
	}
	if len(others) == 0 {
		return "", apperrors.ErrConversationNotFound
	}
	if len(others) != 1 {
		return "", apperrors.ErrNotTwoParty
	}
	return others[0], nil
}

func (r *PgChatRepository) SaveMessage(ctx context.Context, m chat.Message) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgChatRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messages (conversation_id, user_id, content)
		VALUES ($1::uuid, $2::uuid, $3)
		RETURNING id::text
	`, m.ConversationID, m.AuthorID, m.Content).Scan(&id)
	return id, err
}

func (r *PgChatRepository) ListMessagesByConversation(ctx context.Context, conversationID string) ([]chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT m.id::text, m.conversation_id::text, m.user_id::text, u.name,
			m.content, m.created_at, m.updated_at, m.edited, m.viewed_at, m.viewed_by::text
		FROM messages m
		LEFT JOIN users u ON m.user_id = u.id
		WHERE m.conversation_id = $1::uuid
		ORDER BY m.created_at ASC
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.AuthorID, &m.AuthorName,
			&m.Content, &m.CreatedAt, &m.UpdatedAt, &m.Edited, &m.ViewedAt, &m.ViewedBy); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return msgs, nil
}

func (r *PgChatRepository) UpdateMessageContent(ctx context.Context, messageID, conversationID, authorID, content string) (*chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	var m chat.Message
	err := r.pool.QueryRow(ctx, `
		UPDATE messages
		SET content = $1, edited = true, updated_at = now()
		WHERE id = $2::uuid AND conversation_id = $3::uuid AND user_id = $4::uuid
		RETURNING id::text, conversation_id::text, user_id::text, content,
			created_at, updated_at, edited, viewed_at, viewed_by::text
	`, content, messageID, conversationID, authorID).Scan(
		&m.ID, &m.ConversationID, &m.AuthorID, &m.Content,
		&m.CreatedAt, &m.UpdatedAt, &m.Edited, &m.ViewedAt, &m.ViewedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgChatRepository) DeleteMessage(ctx context.Context, messageID, conversationID, authorID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgChatRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		DELETE FROM messages
		WHERE id = $1::uuid AND conversation_id = $2::uuid AND user_id = $3::uuid
	`, messageID, conversationID, authorID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

func (r *PgChatRepository) MarkMessageViewed(ctx context.Context, messageID, conversationID, viewerID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgChatRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE messages
		SET viewed_at = now(), viewed_by = $3::uuid
		WHERE id = $1::uuid AND conversation_id = $2::uuid AND viewed_at IS NULL
	`, messageID, conversationID, viewerID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}
