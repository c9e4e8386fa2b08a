package chat

import (
	"strings"
	"time"

	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// Message is a conversation log entry. Content may be edited by its author
// (which sets Edited and refreshes UpdatedAt) and deleted by its author;
// there is no ownership transfer.
type Message struct {
	ID             string     `db:"id"`
	ConversationID string     `db:"conversation_id"`
	AuthorID       string     `db:"user_id"`
	AuthorName     *string    `db:"user_name"`
	Content        string     `db:"content"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at"`
	Edited         bool       `db:"edited"`
	ViewedAt       *time.Time `db:"viewed_at"`
	ViewedBy       *string    `db:"viewed_by"`
}

// NewMessage validates and normalizes a message before persistence.
func NewMessage(conversationID, authorID, content string) (*Message, error) {
	if conversationID == "" || authorID == "" {
		return nil, apperrors.InvalidArg("conversation id and author id are required")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.ErrEmptyMessageContent
	}
	return &Message{
		ConversationID: conversationID,
		AuthorID:       authorID,
		Content:        content,
	}, nil
}
