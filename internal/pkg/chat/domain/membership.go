package chat

import "time"

// Membership binds a user to a conversation.
// Primary key: (ConversationID, UserID)
type Membership struct {
	ConversationID string    `db:"conversation_id"`
	UserID         string    `db:"user_id"`
	CreatedAt      time.Time `db:"created_at"`
}
