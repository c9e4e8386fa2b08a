package chat

import "time"

// Conversation is a negotiated chat thread. It is created exactly once,
// atomically with its memberships, and never mutated afterwards except by
// full deletion (conversation, memberships and messages removed together).
type Conversation struct {
	ID        string    `db:"id"`
	Name      *string   `db:"name"`
	IsGroup   bool      `db:"is_group"`
	CreatedAt time.Time `db:"created_at"`
}

// ConversationSummary is the list-view projection: the conversation plus the
// ids of its participants and the most recent message content, if any.
type ConversationSummary struct {
	Conversation
	ParticipantIDs []string
	LastMessage    *string
}
