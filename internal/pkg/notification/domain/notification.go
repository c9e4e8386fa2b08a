package notification

import (
	"time"
)

// Type discriminates notification payload variants.
type Type string

const (
	TypeChatRequest          Type = "chat_request"
	TypeChatDeletionRequest  Type = "chat_deletion_request"
	TypeChatDeletionRejected Type = "chat_deletion_rejected"
	TypeGeneric              Type = "generic"
)

// Valid reports whether t is a known notification type.
func (t Type) Valid() bool {
	switch t {
	case TypeChatRequest, TypeChatDeletionRequest, TypeChatDeletionRejected, TypeGeneric:
		return true
	}
	return false
}

// Notification is a directed, durable event addressed to one user. Rows are
// write-once: only the Read flag ever changes after append, and resolving a
// request deletes the row outright.
type Notification struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	Type      Type      `db:"type"`
	Payload   Payload   `db:"payload"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}
