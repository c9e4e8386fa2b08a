package repository

import (
	"context"

	chat "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/domain"
)

// ChatRepository defines persistence operations for conversations, their
// memberships and messages. Conversation creation and deletion are NOT here:
// both happen only through the negotiation engine's atomic transitions.
type ChatRepository interface {
	GetConversation(ctx context.Context, id string) (*chat.Conversation, error)
	ListConversationsByUser(ctx context.Context, userID string) ([]chat.ConversationSummary, error)
	ListParticipantIDs(ctx context.Context, conversationID string) ([]string, error)
	IsParticipant(ctx context.Context, conversationID, userID string) (bool, error)

	// OtherParticipant resolves the single participant of the conversation
	// other than userID. Conversations are exactly two-party for the deletion
	// protocol; anything else is an error.
	OtherParticipant(ctx context.Context, conversationID, userID string) (string, error)

	SaveMessage(ctx context.Context, m chat.Message) (string, error)
	ListMessagesByConversation(ctx context.Context, conversationID string) ([]chat.Message, error)
	UpdateMessageContent(ctx context.Context, messageID, conversationID, authorID, content string) (*chat.Message, error)
	DeleteMessage(ctx context.Context, messageID, conversationID, authorID string) error
	MarkMessageViewed(ctx context.Context, messageID, conversationID, viewerID string) error
}
