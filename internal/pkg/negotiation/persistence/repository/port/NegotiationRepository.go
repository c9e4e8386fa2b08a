package repository

import (
	"context"

	chat "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/domain"
	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
)

// NegotiationRepository holds the multi-step transitions of the two state
// machines. Every method is one database transaction: a failure at any step
// leaves every prior step untouched, so a concurrent reader can never observe
// a conversation without its memberships or a consumed notification beside a
// failed conversation write.
type NegotiationRepository interface {
	// AcceptChatRequest consumes an unread chat_request addressed to
	// targetUserID: it creates the conversation with exactly the two
	// participants (target plus the initiator named in the payload), both
	// memberships, and deletes the notification. Returns the new conversation.
	AcceptChatRequest(ctx context.Context, targetUserID string, notificationID int64, name *string) (*chat.Conversation, error)

	// ApproveDeletion consumes a chat_deletion_request addressed to
	// approverUserID: it deletes the conversation named in the payload with
	// all memberships and messages, then deletes the notification by its own
	// id. Returns the removed conversation id.
	ApproveDeletion(ctx context.Context, approverUserID string, notificationID int64) (string, error)

	// RejectDeletion consumes a chat_deletion_request addressed to
	// approverUserID: it deletes the notification and appends a
	// chat_deletion_rejected notification back to the original requester,
	// leaving the conversation untouched. Returns the appended notification.
	RejectDeletion(ctx context.Context, approverUserID string, notificationID int64) (*notification.Notification, error)
}
