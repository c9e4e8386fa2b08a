package repository

import (
	"context"
	"time"

	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
)

// NotificationRepository defines persistence operations for the notification
// log. Payload content is never updated once written; only the read flag flips,
// and resolution deletes the row.
type NotificationRepository interface {
	// Append writes one notification and returns its assigned id.
	Append(ctx context.Context, n notification.Notification) (int64, error)

	// GetByID loads one notification addressed to userID.
	GetByID(ctx context.Context, id int64, userID string) (*notification.Notification, error)

	// ListByTarget returns the newest notifications for userID, read or not,
	// newest first, capped at limit.
	ListByTarget(ctx context.Context, userID string, limit int) ([]notification.Notification, error)

	// ListSentPending returns unread chat requests initiated by userID,
	// newest first, capped at limit.
	ListSentPending(ctx context.Context, userID string, limit int) ([]notification.Notification, error)

	// MarkRead flips the read flag of one notification addressed to userID.
	MarkRead(ctx context.Context, id int64, userID string) error

	// MarkAllRead flips the read flag of every unread notification for userID.
	MarkAllRead(ctx context.Context, userID string) error

	// Delete removes one notification addressed to userID.
	Delete(ctx context.Context, id int64, userID string) error

	// DeleteRead removes every already-read notification for userID.
	DeleteRead(ctx context.Context, userID string) (int64, error)

	// DeleteReadOlderThan removes read notifications older than cutoff across
	// all users. Used by the retention sweep.
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// CountUnread counts unread notifications for userID.
	CountUnread(ctx context.Context, userID string) (int64, error)

	// HasPendingChatRequest reports whether an unread chat_request from
	// fromUserID to toUserID exists.
	HasPendingChatRequest(ctx context.Context, fromUserID, toUserID string) (bool, error)

	// HasPendingDeletionRequest reports whether an unread chat_deletion_request
	// for the conversation exists.
	HasPendingDeletionRequest(ctx context.Context, conversationID string) (bool, error)
}
