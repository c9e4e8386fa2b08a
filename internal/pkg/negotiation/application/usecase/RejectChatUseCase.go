package usecase

import (
	"context"

	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
	notifrepo "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// RejectChatInput identifies the chat_request being declined.
type RejectChatInput struct {
	TargetID       string
	NotificationID int64
}

// RejectChatUseCase declines a chat request by deleting its notification.
// Terminal for that request; because duplicate suppression only consults
// unread rows, the initiator may request again afterwards.
type RejectChatUseCase struct {
	Notifications notifrepo.NotificationRepository
}

func NewRejectChatUseCase(notifications notifrepo.NotificationRepository) *RejectChatUseCase {
	return &RejectChatUseCase{Notifications: notifications}
}

func (uc *RejectChatUseCase) Execute(ctx context.Context, in RejectChatInput) error {
	if in.TargetID == "" || in.NotificationID == 0 {
		return apperrors.InvalidArg("target id and notification id are required")
	}

	n, err := uc.Notifications.GetByID(ctx, in.NotificationID, in.TargetID)
	if err != nil {
		return storeErr(err)
	}
	if n.Type != notification.TypeChatRequest {
		return apperrors.ErrWrongNotificationType
	}

	if err := uc.Notifications.Delete(ctx, in.NotificationID, in.TargetID); err != nil {
		return storeErr(err)
	}
	return nil
}
