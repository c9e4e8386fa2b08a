package usecase

import (
	"context"
	"time"

	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
	notifrepo "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/port"
	userrepo "github.com/luizfilipeschaeffer/omni/internal/pkg/user/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// RequestChatInput carries the data to open a chat negotiation.
type RequestChatInput struct {
	InitiatorID string
	TargetID    string
}

// RequestChatUseCase starts the chat-creation state machine: it appends one
// chat_request notification addressed to the target. No conversation exists
// until the target accepts. The "requested" state is purely the existence of
// the unread notification.
type RequestChatUseCase struct {
	Notifications notifrepo.NotificationRepository
	Users         userrepo.UserRepository
	Notifier      Notifier
}

func NewRequestChatUseCase(notifications notifrepo.NotificationRepository, users userrepo.UserRepository, notifier Notifier) *RequestChatUseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &RequestChatUseCase{Notifications: notifications, Users: users, Notifier: notifier}
}

func (uc *RequestChatUseCase) Execute(ctx context.Context, in RequestChatInput) (*notification.Notification, error) {
	if in.InitiatorID == "" || in.TargetID == "" {
		return nil, apperrors.InvalidArg("initiator id and target id are required")
	}
	if in.InitiatorID == in.TargetID {
		return nil, apperrors.ErrSelfRequest
	}

	// Target must exist in the identity store.
	if _, err := uc.Users.GetByID(ctx, in.TargetID); err != nil {
		return nil, storeErr(err)
	}

	// Duplicate suppression keyed on the ordered (initiator, target) pair,
	// over unread rows only: a rejected or resolved request frees the pair.
	pending, err := uc.Notifications.HasPendingChatRequest(ctx, in.InitiatorID, in.TargetID)
	if err != nil {
		return nil, storeErr(err)
	}
	if pending {
		return nil, apperrors.ErrRequestAlreadyPending
	}

	initiator, err := uc.Users.GetByID(ctx, in.InitiatorID)
	if err != nil {
		return nil, storeErr(err)
	}

	n := notification.Notification{
		UserID: in.TargetID,
		Type:   notification.TypeChatRequest,
		Payload: notification.ChatRequestPayload{
			FromUserID:    initiator.ID,
			FromUserName:  initiator.Name,
			FromUserEmail: initiator.Email,
		},
		CreatedAt: time.Now().UTC(),
	}
	id, err := uc.Notifications.Append(ctx, n)
	if err != nil {
		return nil, storeErr(err)
	}
	n.ID = id

	// Wake-up signal only; the recipient's reconciler refetches from the store.
	uc.Notifier.Forward(in.TargetID, n)
	return &n, nil
}
