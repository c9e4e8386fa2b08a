package usecase

import (
	"context"
	"time"

	chatrepo "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/persistence/repository/port"
	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
	notifrepo "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/port"
	userrepo "github.com/luizfilipeschaeffer/omni/internal/pkg/user/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// RequestDeletionInput carries the data to open a deletion negotiation.
type RequestDeletionInput struct {
	RequesterID    string
	ConversationID string
}

// RequestDeletionUseCase starts the chat-deletion state machine: it resolves
// the conversation's other participant and appends a chat_deletion_request
// notification to them. No state is recorded on the conversation itself; the
// unread notification IS the deletion_requested state.
type RequestDeletionUseCase struct {
	Chats         chatrepo.ChatRepository
	Notifications notifrepo.NotificationRepository
	Users         userrepo.UserRepository
	Notifier      Notifier
}

func NewRequestDeletionUseCase(chats chatrepo.ChatRepository, notifications notifrepo.NotificationRepository, users userrepo.UserRepository, notifier Notifier) *RequestDeletionUseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &RequestDeletionUseCase{Chats: chats, Notifications: notifications, Users: users, Notifier: notifier}
}

func (uc *RequestDeletionUseCase) Execute(ctx context.Context, in RequestDeletionInput) (*notification.Notification, error) {
	if in.RequesterID == "" || in.ConversationID == "" {
		return nil, apperrors.InvalidArg("requester id and conversation id are required")
	}

	conv, err := uc.Chats.GetConversation(ctx, in.ConversationID)
	if err != nil {
		return nil, storeErr(err)
	}

	isMember, err := uc.Chats.IsParticipant(ctx, in.ConversationID, in.RequesterID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !isMember {
		return nil, apperrors.ErrNotParticipant
	}

	other, err := uc.Chats.OtherParticipant(ctx, in.ConversationID, in.RequesterID)
	if err != nil {
		return nil, storeErr(err)
	}

	pending, err := uc.Notifications.HasPendingDeletionRequest(ctx, in.ConversationID)
	if err != nil {
		return nil, storeErr(err)
	}
	if pending {
		return nil, apperrors.ErrDeletionAlreadyPending
	}

	requester, err := uc.Users.GetByID(ctx, in.RequesterID)
	if err != nil {
		return nil, storeErr(err)
	}

	name := ""
	if conv.Name != nil {
		name = *conv.Name
	}
	n := notification.Notification{
		UserID: other,
		Type:   notification.TypeChatDeletionRequest,
		Payload: notification.ChatDeletionRequestPayload{
			ConversationID:   conv.ID,
			ConversationName: name,
			FromUserID:       requester.ID,
			FromUserName:     requester.Name,
		},
		CreatedAt: time.Now().UTC(),
	}
	id, err := uc.Notifications.Append(ctx, n)
	if err != nil {
		return nil, storeErr(err)
	}
	n.ID = id

	uc.Notifier.Forward(other, n)
	return &n, nil
}
