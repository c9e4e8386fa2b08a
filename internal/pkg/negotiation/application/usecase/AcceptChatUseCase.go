package usecase

import (
	"context"

	chat "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/domain"
	negotiationrepo "github.com/luizfilipeschaeffer/omni/internal/pkg/negotiation/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// AcceptChatInput identifies the chat_request being accepted. Only the
// addressed user may accept; Name optionally labels the new conversation.
type AcceptChatInput struct {
	TargetID       string
	NotificationID int64
	Name           *string
}

// AcceptChatUseCase completes the chat-creation state machine. The
// conversation, both memberships and the notification delete form one atomic
// unit inside the repository: if any step fails the notification remains
// untouched and the initiator's request stays pending.
type AcceptChatUseCase struct {
	Repo negotiationrepo.NegotiationRepository
}

func NewAcceptChatUseCase(repo negotiationrepo.NegotiationRepository) *AcceptChatUseCase {
	return &AcceptChatUseCase{Repo: repo}
}

func (uc *AcceptChatUseCase) Execute(ctx context.Context, in AcceptChatInput) (*chat.Conversation, error) {
	if in.TargetID == "" || in.NotificationID == 0 {
		return nil, apperrors.InvalidArg("target id and notification id are required")
	}
	conv, err := uc.Repo.AcceptChatRequest(ctx, in.TargetID, in.NotificationID, in.Name)
	if err != nil {
		return nil, storeErr(err)
	}
	return conv, nil
}
