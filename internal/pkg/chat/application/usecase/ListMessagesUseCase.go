package usecase

import (
	"context"

	chat "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/domain"
	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// ListMessagesInput carries parameters to fetch a conversation's history.
type ListMessagesInput struct {
	ConversationID string
	RequesterID    string
}

// ListMessagesUseCase returns a conversation's messages in chronological
// order, for participants only.
type ListMessagesUseCase struct {
	Repo repository.ChatRepository
}

func NewListMessagesUseCase(repo repository.ChatRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{Repo: repo}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, in ListMessagesInput) ([]chat.Message, error) {
	if in.ConversationID == "" || in.RequesterID == "" {
		return nil, apperrors.InvalidArg("conversation id and requester id are required")
	}

	isParticipant, err := uc.Repo.IsParticipant(ctx, in.ConversationID, in.RequesterID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !isParticipant {
		return nil, apperrors.ErrNotParticipant
	}

	msgs, err := uc.Repo.ListMessagesByConversation(ctx, in.ConversationID)
	if err != nil {
		return nil, storeErr(err)
	}
	return msgs, nil
}
