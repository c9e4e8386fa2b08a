package usecase

import (
	"context"

	chat "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/domain"
	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// SendMessageInput carries the data needed to post a new message.
type SendMessageInput struct {
	ConversationID string
	AuthorID       string
	Content        string
}

// SendMessageUseCase persists a message after confirming the author belongs
// to the conversation.
type SendMessageUseCase struct {
	Repo repository.ChatRepository
}

func NewSendMessageUseCase(repo repository.ChatRepository) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*chat.Message, error) {
	msg, err := chat.NewMessage(in.ConversationID, in.AuthorID, in.Content)
	if err != nil {
		return nil, err
	}

	isParticipant, err := uc.Repo.IsParticipant(ctx, in.ConversationID, in.AuthorID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !isParticipant {
		return nil, apperrors.ErrNotParticipant
	}

	id, err := uc.Repo.SaveMessage(ctx, *msg)
	if err != nil {
		return nil, storeErr(err)
	}
	msg.ID = id
	return msg, nil
}
