package usecase

import (
	"context"
	"strings"

	chat "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/domain"
	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// EditMessageInput carries an author's content change.
type EditMessageInput struct {
	ConversationID string
	MessageID      string
	AuthorID       string
	Content        string
}

// EditMessageUseCase replaces a message's content. Only the author may edit;
// the edited flag is set and updated_at refreshed.
type EditMessageUseCase struct {
	Repo repository.ChatRepository
}

func NewEditMessageUseCase(repo repository.ChatRepository) *EditMessageUseCase {
	return &EditMessageUseCase{Repo: repo}
}

func (uc *EditMessageUseCase) Execute(ctx context.Context, in EditMessageInput) (*chat.Message, error) {
	if in.ConversationID == "" || in.MessageID == "" || in.AuthorID == "" {
		return nil, apperrors.InvalidArg("conversation id, message id and author id are required")
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, apperrors.ErrEmptyMessageContent
	}

	msg, err := uc.Repo.UpdateMessageContent(ctx, in.MessageID, in.ConversationID, in.AuthorID, content)
	if err != nil {
		return nil, storeErr(err)
	}
	return msg, nil
}
