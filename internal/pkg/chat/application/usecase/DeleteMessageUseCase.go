package usecase

import (
	"context"

	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// DeleteMessageInput identifies one message its author wants removed.
type DeleteMessageInput struct {
	ConversationID string
	MessageID      string
	AuthorID       string
}

// DeleteMessageUseCase removes a single message. Author-only, scoped to the
// conversation so a stale id cannot delete across threads.
type DeleteMessageUseCase struct {
	Repo repository.ChatRepository
}

func NewDeleteMessageUseCase(repo repository.ChatRepository) *DeleteMessageUseCase {
	return &DeleteMessageUseCase{Repo: repo}
}

func (uc *DeleteMessageUseCase) Execute(ctx context.Context, in DeleteMessageInput) error {
	if in.ConversationID == "" || in.MessageID == "" || in.AuthorID == "" {
		return apperrors.InvalidArg("conversation id, message id and author id are required")
	}
	if err := uc.Repo.DeleteMessage(ctx, in.MessageID, in.ConversationID, in.AuthorID); err != nil {
		return storeErr(err)
	}
	return nil
}
