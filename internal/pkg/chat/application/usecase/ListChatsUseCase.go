package usecase

import (
	"context"

	chat "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/domain"
	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// ListChatsInput identifies whose conversation list to build.
type ListChatsInput struct {
	UserID string
}

// ListChatsUseCase returns every conversation the user belongs to, with
// participants and last message preview for the sidebar.
type ListChatsUseCase struct {
	Repo repository.ChatRepository
}

func NewListChatsUseCase(repo repository.ChatRepository) *ListChatsUseCase {
	return &ListChatsUseCase{Repo: repo}
}

func (uc *ListChatsUseCase) Execute(ctx context.Context, in ListChatsInput) ([]chat.ConversationSummary, error) {
	if in.UserID == "" {
		return nil, apperrors.InvalidArg("user id is required")
	}
	out, err := uc.Repo.ListConversationsByUser(ctx, in.UserID)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}
