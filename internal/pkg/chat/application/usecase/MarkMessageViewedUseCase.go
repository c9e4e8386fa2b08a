package usecase

import (
	"context"

	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// MarkMessageViewedInput records who viewed a message.
type MarkMessageViewedInput struct {
	ConversationID string
	MessageID      string
	ViewerID       string
}

// MarkMessageViewedUseCase stamps viewed_at/viewed_by once. Subsequent views
// are no-ops reported as not-found by the repository, which callers may treat
// as success.
type MarkMessageViewedUseCase struct {
	Repo repository.ChatRepository
}

func NewMarkMessageViewedUseCase(repo repository.ChatRepository) *MarkMessageViewedUseCase {
	return &MarkMessageViewedUseCase{Repo: repo}
}

func (uc *MarkMessageViewedUseCase) Execute(ctx context.Context, in MarkMessageViewedInput) error {
	if in.ConversationID == "" || in.MessageID == "" || in.ViewerID == "" {
		return apperrors.InvalidArg("conversation id, message id and viewer id are required")
	}

	isParticipant, err := uc.Repo.IsParticipant(ctx, in.ConversationID, in.ViewerID)
	if err != nil {
		return storeErr(err)
	}
	if !isParticipant {
		return apperrors.ErrNotParticipant
	}

	if err := uc.Repo.MarkMessageViewed(ctx, in.MessageID, in.ConversationID, in.ViewerID); err != nil {
		return storeErr(err)
	}
	return nil
}
