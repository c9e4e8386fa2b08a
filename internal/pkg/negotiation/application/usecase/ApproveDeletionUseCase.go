package usecase

import (
	"context"

	negotiationrepo "github.com/luizfilipeschaeffer/omni/internal/pkg/negotiation/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// ApproveDeletionInput identifies the chat_deletion_request being granted.
type ApproveDeletionInput struct {
	ApproverID     string
	NotificationID int64
}

// ApproveDeletionUseCase completes the chat-deletion state machine on the
// destructive branch: the conversation, its memberships and its messages are
// removed together with the resolved notification, atomically. Irreversible.
// Losing a race against a concurrent resolution surfaces as NOT_FOUND.
type ApproveDeletionUseCase struct {
	Repo negotiationrepo.NegotiationRepository
}

func NewApproveDeletionUseCase(repo negotiationrepo.NegotiationRepository) *ApproveDeletionUseCase {
	return &ApproveDeletionUseCase{Repo: repo}
}

// Execute returns the id of the removed conversation.
func (uc *ApproveDeletionUseCase) Execute(ctx context.Context, in ApproveDeletionInput) (string, error) {
	if in.ApproverID == "" || in.NotificationID == 0 {
		return "", apperrors.InvalidArg("approver id and notification id are required")
	}
	convID, err := uc.Repo.ApproveDeletion(ctx, in.ApproverID, in.NotificationID)
	if err != nil {
		return "", storeErr(err)
	}
	return convID, nil
}
