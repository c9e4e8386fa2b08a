package usecase

import (
	"context"

	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
	negotiationrepo "github.com/luizfilipeschaeffer/omni/internal/pkg/negotiation/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// RejectDeletionInput identifies the chat_deletion_request being declined.
type RejectDeletionInput struct {
	ApproverID     string
	NotificationID int64
}

// RejectDeletionUseCase completes the chat-deletion state machine on the
// keep-alive branch: the request notification is consumed and a
// chat_deletion_rejected notification goes back to the original requester,
// in one transaction. The conversation returns to active, untouched.
type RejectDeletionUseCase struct {
	Repo     negotiationrepo.NegotiationRepository
	Notifier Notifier
}

func NewRejectDeletionUseCase(repo negotiationrepo.NegotiationRepository, notifier Notifier) *RejectDeletionUseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &RejectDeletionUseCase{Repo: repo, Notifier: notifier}
}

func (uc *RejectDeletionUseCase) Execute(ctx context.Context, in RejectDeletionInput) (*notification.Notification, error) {
	if in.ApproverID == "" || in.NotificationID == 0 {
		return nil, apperrors.InvalidArg("approver id and notification id are required")
	}
	rejected, err := uc.Repo.RejectDeletion(ctx, in.ApproverID, in.NotificationID)
	if err != nil {
		return nil, storeErr(err)
	}

	// Forward to the requester only after the transaction committed.
	uc.Notifier.Forward(rejected.UserID, *rejected)
	return rejected, nil
}
