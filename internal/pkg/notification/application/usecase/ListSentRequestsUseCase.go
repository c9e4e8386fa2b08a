package usecase

import (
	"context"

	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// ListSentRequestsInput identifies the initiator whose outbox to read.
type ListSentRequestsInput struct {
	UserID string
	Limit  int
}

// ListSentRequestsUseCase returns the unread chat requests a user has sent and
// the other side has not yet resolved. This is how an initiator's client
// renders its "pending" entries.
type ListSentRequestsUseCase struct {
	Repo repository.NotificationRepository
}

func NewListSentRequestsUseCase(repo repository.NotificationRepository) *ListSentRequestsUseCase {
	return &ListSentRequestsUseCase{Repo: repo}
}

func (uc *ListSentRequestsUseCase) Execute(ctx context.Context, in ListSentRequestsInput) ([]notification.Notification, error) {
	if in.UserID == "" {
		return nil, apperrors.InvalidArg("user id is required")
	}
	out, err := uc.Repo.ListSentPending(ctx, in.UserID, in.Limit)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}
