package usecase

import (
	"context"

	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// ListNotificationsInput carries parameters for the polling read.
type ListNotificationsInput struct {
	UserID string
	Limit  int
}

// ListNotificationsUseCase returns the newest notifications for a user, read
// and unread, newest first. This is the poll half of the delivery layer: the
// reconciler calls it on every tick and on every push wake-up, and repeated
// calls with no intervening writes return the same page.
type ListNotificationsUseCase struct {
	Repo repository.NotificationRepository
}

func NewListNotificationsUseCase(repo repository.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{Repo: repo}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, in ListNotificationsInput) ([]notification.Notification, error) {
	if in.UserID == "" {
		return nil, apperrors.InvalidArg("user id is required")
	}
	out, err := uc.Repo.ListByTarget(ctx, in.UserID, in.Limit)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}
