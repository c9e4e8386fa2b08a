package usecase

import (
	"context"

	cacheport "github.com/luizfilipeschaeffer/omni/internal/infrastructure/cache/port"
	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// DismissNotificationInput identifies one notification to remove.
type DismissNotificationInput struct {
	UserID         string
	NotificationID int64
}

// DismissNotificationUseCase removes a notification for its recipient.
// Deleting IS the resolution action for plain notifications; negotiation
// notifications are normally consumed by their transition instead, but the
// recipient may discard them the same way.
type DismissNotificationUseCase struct {
	Repo  repository.NotificationRepository
	Cache cacheport.Cache
}

func NewDismissNotificationUseCase(repo repository.NotificationRepository, cache cacheport.Cache) *DismissNotificationUseCase {
	return &DismissNotificationUseCase{Repo: repo, Cache: cache}
}

func (uc *DismissNotificationUseCase) Execute(ctx context.Context, in DismissNotificationInput) error {
	if in.UserID == "" || in.NotificationID == 0 {
		return apperrors.InvalidArg("user id and notification id are required")
	}
	if err := uc.Repo.Delete(ctx, in.NotificationID, in.UserID); err != nil {
		return storeErr(err)
	}
	invalidateUnreadCount(ctx, uc.Cache, in.UserID)
	return nil
}
