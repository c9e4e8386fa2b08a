package usecase

import (
	"context"

	cacheport "github.com/luizfilipeschaeffer/omni/internal/infrastructure/cache/port"
	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// MarkReadInput identifies one notification to flip to read.
type MarkReadInput struct {
	UserID         string
	NotificationID int64
}

// MarkReadUseCase flips the read flag. The only mutation a notification ever
// receives; payload content stays write-once.
type MarkReadUseCase struct {
	Repo  repository.NotificationRepository
	Cache cacheport.Cache
}

func NewMarkReadUseCase(repo repository.NotificationRepository, cache cacheport.Cache) *MarkReadUseCase {
	return &MarkReadUseCase{Repo: repo, Cache: cache}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, in MarkReadInput) error {
	if in.UserID == "" || in.NotificationID == 0 {
		return apperrors.InvalidArg("user id and notification id are required")
	}
	if err := uc.Repo.MarkRead(ctx, in.NotificationID, in.UserID); err != nil {
		return storeErr(err)
	}
	invalidateUnreadCount(ctx, uc.Cache, in.UserID)
	return nil
}
