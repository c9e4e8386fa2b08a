package usecase

import (
	"context"

	cacheport "github.com/luizfilipeschaeffer/omni/internal/infrastructure/cache/port"
	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// MarkAllReadInput identifies whose notifications to flip.
type MarkAllReadInput struct {
	UserID string
}

// MarkAllReadUseCase flips every unread notification for a user to read.
// Note this releases the duplicate-suppression hold for any pending requests
// addressed to the user, since suppression only consults unread rows.
type MarkAllReadUseCase struct {
	Repo  repository.NotificationRepository
	Cache cacheport.Cache
}

func NewMarkAllReadUseCase(repo repository.NotificationRepository, cache cacheport.Cache) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{Repo: repo, Cache: cache}
}

func (uc *MarkAllReadUseCase) Execute(ctx context.Context, in MarkAllReadInput) error {
	if in.UserID == "" {
		return apperrors.InvalidArg("user id is required")
	}
	if err := uc.Repo.MarkAllRead(ctx, in.UserID); err != nil {
		return storeErr(err)
	}
	invalidateUnreadCount(ctx, uc.Cache, in.UserID)
	return nil
}
