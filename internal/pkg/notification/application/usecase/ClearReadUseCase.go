package usecase

import (
	"context"

	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/port"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// ClearReadInput identifies whose read notifications to purge.
type ClearReadInput struct {
	UserID string
}

// ClearReadUseCase removes every already-read notification for a user.
type ClearReadUseCase struct {
	Repo repository.NotificationRepository
}

func NewClearReadUseCase(repo repository.NotificationRepository) *ClearReadUseCase {
	return &ClearReadUseCase{Repo: repo}
}

// Execute returns how many notifications were removed.
func (uc *ClearReadUseCase) Execute(ctx context.Context, in ClearReadInput) (int64, error) {
	if in.UserID == "" {
		return 0, apperrors.InvalidArg("user id is required")
	}
	n, err := uc.Repo.DeleteRead(ctx, in.UserID)
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}
