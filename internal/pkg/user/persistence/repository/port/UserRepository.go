package repository

import (
	"context"

	user "github.com/luizfilipeschaeffer/omni/internal/pkg/user/domain"
)

// UserRepository exposes the read-only user lookups the protocol depends on.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
	Search(ctx context.Context, query string, limit int) ([]user.User, error)
}
