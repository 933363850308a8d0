package repository

import (
	"context"

	"news-portal/internal/domain/entity"
)

// UserRepository persists user accounts. Authentication happens outside
// this core; the repository only backs admin management and the blocked
// check performed by the auth middleware.
type UserRepository interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	UpdateRole(ctx context.Context, id int64, role entity.Role) error
	SetBlocked(ctx context.Context, id int64, blocked bool) error
}
