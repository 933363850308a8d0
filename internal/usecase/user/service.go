package user

import (
	"context"
	"fmt"

	"news-portal/internal/domain/access"
	"news-portal/internal/domain/entity"
	"news-portal/internal/observability/metrics"
	"news-portal/internal/repository"
)

// Service provides admin user management use cases.
type Service struct {
	Repo repository.UserRepository
}

// List retrieves all user accounts. Admin only.
func (s *Service) List(ctx context.Context, actor entity.Actor) ([]*entity.User, error) {
	if actor.Role != entity.RoleAdmin {
		metrics.RecordAuthzDenial(string(access.ActionManageUser))
		return nil, access.Denied(access.ActionManageUser)
	}
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ChangeRole switches a user's role between user and author. Admin only,
// never self-targeted, and admin roles are untouchable either way.
func (s *Service) ChangeRole(ctx context.Context, actor entity.Actor, id int64, role entity.Role) (*entity.User, error) {
	target, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanChangeRole(actor, target, role) {
		metrics.RecordAuthzDenial(string(access.ActionManageUser))
		return nil, access.Denied(access.ActionManageUser)
	}
	if err := s.Repo.UpdateRole(ctx, target.ID, role); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	target.Role = role
	return target, nil
}

// SetBlocked blocks or unblocks a user. Admin only, never self-targeted.
// Blocked users fail authentication at the middleware.
func (s *Service) SetBlocked(ctx context.Context, actor entity.Actor, id int64, blocked bool) (*entity.User, error) {
	target, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanPerform(actor, access.ActionManageUser, target) {
		metrics.RecordAuthzDenial(string(access.ActionManageUser))
		return nil, access.Denied(access.ActionManageUser)
	}
	if err := s.Repo.SetBlocked(ctx, target.ID, blocked); err != nil {
		return nil, fmt.Errorf("set blocked: %w", err)
	}
	target.Blocked = blocked
	return target, nil
}

// Get retrieves a single user for the auth middleware's blocked check.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	return s.load(ctx, id)
}

func (s *Service) load(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
