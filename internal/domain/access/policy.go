// Package access implements the authorization predicate shared by the
// article workflow and the comment subsystem.
//
// CanPerform is pure and total: every (actor, action, resource) triple
// yields true or false, never an error, and unknown combinations deny.
// The workflow engine never calls into this package; authorization is
// the caller's responsibility, keeping the two concerns orthogonal.
package access

import "news-portal/internal/domain/entity"

// Action identifies an operation an actor may attempt on a resource.
type Action string

// Actions covered by the predicate.
const (
	ActionCreateArticle  Action = "article:create"
	ActionEditArticle    Action = "article:edit"
	ActionDeleteArticle  Action = "article:delete"
	ActionSubmitArticle  Action = "article:submit"
	ActionApproveArticle Action = "article:approve"
	ActionRejectArticle  Action = "article:reject"
	ActionCreateComment  Action = "comment:create"
	ActionEditComment    Action = "comment:edit"
	ActionDeleteComment  Action = "comment:delete"
	ActionManageCategory Action = "category:manage"
	ActionManageUser     Action = "user:manage"
	ActionViewQueue      Action = "moderation:view-queue"
)

// Owned is implemented by resources that belong to a user.
type Owned interface {
	OwnedBy() int64
}

// IsOwner reports whether the actor owns the resource.
func IsOwner(actor entity.Actor, res Owned) bool {
	return res != nil && actor.ID == res.OwnedBy()
}

// OwnerOrRole reports whether the actor owns the resource or holds the
// given role. This is the recurring "owner OR admin" combinator.
func OwnerOrRole(actor entity.Actor, res Owned, role entity.Role) bool {
	return IsOwner(actor, res) || actor.Role == role
}

// CanPerform decides whether actor may perform action on resource.
// The resource type depends on the action: *entity.Article for article
// actions, *entity.Comment for comment edit/delete, *entity.User for user
// management. A resource of the wrong type denies.
func CanPerform(actor entity.Actor, action Action, resource any) bool {
	if actor.ID == 0 || !actor.Role.Valid() {
		return false
	}

	switch action {
	case ActionCreateArticle:
		return actor.Role == entity.RoleAuthor || actor.Role == entity.RoleAdmin

	case ActionEditArticle:
		a, ok := resource.(*entity.Article)
		if !ok || a == nil {
			return false
		}
		// No edit path exists from published, for any role. Admins may
		// otherwise edit regardless of ownership, including pending
		// articles awaiting their own moderation.
		if a.Status == entity.StatusPublished {
			return false
		}
		if actor.Role == entity.RoleAdmin {
			return true
		}
		return IsOwner(actor, a) && a.ContentEditable()

	case ActionSubmitArticle:
		a, ok := resource.(*entity.Article)
		if !ok || a == nil {
			return false
		}
		if actor.Role == entity.RoleAdmin {
			return true
		}
		return actor.Role == entity.RoleAuthor && IsOwner(actor, a)

	case ActionDeleteArticle:
		a, ok := resource.(*entity.Article)
		if !ok || a == nil {
			return false
		}
		if a.Status == entity.StatusPublished || a.Status == entity.StatusPending {
			return false
		}
		return OwnerOrRole(actor, a, entity.RoleAdmin)

	case ActionApproveArticle, ActionRejectArticle:
		a, ok := resource.(*entity.Article)
		if !ok || a == nil {
			return false
		}
		return actor.Role == entity.RoleAdmin && a.Status == entity.StatusPending

	case ActionCreateComment:
		// Any authenticated actor may comment.
		return true

	case ActionEditComment:
		c, ok := resource.(*entity.Comment)
		if !ok || c == nil {
			return false
		}
		// Admins moderate by deletion, never by editing others' words.
		return IsOwner(actor, c)

	case ActionDeleteComment:
		c, ok := resource.(*entity.Comment)
		if !ok || c == nil {
			return false
		}
		return OwnerOrRole(actor, c, entity.RoleAdmin)

	case ActionManageCategory, ActionViewQueue:
		return actor.Role == entity.RoleAdmin

	case ActionManageUser:
		u, ok := resource.(*entity.User)
		if !ok || u == nil {
			return false
		}
		// No self-demotion, self-block or self-delete.
		return actor.Role == entity.RoleAdmin && u.ID != actor.ID

	default:
		return false
	}
}

// CanChangeRole decides whether actor may change target's role to newRole.
// Role changes are restricted to the user <-> author pair: an existing
// admin role can never be assigned or removed through this path.
func CanChangeRole(actor entity.Actor, target *entity.User, newRole entity.Role) bool {
	if !CanPerform(actor, ActionManageUser, target) {
		return false
	}
	if target.Role == entity.RoleAdmin || newRole == entity.RoleAdmin {
		return false
	}
	return newRole == entity.RoleUser || newRole == entity.RoleAuthor
}
