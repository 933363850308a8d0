package access

import "news-portal/internal/domain/entity"

// Scope narrows list queries to what the actor may see.
type Scope string

// List scopes. Admins see everything; authors and users see their own.
const (
	ScopeAll Scope = "all"
	ScopeOwn Scope = "own"
)

// ArticleScope returns the listing scope for non-public article views.
func ArticleScope(actor entity.Actor) Scope {
	if actor.Role == entity.RoleAdmin {
		return ScopeAll
	}
	return ScopeOwn
}

// CommentScope resolves a requested comment listing scope. The "all"
// selector is available to admins only; everyone else is forced to "own".
func CommentScope(actor entity.Actor, requested Scope) Scope {
	if requested == ScopeAll && actor.Role == entity.RoleAdmin {
		return ScopeAll
	}
	return ScopeOwn
}
