// Package auth provides JWT authentication middleware for HTTP handlers.
// It validates bearer tokens, resolves the acting user, and places the
// actor in the request context for downstream authorization checks.
package auth

import (
	"context"

	"news-portal/internal/domain/entity"
)

type ctxKey string

const ctxActor ctxKey = "actor"

// WithActor returns a context carrying the authenticated actor.
func WithActor(ctx context.Context, actor entity.Actor) context.Context {
	return context.WithValue(ctx, ctxActor, actor)
}

// ActorFromContext retrieves the authenticated actor from the context.
// The second return value is false when the request was not authenticated.
func ActorFromContext(ctx context.Context) (entity.Actor, bool) {
	actor, ok := ctx.Value(ctxActor).(entity.Actor)
	return actor, ok
}
