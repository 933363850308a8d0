package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/respond"

	"github.com/golang-jwt/jwt/v5"
)

// UserResolver looks up the acting user. It exists so the middleware can
// verify the account still exists and is not blocked on every request,
// and so role changes take effect without reissuing tokens. The user
// repository satisfies it; Get returns (nil, nil) for unknown IDs.
type UserResolver interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
}

// Middleware authenticates requests with JWT bearer tokens.
type Middleware struct {
	Users  UserResolver
	secret []byte
}

// NewMiddleware creates the authentication middleware.
// The signing secret is read from JWT_SECRET.
func NewMiddleware(users UserResolver) *Middleware {
	return &Middleware{
		Users:  users,
		secret: []byte(os.Getenv("JWT_SECRET")),
	}
}

// Require wraps a handler so it only serves authenticated, non-blocked
// users. The validated actor is placed in the request context.
//
// Authorization Logic:
//  1. Check if the endpoint is public (health checks, metrics, swagger)
//     - If public: Allow access without JWT validation
//  2. If protected: Require valid JWT token for ALL methods
//     - Extract and validate JWT from Authorization header
//     - Resolve the user and reject blocked accounts
//     - Add actor to request context
//
// Resource-level permissions (who may edit, submit, approve) are decided
// in the usecase layer against the actor, not here.
func (m *Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsPublicEndpoint(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		actor, err := m.authenticate(r)
		if err != nil {
			RecordAuthRequest("unknown", "failure")
			respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
			return
		}

		user, err := m.Users.Get(r.Context(), actor.ID)
		if err != nil {
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}
		if user == nil {
			RecordAuthRequest(string(actor.Role), "failure")
			respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized: unknown account"))
			return
		}
		if user.Blocked {
			RecordAuthRequest(string(user.Role), "failure")
			RecordForbiddenAttempt(string(user.Role), r.Method)
			respond.SafeError(w, http.StatusForbidden, errors.New("account is blocked"))
			return
		}

		// The stored role wins over the token claim.
		actor.Role = user.Role

		RecordAuthRequest(string(actor.Role), "success")
		RecordAuthDuration(string(actor.Role), time.Since(start).Seconds())

		ctx := WithActor(r.Context(), actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) authenticate(r *http.Request) (entity.Actor, error) {
	const prefix = "Bearer "
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, prefix) {
		return entity.Actor{}, errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return entity.Actor{}, errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return entity.Actor{}, errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return entity.Actor{}, errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return entity.Actor{}, errors.New("invalid sub claim")
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || id <= 0 {
		return entity.Actor{}, errors.New("invalid sub claim")
	}
	roleClaim, ok := claims["role"].(string)
	if !ok {
		return entity.Actor{}, errors.New("invalid role claim")
	}
	role := entity.Role(roleClaim)
	if !role.Valid() {
		return entity.Actor{}, errors.New("invalid role claim")
	}
	return entity.Actor{ID: id, Role: role}, nil
}
