// Package user provides HTTP handlers for admin user management:
// listing accounts, switching roles between user and author, and
// blocking or unblocking accounts.
package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"news-portal/internal/domain/access"
	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/auth"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	userUC "news-portal/internal/usecase/user"
)

// DTO represents the JSON structure for user data transfer. Email stays
// visible here because the listing is admin only.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Email     string    `json:"email" example:"author@example.com"`
	Name      string    `json:"name" example:"Jo Author"`
	Role      string    `json:"role" example:"author"`
	Blocked   bool      `json:"blocked" example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2026-07-01T08:00:00Z"`
}

func toDTO(u *entity.User) DTO {
	return DTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Blocked:   u.Blocked,
		CreatedAt: u.CreatedAt,
	}
}

func statusFor(err error) int {
	var aerr *access.AuthorizationError
	switch {
	case errors.Is(err, userUC.ErrInvalidUserID):
		return http.StatusBadRequest
	case errors.As(err, &aerr):
		return http.StatusForbidden
	case errors.Is(err, userUC.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type ListHandler struct{ Svc *userUC.Service }

// ServeHTTP lists all user accounts. Admin only.
// @Summary      List users
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO "Accounts, oldest first"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Router       /users [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	users, err := h.Svc.List(r.Context(), actor)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	dtos := make([]DTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toDTO(u))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

type ChangeRoleHandler struct{ Svc *userUC.Service }

// ServeHTTP switches a user's role between user and author. Admin only;
// admins cannot retarget themselves or touch other admins.
// @Summary      Change user role
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        role body object true "New role: user or author"
// @Success      200 {object} DTO "Updated account"
// @Failure      400 {string} string "Bad request - invalid role"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required, or target not changeable"
// @Failure      404 {string} string "Not found - user not found"
// @Router       /users/{id}/role [put]
func (h ChangeRoleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	u, err := h.Svc.ChangeRole(r.Context(), actor, id, entity.Role(req.Role))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(u))
}

type BlockHandler struct{ Svc *userUC.Service }

// ServeHTTP blocks or unblocks a user. Admin only; never self-targeted.
// Blocked users fail authentication on their next request.
// @Summary      Block or unblock user
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        blocked body object true "Blocked flag"
// @Success      200 {object} DTO "Updated account"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required, or target not blockable"
// @Failure      404 {string} string "Not found - user not found"
// @Router       /users/{id}/block [put]
func (h BlockHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Blocked bool `json:"blocked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	u, err := h.Svc.SetBlocked(r.Context(), actor, id, req.Blocked)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(u))
}

// Register registers all user management HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *userUC.Service, authn *auth.Middleware) {
	mux.Handle("GET /users", authn.Require(ListHandler{svc}))
	mux.Handle("PUT /users/{id}/role", authn.Require(ChangeRoleHandler{svc}))
	mux.Handle("PUT /users/{id}/block", authn.Require(BlockHandler{svc}))
}
