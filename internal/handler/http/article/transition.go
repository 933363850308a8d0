package article

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/auth"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	artUC "news-portal/internal/usecase/article"
)

type SubmitHandler struct{ Svc *artUC.Service }

// ServeHTTP moves a draft or rejected article into the moderation queue.
// @Summary      Submit for review
// @Description  Moves a draft or rejected article to pending. Content must satisfy the publication constraints.
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} DTO "Article now pending review"
// @Failure      400 {string} string "Bad request - content fails publication constraints"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - not the owner"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      409 {string} string "Conflict - submission not legal from the current status"
// @Router       /articles/{id}/submit [post]
func (h SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := transitionRequest(w, r)
	if !ok {
		return
	}
	art, err := h.Svc.Submit(r.Context(), actor, id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(art))
}

type ApproveHandler struct{ Svc *artUC.Service }

// ServeHTTP publishes a pending article. Admin only.
// @Summary      Approve article
// @Description  Publishes a pending article. The published timestamp is set on first publication only.
// @Tags         moderation
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} DTO "Published article"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      409 {string} string "Conflict - article is not pending"
// @Router       /articles/{id}/approve [post]
func (h ApproveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := transitionRequest(w, r)
	if !ok {
		return
	}
	art, err := h.Svc.Approve(r.Context(), actor, id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(art))
}

type RejectHandler struct{ Svc *artUC.Service }

// ServeHTTP returns a pending article to its author with a reason. Admin only.
// @Summary      Reject article
// @Description  Returns a pending article to its author. The rejection reason is mandatory and shown to the author.
// @Tags         moderation
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Article ID"
// @Param        rejection body object true "Rejection reason"
// @Success      200 {object} DTO "Rejected article"
// @Failure      400 {string} string "Bad request - reason missing or too short"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      409 {string} string "Conflict - article is not pending"
// @Router       /articles/{id}/reject [post]
func (h RejectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := transitionRequest(w, r)
	if !ok {
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Reject(r.Context(), actor, id, req.Reason)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(art))
}

// transitionRequest extracts the actor and article ID shared by the
// transition endpoints, writing the error response itself on failure.
func transitionRequest(w http.ResponseWriter, r *http.Request) (entity.Actor, int64, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return entity.Actor{}, 0, false
	}
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return entity.Actor{}, 0, false
	}
	return actor, id, true
}
