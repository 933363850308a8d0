package article

import (
	"errors"
	"net/http"

	"news-portal/internal/handler/http/auth"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	artUC "news-portal/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an article. Published and pending articles cannot
// be deleted by anyone; an admin must reject first.
// @Summary      Delete article
// @Description  Deletes a draft or rejected article along with its comments.
// @Tags         articles
// @Security     BearerAuth
// @Param        id path int true "Article ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - not the owner"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      409 {string} string "Conflict - article is published or pending"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Svc.Delete(r.Context(), actor, id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
